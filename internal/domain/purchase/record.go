package purchase

import (
	"errors"
	"time"

	"shopbot/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrMissingProduct  = errors.New("purchase record needs a product")
	ErrMissingCustomer = errors.New("purchase record needs a customer")
	ErrNegativePrice   = errors.New("purchase price cannot be negative")
)

// Record is the append-only fact of a completed sale. It is built only after
// both the stock reservation and the debit went through.
type Record struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	customerID   int64
	categoryID   int64
	productID    int64
	price        money.Cents
	balanceAfter money.Cents
	createdAt    time.Time
}

func NewRecord(ownerID uuid.UUID, customerID, categoryID, productID int64, price, balanceAfter money.Cents, now time.Time) (*Record, error) {
	if productID <= 0 {
		return nil, ErrMissingProduct
	}
	if customerID <= 0 {
		return nil, ErrMissingCustomer
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Record{
		id:           uuid.New(),
		ownerID:      ownerID,
		customerID:   customerID,
		categoryID:   categoryID,
		productID:    productID,
		price:        price,
		balanceAfter: balanceAfter,
		createdAt:    now,
	}, nil
}

func (r *Record) ID() uuid.UUID             { return r.id }
func (r *Record) OwnerID() uuid.UUID        { return r.ownerID }
func (r *Record) CustomerID() int64         { return r.customerID }
func (r *Record) CategoryID() int64         { return r.categoryID }
func (r *Record) ProductID() int64          { return r.productID }
func (r *Record) Price() money.Cents        { return r.price }
func (r *Record) BalanceAfter() money.Cents { return r.balanceAfter }
func (r *Record) CreatedAt() time.Time      { return r.createdAt }

// Notice is what the merchant is told after a sale.
type Notice struct {
	CustomerName  string
	CustomerPhone string
	CategoryName  string
	Price         money.Cents
	BalanceAfter  money.Cents
	At            time.Time
}
