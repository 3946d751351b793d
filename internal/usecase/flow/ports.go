package flow

import (
	"context"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/customer"
	domflow "shopbot/internal/domain/flow"
	"shopbot/internal/domain/ledger"
	"shopbot/internal/domain/money"
	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/owner"
	"shopbot/internal/domain/payment"
	"shopbot/internal/domain/purchase"
	"shopbot/internal/usecase/commands"
	"shopbot/internal/usecase/shared"

	"github.com/google/uuid"
)

// Messenger sends on behalf of the owner's bot number (from) to a customer or
// admin phone (to). Calls are fire-and-forget from the engine's point of view.
type Messenger interface {
	SendText(ctx context.Context, from, to, body string) error
	SendButtons(ctx context.Context, from, to, body string, buttons []outbound.Button) error
	SendList(ctx context.Context, from, to string, list outbound.List) error
	SendMedia(ctx context.Context, from, to string, media outbound.Media) error
}

type Catalog interface {
	ListCategories(ctx context.Context, ownerID uuid.UUID, onlyActive bool, offset int) (catalog.Page, error)
	CategoryByID(ctx context.Context, ownerID uuid.UUID, categoryID int64) (*catalog.Category, error)
	OldestAvailableUnit(ctx context.Context, categoryID int64) (*catalog.Product, error)
}

type CatalogEditor interface {
	Rename(ctx context.Context, ownerID uuid.UUID, categoryID int64, name string) error
	SetPrice(ctx context.Context, ownerID uuid.UUID, categoryID int64, price money.Cents) error
	SetSKU(ctx context.Context, ownerID uuid.UUID, categoryID int64, sku string) error
	ToggleActive(ctx context.Context, ownerID uuid.UUID, categoryID int64) (bool, error)
}

type Customers interface {
	ByID(ctx context.Context, ownerID uuid.UUID, customerID int64) (*customer.Customer, error)
	ByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*customer.Customer, error)
}

type CustomerEditor interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, phone, profileName string) (*customer.Customer, error)
	Rename(ctx context.Context, ownerID uuid.UUID, customerID int64, name string) error
	ToggleBlocked(ctx context.Context, ownerID uuid.UUID, customerID int64) (bool, error)
}

type Admins interface {
	AdminByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*owner.Admin, error)
}

type Payments interface {
	Providers(ownerID uuid.UUID) []payment.Provider
	Tiers(ownerID uuid.UUID, provider string) []money.Cents
	CreateCharge(ctx context.Context, req payment.ChargeRequest) (*payment.Charge, error)
}

// Notifier is best-effort; errors are logged by the caller and never undo
// anything.
type Notifier interface {
	NotifySale(ctx context.Context, o owner.Owner, n purchase.Notice) error
	NotifySupportRequest(ctx context.Context, o owner.Owner, c customer.Customer) error
}

type SupportTranscript interface {
	Open(ctx context.Context, ownerID uuid.UUID, customerID string) (uuid.UUID, error)
	Append(ctx context.Context, ownerID uuid.UUID, customerID string, entry shared.TranscriptEntry) error
	Close(ctx context.Context, ownerID uuid.UUID, customerID string) (bool, error)
}

// ConversationStore is keyed by (owner, sender phone). Only the engine writes it.
type ConversationStore interface {
	Get(ctx context.Context, ownerID uuid.UUID, customerID string) (domflow.Conversation, error)
	SetPendingFlow(ctx context.Context, ownerID uuid.UUID, customerID string, state domflow.State) error
	SetSupportHandoff(ctx context.Context, ownerID uuid.UUID, customerID string, open bool) error
	Evict(ctx context.Context, ownerID uuid.UUID, customerID string) error
}

type Inventory interface {
	Reserve(ctx context.Context, productID int64) (*commands.Reservation, error)
	Release(ctx context.Context, res *commands.Reservation) error
}

type Ledger interface {
	Debit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (ledger.DebitResult, error)
	Credit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, error)
}

type PurchaseRecorder interface {
	Record(ctx context.Context, rec *purchase.Record) error
}
