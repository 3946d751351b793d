package repository

import (
	"context"

	"shopbot/internal/domain/money"
	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"
	"shopbot/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceWriteQueries interface {
	DebitCustomerBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitCustomerBalanceParams) (int64, error)
	CreditCustomerBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CreditCustomerBalanceParams) (int64, error)
	GetCustomerBalanceState(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerBalanceStateParams) (sqlc.GetCustomerBalanceStateRow, error)
}

type BalanceRepository struct {
	queries BalanceWriteQueries
	db      sqlc.DBTX
}

func NewBalanceRepository(queries BalanceWriteQueries, db sqlc.DBTX) *BalanceRepository {
	return &BalanceRepository{
		queries: queries,
		db:      db,
	}
}

// Debit subtracts amount only when the customer is unblocked and can cover
// it. ok is false when the guard rejected the update.
func (r *BalanceRepository) Debit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, bool, error) {
	balance, err := r.queries.DebitCustomerBalance(ctx, r.db, sqlc.DebitCustomerBalanceParams{
		Amount:  amount.Int64(),
		OwnerID: ownerID,
		ID:      customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to debit customer balance", err)
	}
	return money.Cents(balance), true, nil
}

func (r *BalanceRepository) Credit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, error) {
	balance, err := r.queries.CreditCustomerBalance(ctx, r.db, sqlc.CreditCustomerBalanceParams{
		Amount:  amount.Int64(),
		OwnerID: ownerID,
		ID:      customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to credit customer balance", err)
	}
	return money.Cents(balance), nil
}

func (r *BalanceRepository) Snapshot(ctx context.Context, ownerID uuid.UUID, customerID int64) (*shared.BalanceSnapshot, error) {
	row, err := r.queries.GetCustomerBalanceState(ctx, r.db, sqlc.GetCustomerBalanceStateParams{
		OwnerID: ownerID,
		ID:      customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read customer balance", err)
	}
	return &shared.BalanceSnapshot{
		Balance: money.Cents(row.BalanceCents),
		Blocked: row.Blocked,
	}, nil
}
