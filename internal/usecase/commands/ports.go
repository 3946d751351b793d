package commands

import (
	"context"

	"shopbot/internal/domain/money"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/usecase/shared"

	"github.com/google/uuid"
)

// Write-side primitives. Each one is a single conditional statement, so
// callers never read-then-write stock or balance.

type InventoryRepository interface {
	Reserve(ctx context.Context, tx sqlc.DBTX, productID int64) (int, bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, productID int64) (int, error)
}

type BalanceRepository interface {
	Debit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, bool, error)
	Credit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, error)
	Snapshot(ctx context.Context, ownerID uuid.UUID, customerID int64) (*shared.BalanceSnapshot, error)
}
