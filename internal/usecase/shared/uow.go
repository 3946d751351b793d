package shared

import (
	"context"
	"time"

	"shopbot/internal/domain/purchase"
	sqlc "shopbot/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Purchases() PurchaseRepository
	Products() ProductRepository
	Conversations() ConversationMaintenance
	InboundEvents() InboundEventRepository
	DB() sqlc.DBTX
}

type PurchaseRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, rec *purchase.Record) error
}

type ProductRepository interface {
	Touch(ctx context.Context, tx sqlc.DBTX, productID int64) error
}

// ConversationMaintenance is the bulk side of the conversation store, used by
// the sweeper only.
type ConversationMaintenance interface {
	ClearStalePendingFlows(ctx context.Context, tx sqlc.DBTX, idleSince time.Time) (int64, error)
}

type InboundEventRepository interface {
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}
