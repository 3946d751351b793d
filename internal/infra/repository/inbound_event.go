package repository

import (
	"context"
	"time"

	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InboundEventQueries interface {
	TryInsertInboundEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertInboundEventParams) (int64, error)
	DeleteExpiredInboundEvents(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// InboundEventRepository remembers provider message ids so redelivered
// webhooks are dropped before they reach the flow engine.
type InboundEventRepository struct {
	queries InboundEventQueries
	db      sqlc.DBTX
}

func NewInboundEventRepository(queries InboundEventQueries, db sqlc.DBTX) *InboundEventRepository {
	return &InboundEventRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert returns true the first time a message id is seen.
func (r *InboundEventRepository) TryInsert(ctx context.Context, ownerID uuid.UUID, providerMessageID string, expiresAt time.Time) (bool, error) {
	n, err := r.queries.TryInsertInboundEvent(ctx, r.db, sqlc.TryInsertInboundEventParams{
		OwnerID:           ownerID,
		ProviderMessageID: providerMessageID,
		ExpiresAt:         pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert inbound event", err)
	}
	return n == 1, nil
}

func (r *InboundEventRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	count, err := r.queries.DeleteExpiredInboundEvents(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired inbound events", err)
	}

	return count, nil
}
