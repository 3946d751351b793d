package repository

import (
	"context"
	"time"

	"shopbot/internal/domain/flow"
	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ConversationQueries interface {
	GetConversationState(ctx context.Context, db sqlc.DBTX, arg sqlc.GetConversationStateParams) (sqlc.ConversationStates, error)
	UpsertPendingFlow(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPendingFlowParams) error
	UpsertSupportHandoff(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSupportHandoffParams) error
	DeleteConversationState(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteConversationStateParams) error
	ClearStalePendingFlows(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
}

// ConversationRepository is the Postgres conversation state store. Each write
// is a single upsert so a missing row never needs a separate insert path.
type ConversationRepository struct {
	queries ConversationQueries
	db      sqlc.DBTX
}

func NewConversationRepository(queries ConversationQueries, db sqlc.DBTX) *ConversationRepository {
	return &ConversationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ConversationRepository) Get(ctx context.Context, ownerID uuid.UUID, customerID string) (flow.Conversation, error) {
	row, err := r.queries.GetConversationState(ctx, r.db, sqlc.GetConversationStateParams{
		OwnerID:       ownerID,
		CustomerPhone: customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return flow.Idle(ownerID, customerID), nil
		}
		return flow.Conversation{}, infra.WrapRepoErr("failed to get conversation state", err)
	}

	return flow.Conversation{
		OwnerID:            row.OwnerID,
		CustomerID:         row.CustomerPhone,
		SupportHandoffOpen: row.SupportHandoffOpen,
		Pending:            flow.Decode(row.PendingFlow),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ConversationRepository) SetPendingFlow(ctx context.Context, ownerID uuid.UUID, customerID string, state flow.State) error {
	err := r.queries.UpsertPendingFlow(ctx, r.db, sqlc.UpsertPendingFlowParams{
		OwnerID:       ownerID,
		CustomerPhone: customerID,
		PendingFlow:   flow.Encode(state),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set pending flow", err)
	}
	return nil
}

func (r *ConversationRepository) SetSupportHandoff(ctx context.Context, ownerID uuid.UUID, customerID string, open bool) error {
	err := r.queries.UpsertSupportHandoff(ctx, r.db, sqlc.UpsertSupportHandoffParams{
		OwnerID:            ownerID,
		CustomerPhone:      customerID,
		SupportHandoffOpen: open,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set support handoff", err)
	}
	return nil
}

func (r *ConversationRepository) Evict(ctx context.Context, ownerID uuid.UUID, customerID string) error {
	err := r.queries.DeleteConversationState(ctx, r.db, sqlc.DeleteConversationStateParams{
		OwnerID:       ownerID,
		CustomerPhone: customerID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to evict conversation", err)
	}
	return nil
}

func (r *ConversationRepository) ClearStalePendingFlows(ctx context.Context, tx sqlc.DBTX, idleSince time.Time) (int64, error) {
	n, err := r.queries.ClearStalePendingFlows(ctx, tx, pgconv.TimeToPgtype(idleSince))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear stale pending flows", err)
	}
	return n, nil
}
