package repository

import (
	"context"

	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"
	"shopbot/internal/usecase/shared"

	"github.com/google/uuid"
)

type SupportQueries interface {
	OpenSupportThread(ctx context.Context, db sqlc.DBTX, arg sqlc.OpenSupportThreadParams) (uuid.UUID, error)
	GetOpenSupportThread(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOpenSupportThreadParams) (sqlc.SupportThreads, error)
	AppendSupportMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.AppendSupportMessageParams) error
	CloseSupportThread(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseSupportThreadParams) (int64, error)
}

// SupportRepository keeps the human-support transcript. At most one thread per
// (owner, customer) is open at a time; opening again returns the open one.
type SupportRepository struct {
	queries SupportQueries
	db      sqlc.DBTX
}

func NewSupportRepository(queries SupportQueries, db sqlc.DBTX) *SupportRepository {
	return &SupportRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SupportRepository) Open(ctx context.Context, ownerID uuid.UUID, customerID string) (uuid.UUID, error) {
	id, err := r.queries.OpenSupportThread(ctx, r.db, sqlc.OpenSupportThreadParams{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		CustomerPhone: customerID,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to open support thread", err)
	}
	return id, nil
}

// Append writes to the open thread, opening one if the dashboard closed it
// underneath an active handoff.
func (r *SupportRepository) Append(ctx context.Context, ownerID uuid.UUID, customerID string, entry shared.TranscriptEntry) error {
	var threadID uuid.UUID
	thread, err := r.queries.GetOpenSupportThread(ctx, r.db, sqlc.GetOpenSupportThreadParams{
		OwnerID:       ownerID,
		CustomerPhone: customerID,
	})
	switch {
	case err == nil:
		threadID = thread.ID
	case pgconv.IsNoRows(err):
		threadID, err = r.Open(ctx, ownerID, customerID)
		if err != nil {
			return err
		}
	default:
		return infra.WrapRepoErr("failed to find open support thread", err)
	}

	err = r.queries.AppendSupportMessage(ctx, r.db, sqlc.AppendSupportMessageParams{
		ThreadID:  threadID,
		Direction: string(entry.Direction),
		Body:      entry.Body,
		MediaID:   entry.MediaID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append support message", err)
	}
	return nil
}

// Close reports whether a thread was actually open.
func (r *SupportRepository) Close(ctx context.Context, ownerID uuid.UUID, customerID string) (bool, error) {
	n, err := r.queries.CloseSupportThread(ctx, r.db, sqlc.CloseSupportThreadParams{
		OwnerID:       ownerID,
		CustomerPhone: customerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to close support thread", err)
	}
	return n > 0, nil
}
