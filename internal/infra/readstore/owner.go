package readstore

import (
	"context"

	"shopbot/internal/domain/owner"
	"shopbot/internal/infra"
	"shopbot/internal/infra/repository/converter"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OwnerReadQueries interface {
	GetOwnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Owners, error)
	GetAdminByPhone(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAdminByPhoneParams) (sqlc.Admins, error)
}

type OwnerReadStore struct {
	queries OwnerReadQueries
	db      sqlc.DBTX
}

func NewOwnerReadStore(queries OwnerReadQueries, db sqlc.DBTX) *OwnerReadStore {
	return &OwnerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OwnerReadStore) OwnerByID(ctx context.Context, ownerID uuid.UUID) (*owner.Owner, error) {
	row, err := r.queries.GetOwnerByID(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owner by ID", err)
	}
	return converter.OwnerFromRow(row), nil
}

// AdminByPhone returns inactive admins too; the caller decides what an
// inactive record means for the session.
func (r *OwnerReadStore) AdminByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*owner.Admin, error) {
	row, err := r.queries.GetAdminByPhone(ctx, r.db, sqlc.GetAdminByPhoneParams{
		OwnerID: ownerID,
		Phone:   phone,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by phone", err)
	}
	return converter.AdminFromRow(row), nil
}
