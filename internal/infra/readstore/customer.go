package readstore

import (
	"context"

	"shopbot/internal/domain/customer"
	"shopbot/internal/infra"
	"shopbot/internal/infra/repository/converter"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerByIDParams) (sqlc.Customers, error)
	GetCustomerByPhone(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerByPhoneParams) (sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) ByID(ctx context.Context, ownerID uuid.UUID, customerID int64) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, sqlc.GetCustomerByIDParams{
		OwnerID: ownerID,
		ID:      customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerReadStore) ByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByPhone(ctx, r.db, sqlc.GetCustomerByPhoneParams{
		OwnerID: ownerID,
		Phone:   phone,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by phone", err)
	}
	return converter.CustomerFromRow(row), nil
}
