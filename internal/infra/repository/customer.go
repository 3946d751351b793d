package repository

import (
	"context"

	"shopbot/internal/domain/customer"
	"shopbot/internal/infra"
	"shopbot/internal/infra/repository/converter"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	UpsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerParams) (sqlc.Customers, error)
	UpdateCustomerName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerNameParams) (int64, error)
	ToggleCustomerBlocked(ctx context.Context, db sqlc.DBTX, arg sqlc.ToggleCustomerBlockedParams) (bool, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

// Ensure creates the customer on first contact. An existing name is never
// overwritten by the provider profile name.
func (r *CustomerRepository) Ensure(ctx context.Context, ownerID uuid.UUID, phone, profileName string) (*customer.Customer, error) {
	row, err := r.queries.UpsertCustomer(ctx, r.db, sqlc.UpsertCustomerParams{
		OwnerID: ownerID,
		Phone:   phone,
		Name:    profileName,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerRepository) Rename(ctx context.Context, ownerID uuid.UUID, customerID int64, name string) error {
	n, err := r.queries.UpdateCustomerName(ctx, r.db, sqlc.UpdateCustomerNameParams{
		OwnerID: ownerID,
		ID:      customerID,
		Name:    name,
	})
	return affected(n, err, "customer")
}

func (r *CustomerRepository) ToggleBlocked(ctx context.Context, ownerID uuid.UUID, customerID int64) (bool, error) {
	blocked, err := r.queries.ToggleCustomerBlocked(ctx, r.db, sqlc.ToggleCustomerBlockedParams{
		OwnerID: ownerID,
		ID:      customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to toggle customer block", err)
	}
	return blocked, nil
}
