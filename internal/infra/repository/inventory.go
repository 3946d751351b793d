package repository

import (
	"context"

	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"
)

type InventoryWriteQueries interface {
	ReserveProductUnit(ctx context.Context, db sqlc.DBTX, id int64) (int32, error)
	ReleaseProductUnit(ctx context.Context, db sqlc.DBTX, id int64) (int32, error)
	TouchProduct(ctx context.Context, db sqlc.DBTX, id int64) error
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// Reserve takes one unit with a single conditional update. ok is false when
// the row had no stock left or does not exist.
func (r *InventoryRepository) Reserve(ctx context.Context, tx sqlc.DBTX, productID int64) (int, bool, error) {
	remaining, err := r.queries.ReserveProductUnit(ctx, r.dbOr(tx), productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to reserve product unit", err)
	}
	return int(remaining), true, nil
}

func (r *InventoryRepository) Release(ctx context.Context, tx sqlc.DBTX, productID int64) (int, error) {
	stock, err := r.queries.ReleaseProductUnit(ctx, r.dbOr(tx), productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to release product unit", err)
	}
	return int(stock), nil
}

func (r *InventoryRepository) Touch(ctx context.Context, tx sqlc.DBTX, productID int64) error {
	if err := r.queries.TouchProduct(ctx, r.dbOr(tx), productID); err != nil {
		return infra.WrapRepoErr("failed to touch product", err)
	}
	return nil
}

func (r *InventoryRepository) dbOr(tx sqlc.DBTX) sqlc.DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}
