package repository

import (
	"context"

	"shopbot/internal/domain/money"
	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	UpdateCategoryName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCategoryNameParams) (int64, error)
	UpdateCategoryPrice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCategoryPriceParams) (int64, error)
	UpdateCategorySku(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCategorySkuParams) (int64, error)
	ToggleCategoryActive(ctx context.Context, db sqlc.DBTX, arg sqlc.ToggleCategoryActiveParams) (bool, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) Rename(ctx context.Context, ownerID uuid.UUID, categoryID int64, name string) error {
	n, err := r.queries.UpdateCategoryName(ctx, r.db, sqlc.UpdateCategoryNameParams{
		OwnerID: ownerID,
		ID:      categoryID,
		Name:    name,
	})
	return affected(n, err, "category")
}

func (r *CatalogRepository) SetPrice(ctx context.Context, ownerID uuid.UUID, categoryID int64, price money.Cents) error {
	n, err := r.queries.UpdateCategoryPrice(ctx, r.db, sqlc.UpdateCategoryPriceParams{
		OwnerID:    ownerID,
		ID:         categoryID,
		PriceCents: price.Int64(),
	})
	return affected(n, err, "category")
}

func (r *CatalogRepository) SetSKU(ctx context.Context, ownerID uuid.UUID, categoryID int64, sku string) error {
	n, err := r.queries.UpdateCategorySku(ctx, r.db, sqlc.UpdateCategorySkuParams{
		OwnerID: ownerID,
		ID:      categoryID,
		Sku:     sku,
	})
	return affected(n, err, "category")
}

// ToggleActive returns the new active flag.
func (r *CatalogRepository) ToggleActive(ctx context.Context, ownerID uuid.UUID, categoryID int64) (bool, error) {
	active, err := r.queries.ToggleCategoryActive(ctx, r.db, sqlc.ToggleCategoryActiveParams{
		OwnerID: ownerID,
		ID:      categoryID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to toggle category", err)
	}
	return active, nil
}

func affected(n int64, err error, entity string) error {
	if err != nil {
		return infra.WrapRepoErr("failed to update "+entity, err)
	}
	if n == 0 {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	return nil
}
