package readstore

import (
	"context"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/infra"
	"shopbot/internal/infra/repository/converter"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	ListCategoriesWithStock(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCategoriesWithStockParams) ([]sqlc.ListCategoriesWithStockRow, error)
	GetCategoryWithStock(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCategoryWithStockParams) (sqlc.GetCategoryWithStockRow, error)
	FindOldestAvailableProduct(ctx context.Context, db sqlc.DBTX, categoryID int64) (sqlc.Products, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// ListCategories reads one page. It asks for one extra row to learn whether
// another page exists.
func (r *CatalogReadStore) ListCategories(ctx context.Context, ownerID uuid.UUID, onlyActive bool, offset int) (catalog.Page, error) {
	rows, err := r.queries.ListCategoriesWithStock(ctx, r.db, sqlc.ListCategoriesWithStockParams{
		OwnerID:    ownerID,
		OnlyActive: onlyActive,
		Lim:        catalog.PageSize + 1,
		Off:        int32(offset), // #nosec G115 -- offset is bounded by the reply-id codec
	})
	if err != nil {
		return catalog.Page{}, infra.WrapRepoErr("failed to list categories", err)
	}

	page := catalog.Page{Offset: offset}
	if len(rows) > catalog.PageSize {
		rows = rows[:catalog.PageSize]
		page.HasMore = true
		page.NextOffset = offset + catalog.PageSize
	}
	page.Items = make([]catalog.Category, len(rows))
	for i, row := range rows {
		page.Items[i] = converter.CategoryFromListRow(row)
	}
	return page, nil
}

func (r *CatalogReadStore) CategoryByID(ctx context.Context, ownerID uuid.UUID, categoryID int64) (*catalog.Category, error) {
	row, err := r.queries.GetCategoryWithStock(ctx, r.db, sqlc.GetCategoryWithStockParams{
		OwnerID: ownerID,
		ID:      categoryID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return converter.CategoryFromRow(row), nil
}

// OldestAvailableUnit picks the least recently sold unit so stock rotates.
func (r *CatalogReadStore) OldestAvailableUnit(ctx context.Context, categoryID int64) (*catalog.Product, error) {
	row, err := r.queries.FindOldestAvailableProduct(ctx, r.db, categoryID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available product", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find available product", err)
	}
	return converter.ProductFromRow(row), nil
}
