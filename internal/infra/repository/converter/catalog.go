package converter

import (
	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/money"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"
)

func CategoryFromListRow(row sqlc.ListCategoriesWithStockRow) catalog.Category {
	return catalog.Category{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Price:       money.Cents(row.PriceCents),
		SKU:         row.Sku,
		Active:      row.IsActive,
		Available:   int(row.Available),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func CategoryFromRow(row sqlc.GetCategoryWithStockRow) *catalog.Category {
	c := CategoryFromListRow(sqlc.ListCategoriesWithStockRow(row))
	return &c
}

func ProductFromRow(row sqlc.Products) *catalog.Product {
	p := &catalog.Product{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		Content:    row.Content,
		Stock:      int(row.Stock),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.MediaUrl != "" {
		p.Media = &catalog.Media{
			URL:      row.MediaUrl,
			MimeType: row.MediaMime,
			Filename: row.MediaFilename,
		}
	}
	return p
}
