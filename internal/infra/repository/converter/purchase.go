package converter

import (
	"shopbot/internal/domain/purchase"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/pgconv"
)

func PurchaseToInsertParams(r *purchase.Record) sqlc.InsertPurchaseParams {
	return sqlc.InsertPurchaseParams{
		ID:                r.ID(),
		OwnerID:           r.OwnerID(),
		CustomerID:        r.CustomerID(),
		CategoryID:        r.CategoryID(),
		ProductID:         r.ProductID(),
		PriceCents:        r.Price().Int64(),
		BalanceAfterCents: r.BalanceAfter().Int64(),
		CreatedAt:         pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
