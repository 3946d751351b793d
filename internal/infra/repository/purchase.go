package repository

import (
	"context"

	"shopbot/internal/domain/purchase"
	"shopbot/internal/infra"
	"shopbot/internal/infra/repository/converter"
	sqlc "shopbot/internal/infra/sqlc/generated"
)

type PurchaseWriteQueries interface {
	InsertPurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPurchaseParams) error
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
}

func NewPurchaseRepository(queries PurchaseWriteQueries) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
	}
}

func (r *PurchaseRepository) Append(ctx context.Context, tx sqlc.DBTX, rec *purchase.Record) error {
	if err := r.queries.InsertPurchase(ctx, tx, converter.PurchaseToInsertParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to insert purchase", err)
	}
	return nil
}
