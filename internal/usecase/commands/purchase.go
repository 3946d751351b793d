package commands

import (
	"context"

	"shopbot/internal/domain/purchase"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/shared"
)

var ErrPurchaseRecordFailed = errs.New("failed to record purchase")

type PurchaseCommands interface {
	Record(ctx context.Context, rec *purchase.Record) error
}

type purchaseUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPurchaseUseCase(uow shared.UnitOfWork) PurchaseCommands {
	return &purchaseUseCaseImpl{uow: uow}
}

// Record appends the sale and bumps the unit's updated_at in one transaction,
// which moves a multi-stock unit to the back of the rotation.
func (uc *purchaseUseCaseImpl) Record(ctx context.Context, rec *purchase.Record) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Purchases().Append(ctx, tx.DB(), rec); err != nil {
			return err
		}
		return tx.Products().Touch(ctx, tx.DB(), rec.ProductID())
	})
	if err != nil {
		return errs.Mark(err, ErrPurchaseRecordFailed)
	}
	return nil
}
