package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"shopbot/internal/infra"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/shared"
)

var (
	ErrAlreadyReleased = errs.New("reservation already released")
	ErrNotReserved     = errs.New("reservation did not take a unit")
	ErrProductNotFound = errs.New("product not found")
)

// Reservation is the outcome of one Reserve call. A successful reservation
// can be released at most once.
type Reservation struct {
	ProductID int64
	Reserved  bool
	Remaining int
	released  atomic.Bool
}

func (r *Reservation) Released() bool { return r.released.Load() }

type InventoryCommands interface {
	Reserve(ctx context.Context, productID int64) (*Reservation, error)
	Release(ctx context.Context, res *Reservation) error
}

type inventoryUseCaseImpl struct {
	uow    shared.UnitOfWork
	repo   InventoryRepository
	logger *slog.Logger
}

func NewInventoryUseCase(uow shared.UnitOfWork, repo InventoryRepository, logger *slog.Logger) InventoryCommands {
	return &inventoryUseCaseImpl{
		uow:    uow,
		repo:   repo,
		logger: logger.With(slog.String("component", "inventory")),
	}
}

// Reserve never returns an error for a lost race; that is Reserved == false.
func (uc *inventoryUseCaseImpl) Reserve(ctx context.Context, productID int64) (*Reservation, error) {
	res := &Reservation{ProductID: productID}
	err := uc.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		remaining, ok, err := uc.repo.Reserve(ctx, db, productID)
		if err != nil {
			return err
		}
		res.Reserved = ok
		res.Remaining = remaining
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Release returns the unit taken by res. The release flag is claimed before
// touching stock so two concurrent callers cannot both increment.
func (uc *inventoryUseCaseImpl) Release(ctx context.Context, res *Reservation) error {
	if res == nil || !res.Reserved {
		return ErrNotReserved
	}
	if !res.released.CompareAndSwap(false, true) {
		return ErrAlreadyReleased
	}

	err := uc.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		stock, err := uc.repo.Release(ctx, db, res.ProductID)
		if err != nil {
			return err
		}
		uc.logger.Info("reservation released", "product_id", res.ProductID, "stock", stock)
		return nil
	})
	if err != nil {
		// the unit is still out; let a retry try again
		res.released.Store(false)
		if infra.IsNotFound(err) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return err
	}
	return nil
}
