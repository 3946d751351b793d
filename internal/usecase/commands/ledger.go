package commands

import (
	"context"
	"log/slog"

	"shopbot/internal/domain/ledger"
	"shopbot/internal/domain/money"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNonPositiveAmount = errs.New("amount must be positive")

// A failed guard is re-read at most this many times when the read shows the
// row became eligible in between.
const maxDebitAttempts = 3

type LedgerCommands interface {
	Debit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (ledger.DebitResult, error)
	Credit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, error)
}

type ledgerUseCaseImpl struct {
	repo   BalanceRepository
	logger *slog.Logger
}

func NewLedgerUseCase(repo BalanceRepository, logger *slog.Logger) LedgerCommands {
	return &ledgerUseCaseImpl{
		repo:   repo,
		logger: logger.With(slog.String("component", "ledger")),
	}
}

// Debit runs the conditional update first and only reads the row to explain
// a rejection. Blocked is reported before Insufficient.
func (uc *ledgerUseCaseImpl) Debit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (ledger.DebitResult, error) {
	if !amount.IsPositive() {
		return ledger.DebitResult{}, ErrNonPositiveAmount
	}

	for attempt := 1; ; attempt++ {
		balance, ok, err := uc.repo.Debit(ctx, ownerID, customerID, amount)
		if err != nil {
			return ledger.DebitResult{}, err
		}
		if ok {
			return ledger.Succeeded(customerID, balance), nil
		}

		snap, err := uc.repo.Snapshot(ctx, ownerID, customerID)
		if err != nil {
			if infra.IsNotFound(err) {
				return ledger.Failed(customerID, ledger.ReasonNotFound, 0), nil
			}
			return ledger.DebitResult{}, err
		}
		switch {
		case snap.Blocked:
			return ledger.Failed(customerID, ledger.ReasonBlocked, snap.Balance), nil
		case snap.Balance < amount:
			return ledger.Failed(customerID, ledger.ReasonInsufficient, snap.Balance), nil
		}

		// a concurrent credit or unblock landed between the update and the read
		if attempt >= maxDebitAttempts {
			uc.logger.Warn("debit kept losing to concurrent updates",
				"customer_id", customerID,
				"attempts", attempt)
			return ledger.Failed(customerID, ledger.ReasonInsufficient, snap.Balance), nil
		}
	}
}

func (uc *ledgerUseCaseImpl) Credit(ctx context.Context, ownerID uuid.UUID, customerID int64, amount money.Cents) (money.Cents, error) {
	if !amount.IsPositive() {
		return 0, ErrNonPositiveAmount
	}
	balance, err := uc.repo.Credit(ctx, ownerID, customerID, amount)
	if err != nil {
		if infra.IsNotFound(err) {
			return 0, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return 0, err
	}
	return balance, nil
}
