package usecase

import (
	"context"
	"log/slog"
	"time"

	"shopbot/internal/pkg/clock"
	"shopbot/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

// SweepResult counts what one sweep removed.
type SweepResult struct {
	StaleFlows    int64
	ExpiredEvents int64
}

type SweeperUseCase interface {
	Sweep(ctx context.Context) (SweepResult, error)
	Start(ctx context.Context, spec string) error
	Stop() context.Context
}

type sweeperUseCaseImpl struct {
	uow            shared.UnitOfWork
	pendingFlowTTL time.Duration
	clock          clock.Clock
	logger         *slog.Logger
	cron           *cron.Cron
}

func NewSweeperUseCase(uow shared.UnitOfWork, pendingFlowTTL time.Duration, clock clock.Clock, logger *slog.Logger) SweeperUseCase {
	return &sweeperUseCaseImpl{
		uow:            uow,
		pendingFlowTTL: pendingFlowTTL,
		clock:          clock,
		logger:         logger.With(slog.String("component", "sweeper")),
		cron:           cron.New(),
	}
}

// Sweep drops admin input flows nobody answered and forgets expired
// inbound message ids.
func (s *sweeperUseCaseImpl) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Conversations().ClearStalePendingFlows(ctx, tx.DB(), s.clock.Now().Add(-s.pendingFlowTTL))
		if err != nil {
			return err
		}
		res.StaleFlows = n

		n, err = tx.InboundEvents().DeleteExpired(ctx, tx.DB())
		if err != nil {
			return err
		}
		res.ExpiredEvents = n
		return nil
	})
	if err != nil {
		return SweepResult{}, err
	}
	return res, nil
}

func (s *sweeperUseCaseImpl) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		res, err := s.Sweep(context.WithoutCancel(ctx))
		if err != nil {
			s.logger.Error("sweep failed", "error", err)
			return
		}
		if res.StaleFlows > 0 || res.ExpiredEvents > 0 {
			s.logger.Info("sweep finished",
				"stale_flows", res.StaleFlows,
				"expired_events", res.ExpiredEvents)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop returns a context that is done once a running sweep has finished.
func (s *sweeperUseCaseImpl) Stop() context.Context {
	return s.cron.Stop()
}
