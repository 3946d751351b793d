package bootstrap

import (
	"context"
	"log/slog"

	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/config"
	"shopbot/internal/usecase"
	"shopbot/internal/usecase/shared"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewSweeper(uow shared.UnitOfWork, cfg config.Config, clk clock.Clock, logger *slog.Logger) usecase.SweeperUseCase {
	return usecase.NewSweeperUseCase(uow, cfg.Sweeper.PendingFlowTTL, clk, logger)
}

func startSweeper(lc fx.Lifecycle, sweeper usecase.SweeperUseCase, cfg config.Config, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled {
		logger.Info("sweeper disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start(context.WithoutCancel(ctx), cfg.Sweeper.Schedule)
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-sweeper.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
}
