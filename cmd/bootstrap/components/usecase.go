package components

import (
	"log/slog"

	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/config"
	"shopbot/internal/usecase"
	"shopbot/internal/usecase/commands"
	"shopbot/internal/usecase/flow"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseFlowModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryUseCase,
		commands.NewLedgerUseCase,
		commands.NewPurchaseUseCase,
	),
)

var usecaseFlowModule = fx.Module("usecase/flow",
	fx.Provide(
		NewFlowEngine,
		NewWebhookUseCase,
	),
)

type FlowParams struct {
	fx.In

	Messenger      flow.Messenger
	Catalog        flow.Catalog
	CatalogEditor  flow.CatalogEditor
	Customers      flow.Customers
	CustomerEditor flow.CustomerEditor
	Admins         flow.Admins
	Payments       flow.Payments
	Notifier       flow.Notifier
	Transcript     flow.SupportTranscript
	Conversations  flow.ConversationStore
	Inventory      commands.InventoryCommands
	Ledger         commands.LedgerCommands
	Purchases      commands.PurchaseCommands
	Clock          clock.Clock
	Logger         *slog.Logger
}

func NewFlowEngine(p FlowParams) flow.Engine {
	return flow.NewEngine(flow.Deps{
		Messenger:      p.Messenger,
		Catalog:        p.Catalog,
		CatalogEditor:  p.CatalogEditor,
		Customers:      p.Customers,
		CustomerEditor: p.CustomerEditor,
		Admins:         p.Admins,
		Payments:       p.Payments,
		Notifier:       p.Notifier,
		Transcript:     p.Transcript,
		Conversations:  p.Conversations,
		Inventory:      p.Inventory,
		Ledger:         p.Ledger,
		Purchases:      p.Purchases,
	}, p.Clock, p.Logger)
}

func NewWebhookUseCase(
	owners usecase.OwnerRepository,
	events usecase.InboundEventRepository,
	engine flow.Engine,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.WebhookUseCase {
	return usecase.NewWebhookUseCase(owners, events, engine, cfg.WhatsApp.VerifyToken, cfg.Sweeper.InboundDedupe, clk, logger)
}
