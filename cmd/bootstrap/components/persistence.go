package components

import (
	"shopbot/internal/infra/readstore"
	"shopbot/internal/infra/repository"
	sqlc "shopbot/internal/infra/sqlc/generated"
	"shopbot/internal/infra/uow"
	"shopbot/internal/usecase"
	"shopbot/internal/usecase/commands"
	"shopbot/internal/usecase/flow"
	"shopbot/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Owner / admin
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OwnerReadQueries)),
		),
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(flow.Admins)),
			fx.As(new(usecase.OwnerRepository)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(flow.Catalog)),
		),
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(flow.Customers)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.InventoryWriteQueries)),
		),
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
		),
		// Balance
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BalanceWriteQueries)),
		),
		fx.Annotate(
			repository.NewBalanceRepository,
			fx.As(new(commands.BalanceRepository)),
		),
		// Catalog edits
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CatalogWriteQueries)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(flow.CatalogEditor)),
		),
		// Customer edits
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CustomerWriteQueries)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(flow.CustomerEditor)),
		),
		// Support transcript
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SupportQueries)),
		),
		fx.Annotate(
			repository.NewSupportRepository,
			fx.As(new(flow.SupportTranscript)),
		),
		// Inbound dedupe
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.InboundEventQueries)),
		),
		fx.Annotate(
			repository.NewInboundEventRepository,
			fx.As(new(usecase.InboundEventRepository)),
		),
		// Conversation state (postgres backend; see StateModule)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ConversationQueries)),
		),
		repository.NewConversationRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
