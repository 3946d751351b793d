package bootstrap

import (
	"shopbot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	StateModule,
	components.CollaboratorModule,
	components.UseCaseModule,
	SweeperModule,
	components.HandlerModule,
)
