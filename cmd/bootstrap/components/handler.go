package components

import (
	"shopbot/internal/handler"
	"shopbot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
	),
	fx.Invoke(handler.NewRouter),
)
