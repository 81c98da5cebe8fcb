package components

import (
	"stayspot/internal/handler"
	"stayspot/internal/handler/api"
	"stayspot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
