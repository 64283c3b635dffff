package components

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/handler"
	"github.com/rahma103/calendrier-reservation-v2/internal/handler/api"
	"github.com/rahma103/calendrier-reservation-v2/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
