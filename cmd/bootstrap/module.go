package bootstrap

import (
	"github.com/rahma103/calendrier-reservation-v2/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
