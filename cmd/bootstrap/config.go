package bootstrap

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
