package config_fx

import (
	"go.uber.org/fx"

	"proforge/internal/config"
)

var Module = fx.Provide(config.Load)
