package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"proforge/internal/config"
	"proforge/internal/infra"
)

var Module = fx.Provide(provideLogger)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	// The error mapper logs unexpected failures through zap.L().
	zap.ReplaceGlobals(logger)
	return logger, nil
}
