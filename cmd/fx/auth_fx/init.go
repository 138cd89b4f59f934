package auth_fx

import (
	"go.uber.org/fx"

	"proforge/internal/config"
	"proforge/pkg/utils"
)

var Module = fx.Provide(provideTokenIssuer)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
