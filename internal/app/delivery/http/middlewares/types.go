package middlewares

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	IdentityProvider contracts.IdentityProvider
	// TokenVerifier is optional; without it every token goes to the provider.
	TokenVerifier contracts.TokenVerifier
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	identityProvider contracts.IdentityProvider,
	tokenVerifier contracts.TokenVerifier,
) *Middlewares {
	return &Middlewares{
		Log:              logger,
		InternalConfig:   internalConfig,
		IdentityProvider: identityProvider,
		TokenVerifier:    tokenVerifier,
	}
}
