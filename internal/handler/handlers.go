package handler

import (
	"github.com/MKhiriev/go-sol-vault/internal/config"
	"github.com/MKhiriev/go-sol-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-sol-vault/internal/handler/http"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.GatewayConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, http.Settings{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			BuildInfo:    buildInfo,
		}, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, cfg.App.TokenSignKey, cfg.App.TokenIssuer, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
