package http

import (
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

// Settings holds the gateway options the HTTP layer needs.
type Settings struct {
	// TokenSignKey enables bearer authentication when not empty.
	TokenSignKey string
	TokenIssuer  string
	BuildInfo    models.AppBuildInfo
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", settings.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
