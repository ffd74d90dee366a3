package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/internal/tui"
	"github.com/MKhiriev/go-sol-vault/internal/workers"
)

type App struct {
	services *service.Services
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp builds the client runtime. The account refresh job runs only
// when background refresh is enabled.
func NewApp(services *service.Services, ui UI, refreshEnabled bool, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	var refresh workers.Worker
	if refreshEnabled && services.RefreshJob != nil {
		refresh = services.RefreshJob
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refresh),
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
