package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/service"
	"github.com/MKhiriev/go-sol-vault/models"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the interface until the user quits or ctx is cancelled. It
// returns ErrUserQuit when the user left explicitly.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services.Actions, t.services.Notifier, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
