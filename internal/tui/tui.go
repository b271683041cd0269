// Package tui implements the interactive terminal browser over the remote
// user directory.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the bubbletea directory browser.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Browse opens the browser pre-filtered by query and blocks until the user
// quits or ctx is done.
func (t *TUI) Browse(ctx context.Context, query string) error {
	model := newBrowserModel(ctx, t.services.UserService, t.buildInfo, query, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running directory browser: %w", err)
	}

	return nil
}
