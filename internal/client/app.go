package client

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// App is a single directory client invocation.
type App struct {
	services *service.ClientServices
	browser  Browser
	output   config.ClientOutput
	out      io.Writer
	logger   *logger.Logger
}

// NewApp builds the client application. browser may be nil unless the output
// format is [config.OutputTUI].
func NewApp(services *service.ClientServices, browser Browser, output config.ClientOutput, out io.Writer, logger *logger.Logger) (*App, error) {
	if output.Format == config.OutputTUI && browser == nil {
		return nil, errNoBrowser
	}

	return &App{
		services: services,
		browser:  browser,
		output:   output,
		out:      out,
		logger:   logger,
	}, nil
}

// Run lists the directory once and writes it in the configured format. In
// TUI mode the browser owns the terminal and performs its own requests.
func (a *App) Run(ctx context.Context) error {
	if a.output.Format == config.OutputTUI {
		return a.browser.Browse(ctx, a.output.Query)
	}

	users, err := a.services.UserService.Search(ctx, a.output.Query)
	if err != nil {
		return err
	}

	a.logger.Debug().Int("count", len(users)).Str("format", a.output.Format).Msg("writing directory users")

	switch a.output.Format {
	case config.OutputJSON:
		return utils.EncodeJSON(a.out, users, true)
	case config.OutputTable:
		return writeTable(a.out, users)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, a.output.Format)
	}
}

func writeTable(w io.Writer, users []models.User) error {
	if len(users) == 0 {
		_, err := io.WriteString(w, "no users found\n")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		}).
		Headers("ID", "NAME", "EMAIL")

	for _, u := range users {
		t.Row(strconv.FormatInt(u.ID, 10), u.Name, u.Email)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
