// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL = 2 * time.Second

	// listChromeLines is the screen height taken by everything but user rows.
	listChromeLines = 12
)

type browserModel struct {
	ctx       context.Context
	users     service.ClientUserService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	list          listModel
	filter        textinput.Model
	filtering     bool
	showBuildInfo bool
	status        string
	err           error
	quitting      bool

	writeClipboard func(string) error
}

func newBrowserModel(ctx context.Context, users service.ClientUserService, buildInfo models.AppBuildInfo, query string, log *logger.Logger) browserModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name or e-mail"
	ti.CharLimit = 128
	ti.SetValue(query)

	return browserModel{
		ctx:            ctx,
		users:          users,
		buildInfo:      buildInfo,
		logger:         log,
		list:           newListModel(),
		filter:         ti,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.showBuildInfo:
			return m.updateBuildInfo(msg)
		case m.filtering:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}

	case tea.WindowSizeMsg:
		m.list.height = msg.Height
		m.list = m.list.scroll()
		return m, nil

	case usersLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error().Err(msg.err).Str("kind", errorKind(msg.err)).Msg("error loading directory users")
			return m, nil
		}
		m.err = nil
		m.list = m.list.setUsers(msg.users, m.filter.Value())
		return m, nil

	case copiedMsg:
		m.status = "Copied " + msg.email
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = ""
		m.err = msg.err
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list = m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list = m.list.move(1)
	case key.Matches(msg, keys.top):
		m.list = m.list.moveTo(0)
	case key.Matches(msg, keys.bottom):
		m.list = m.list.moveTo(len(m.list.items) - 1)
	case key.Matches(msg, keys.filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.esc):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.list = m.list.applyFilter("")
		}
	case key.Matches(msg, keys.reload):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		m.err = nil
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadUsers())
	case key.Matches(msg, keys.copy):
		if u, ok := m.list.current(); ok {
			return m, m.cmdCopyEmail(u.Email)
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.list = m.list.applyFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.list = m.list.applyFilter(m.filter.Value())
	return m, cmd
}

func (m browserModel) updateBuildInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = false
	}
	return m, nil
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	header := titleStyle.Render("User directory")
	if m.list.loading && len(m.list.all) > 0 {
		header += "  " + m.list.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.list.View(m.filter.Value()))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(humanizeDirectoryError(m.err)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return appStyle.Render(b.String())
}

func (m browserModel) helpLine() string {
	if m.filtering {
		return "enter: apply  esc: clear  ctrl+c: quit"
	}
	return "↑/k ↓/j: move  /: filter  r: reload  c: copy e-mail  v: about  q: quit"
}

func (m browserModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	svc := m.users
	return func() tea.Msg {
		users, err := svc.List(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m browserModel) cmdCopyEmail(email string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(email); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{email: email}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
