package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const (
	idColumnWidth   = 6
	nameColumnWidth = 28
	maxEmailWidth   = 40
)

type listModel struct {
	all     []models.User
	items   []models.User
	idx     int
	offset  int
	height  int
	loading bool
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

// setUsers replaces the directory snapshot and reapplies query.
func (m listModel) setUsers(users []models.User, query string) listModel {
	m.all = users
	return m.applyFilter(query)
}

func (m listModel) applyFilter(query string) listModel {
	m.items = service.FilterUsers(m.all, query)
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m.scroll()
}

func (m listModel) current() (models.User, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.User{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) move(delta int) listModel {
	if len(m.items) == 0 {
		return m
	}
	m.idx += delta
	if m.idx < 0 {
		m.idx = 0
	}
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	return m.scroll()
}

func (m listModel) moveTo(idx int) listModel {
	m.idx = 0
	return m.move(idx)
}

// scroll keeps the cursor inside the visible window.
func (m listModel) scroll() listModel {
	rows := m.rows()
	if rows <= 0 {
		m.offset = 0
		return m
	}
	if m.idx < m.offset {
		m.offset = m.idx
	}
	if m.idx >= m.offset+rows {
		m.offset = m.idx - rows + 1
	}
	if m.offset > len(m.items)-rows {
		m.offset = max(len(m.items)-rows, 0)
	}
	return m
}

// rows is the number of users that fit on screen; zero means unlimited.
func (m listModel) rows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-listChromeLines, 1)
}

func (m listModel) View(query string) string {
	var b strings.Builder

	if m.loading && len(m.all) == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading users...\n")
		return b.String()
	}

	if len(m.items) == 0 {
		if query != "" {
			fmt.Fprintf(&b, "No users match %q\n", query)
		} else {
			b.WriteString("The directory is empty\n")
		}
		return b.String()
	}

	b.WriteString(helpStyle.Render(
		"  " + padRight("ID", idColumnWidth) + " " + padRight("NAME", nameColumnWidth) + " EMAIL"))
	b.WriteString("\n")

	end := len(m.items)
	if rows := m.rows(); rows > 0 {
		end = min(m.offset+rows, len(m.items))
	}

	for i := m.offset; i < end; i++ {
		u := m.items[i]
		line := padRight(strconv.FormatInt(u.ID, 10), idColumnWidth) + " " +
			padRight(fitText(u.Name, nameColumnWidth), nameColumnWidth) + " " +
			fitText(u.Email, maxEmailWidth)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d of %d users", len(m.items), len(m.all))
	b.WriteString("\n")

	return b.String()
}
