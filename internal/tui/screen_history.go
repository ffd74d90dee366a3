package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sol-vault/models"
)

type historyModel struct {
	operations []models.Operation
	idx        int
	loading    bool
	err        string
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.operations)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.history.loading = true
		return m, m.cmdLoadOperations()
	case key.Matches(keyMsg, keys.copy):
		if m.history.idx < len(m.history.operations) {
			if sig := m.history.operations[m.history.idx].Signature; sig != "" {
				return m, m.cmdCopy("Signature", sig)
			}
		}
	}
	return m, nil
}

func (m appModel) viewHistory() string {
	var b strings.Builder

	switch {
	case m.history.loading:
		b.WriteString("Loading history...")
	case m.history.err != "":
		b.WriteString(errorStyle.Render(m.history.err))
	case len(m.history.operations) == 0:
		b.WriteString("No operations yet")
	default:
		for i, op := range m.history.operations {
			line := fmt.Sprintf("%s %s  %-16s %-20s %s",
				cursor(i == m.history.idx),
				op.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				op.Action,
				op.Status,
				fitText(op.Message, 60),
			)
			if i == m.history.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
	}

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"), "c: copy signature │ r: reload │ esc: back")
}
