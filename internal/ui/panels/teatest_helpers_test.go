package panels

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/skillcat/internal/catalog"
)

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

// wrapListing creates a tea.Model adapter around a Listing for teatest use.
func wrapListing(l *Listing) tea.Model {
	return panelAdapter{
		view: func() string { return l.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newL, cmd := l.Update(msg)
			*l = newL
			return cmd
		},
	}
}

// wrapDetail creates a tea.Model adapter around a Detail for teatest use.
func wrapDetail(d *Detail) tea.Model {
	return panelAdapter{
		view: func() string { return d.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newD, cmd := d.Update(msg)
			*d = newD
			return cmd
		},
	}
}

// wrapStatusBar creates a tea.Model adapter around a StatusBar for teatest use.
// StatusBar has no Update method, so the adapter uses a no-op.
func wrapStatusBar(sb *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return sb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

// wrapHelpOverlay creates a tea.Model adapter around a HelpOverlay for teatest use.
func wrapHelpOverlay(h *HelpOverlay) tea.Model {
	return panelAdapter{
		view: func() string { return h.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newH, cmd := h.Update(msg)
			*h = newH
			return cmd
		},
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testIndex() catalog.Index {
	return catalog.Index{
		{ID: "react-hooks", Name: "react-hooks", Description: "Patterns for React hooks and effects", Category: "frontend", Source: "acme", Path: "frontend/react-hooks"},
		{ID: "secret-scan", Name: "secret-scan", Description: "Scan diffs for leaked credentials", Category: "security", Path: "security/secret-scan"},
		{ID: "go-table-tests", Name: "go-table-tests", Description: "Write table driven tests in Go", Category: "dev", Path: "dev/go-table-tests"},
		{ID: "notes", Name: "notes", Description: "Keep running notes while working", Path: "notes"},
	}
}
