package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestStatusBarSections(t *testing.T) {
	sb := NewStatusBar("builtin catalog")
	sb.SetSize(120)
	sb.SetContext("3 of 6 skills")

	view := sb.View()
	for _, want := range []string{"skillcat " + Version, "builtin catalog", "3 of 6 skills", "?:help"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in status bar, got %q", want, view)
		}
	}
	if got := lipgloss.Width(view); got != 120 {
		t.Errorf("expected width 120, got %d", got)
	}
}

func TestStatusBarFlashLevels(t *testing.T) {
	tests := []struct {
		level FlashLevel
		icon  string
	}{
		{FlashInfo, "●"},
		{FlashSuccess, "✓"},
		{FlashWarning, "⚠"},
		{FlashError, "✗"},
	}
	for _, tt := range tests {
		sb := NewStatusBar("")
		sb.SetSize(100)
		sb.SetFlashWithLevel("Yanked notes", tt.level)
		view := sb.View()
		if !strings.Contains(view, tt.icon+" Yanked notes") {
			t.Errorf("level %d: expected %q in %q", tt.level, tt.icon, view)
		}
	}
}

func TestStatusBarClearFlash(t *testing.T) {
	sb := NewStatusBar("")
	sb.SetSize(100)
	sb.SetFlash("hello")
	sb.ClearFlash()

	if strings.Contains(sb.View(), "hello") {
		t.Error("expected flash to be cleared")
	}
}

func TestStatusBarNarrow(t *testing.T) {
	sb := NewStatusBar("https://skills.example.com/catalog")
	sb.SetSize(30)
	sb.SetContext("12 skills")

	view := sb.View()
	if !strings.Contains(view, "?:help") {
		t.Error("expected help hint to survive truncation")
	}
	if got := lipgloss.Width(view); got > 30 {
		t.Errorf("expected width <= 30, got %d", got)
	}
}

func TestFlashDuration(t *testing.T) {
	if FlashDuration() <= 0 {
		t.Error("expected positive flash duration")
	}
}

func TestStatusBarRenders(t *testing.T) {
	sb := NewStatusBar("builtin catalog")
	sb.SetSize(120)
	sb.SetFlashWithLevel("Copied prompt", FlashSuccess)

	tm := teatest.NewTestModel(t, wrapStatusBar(&sb), teatest.WithInitialTermSize(120, 1))
	waitForContains(t, tm, "Copied prompt")
	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
}
