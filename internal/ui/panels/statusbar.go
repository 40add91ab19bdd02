package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
	"github.com/justinpbarnett/skillcat/internal/ui/text"
)

const flashDurationVal = 5 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	source     string
	context    string
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewStatusBar(source string) StatusBar {
	return StatusBar{source: source}
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	left := " " + styles.TextSecondaryStyle.Render("skillcat "+Version)
	if s.source != "" {
		left += sep + styles.TextSecondaryStyle.Render(s.source)
	}
	if s.context != "" {
		left += sep + styles.TextPrimaryStyle.Render(s.context)
	}

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusRunning
		}
		flashStr := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + s.flash)
		left += sep + flashStr
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	rightWidth := lipgloss.Width(right)
	if s.width > 0 && lipgloss.Width(left)+rightWidth+1 > s.width {
		left = text.Truncate(left, max(s.width-rightWidth-1, 0))
	}
	gap := max(s.width-lipgloss.Width(left)-rightWidth, 1)

	return left + strings.Repeat(" ", gap) + right
}

// SetContext sets the middle section, e.g. the listing count or the
// skill being read.
func (s *StatusBar) SetContext(ctx string) {
	s.context = ctx
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
