package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

// Panel describes a rounded box:
//
//	╭─ Title ──────── Badge ─╮
//	│content                  │
//	╰─ [k]ey  [h]int ────────╯
//
// Keybinds are shown only while focused.
type Panel struct {
	Title    string
	Badge    string
	Keybinds []Keybind
	Width    int
	Height   int
	Focused  bool
}

// Inner returns the content area size.
func (p Panel) Inner() (width, height int) {
	return max(p.Width-2, 0), max(p.Height-2, 0)
}

// Render frames content, padding or cropping it to exactly fill the panel.
func (p Panel) Render(content string) string {
	if p.Width < 2 || p.Height < 2 {
		return ""
	}
	innerW, innerH := p.Inner()

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	bs := p.borderStyle()
	crop := lipgloss.NewStyle().MaxWidth(innerW)
	rows := make([]string, 0, p.Height)
	rows = append(rows, p.top())
	for _, line := range lines {
		if lipgloss.Width(line) > innerW {
			line = crop.Render(line)
		}
		if w := lipgloss.Width(line); w < innerW {
			line += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, bs.Render(vertBar)+line+bs.Render(vertBar))
	}
	rows = append(rows, p.bottom())
	return strings.Join(rows, "\n")
}

func (p Panel) borderStyle() lipgloss.Style {
	if p.Focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

func (p Panel) top() string {
	bs := p.borderStyle()
	innerW := p.Width - 2

	titleStyle := styles.TextSecondaryStyle.Bold(true)
	if p.Focused {
		titleStyle = styles.TitleStyle
	}

	// "─ " + title + " " on the left, " " + badge + " ─" on the right.
	var left, right string
	used := 0
	if p.Title != "" {
		left = titleStyle.Render(p.Title)
		used += 3 + lipgloss.Width(left)
	}
	if p.Badge != "" {
		badge := styles.TextSecondaryStyle.Render(p.Badge)
		if used+3+lipgloss.Width(badge) <= innerW {
			right = badge
			used += 3 + lipgloss.Width(badge)
		}
	}
	if used > innerW {
		return bs.Render(cornerTL + strings.Repeat(horizBar, innerW) + cornerTR)
	}

	out := bs.Render(cornerTL)
	if left != "" {
		out += bs.Render(horizBar+" ") + left + bs.Render(" ")
	}
	out += bs.Render(strings.Repeat(horizBar, innerW-used))
	if right != "" {
		out += bs.Render(" ") + right + bs.Render(" "+horizBar)
	}
	return out + bs.Render(cornerTR)
}

func (p Panel) bottom() string {
	bs := p.borderStyle()
	innerW := p.Width - 2

	if !p.Focused || len(p.Keybinds) == 0 || innerW < 4 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, innerW) + cornerBR)
	}

	hints := Hints(p.Keybinds, innerW-3)
	fill := innerW - 3 - lipgloss.Width(hints)
	return bs.Render(cornerBL+horizBar+" ") + hints +
		bs.Render(" "+strings.Repeat(horizBar, fill)+cornerBR)
}
