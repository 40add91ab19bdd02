package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/ui/border"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
)

type HelpOverlay struct {
	width  int
	height int
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  46,
		height: 24,
	}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	descStyle := styles.TextPrimaryStyle
	sectionStyle := styles.TitleStyle

	kv := func(key, desc string) string {
		return "  " + keyStyle.Render(key) + "  " + descStyle.Render(desc)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Catalog") + "\n")
	b.WriteString(kv("j/k", "Move up/down") + "\n")
	b.WriteString(kv("G/gg", "Jump to bottom/top") + "\n")
	b.WriteString(kv("/", "Search name and description") + "\n")
	b.WriteString(kv("f/F", "Next/previous category") + "\n")
	b.WriteString(kv("Enter", "Read skill") + "\n")
	b.WriteString(kv("y", "Yank skill ID") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Skill") + "\n")
	b.WriteString(kv("c", "Copy invocation prompt") + "\n")
	b.WriteString(kv("[/]", "Previous/next skill") + "\n")
	b.WriteString(kv("j/k", "Scroll document") + "\n")
	b.WriteString(kv("Esc", "Back to catalog") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Global") + "\n")
	b.WriteString(kv("r", "Reload") + "\n")
	b.WriteString(kv("?", "Toggle this help") + "\n")
	b.WriteString(kv("q", "Quit"))

	p := border.Panel{
		Title:    "Keybinds",
		Keybinds: []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}},
		Width:    h.width,
		Height:   h.height,
		Focused:  true,
	}
	return p.Render(b.String())
}
