package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
)

// Keybind is a key hint rendered as [key]label, e.g. [c]opy.
type Keybind struct {
	Key   string
	Label string
}

// RenderKeybind renders the key bold in KeybindKey and the label in KeybindLabel.
func RenderKeybind(kb Keybind) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

// Hints joins as many keybinds as fit in maxWidth, dropping the rest.
func Hints(keybinds []Keybind, maxWidth int) string {
	var parts []string
	used := 0
	for _, kb := range keybinds {
		r := RenderKeybind(kb)
		w := lipgloss.Width(r)
		if len(parts) > 0 {
			w += 2
		}
		if used+w > maxWidth {
			break
		}
		parts = append(parts, r)
		used += w
	}
	return strings.Join(parts, "  ")
}
