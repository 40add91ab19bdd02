package panels

import (
	"strings"

	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/ui/border"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
	"github.com/justinpbarnett/skillcat/internal/ui/text"
)

// Preview summarises the highlighted listing entry beside the list on
// wide terminals.
type Preview struct {
	width  int
	height int
}

func NewPreview() Preview {
	return Preview{}
}

func (p Preview) View(skill catalog.SkillSummary, ok bool) string {
	panel := border.Panel{Title: "Preview", Width: p.width, Height: p.height}
	w, h := panel.Inner()
	if !ok {
		return panel.Render(" " + styles.TextDimStyle.Render("Select a skill to preview it."))
	}

	var lines []string
	lines = append(lines, " "+styles.TitleStyle.Render(text.Truncate(text.Handle(skill.Name), w-1)))
	lines = append(lines, field("ID", text.Truncate(skill.ID, w-1-fieldLabelWidth)))
	lines = append(lines, field("Category", styles.CategoryStyle.Render(skill.DisplayCategory())))
	if skill.Source != "" {
		lines = append(lines, field("Source", text.Truncate(skill.Source, w-1-fieldLabelWidth)))
	}
	lines = append(lines, "")

	// Leave room for the footer hint.
	room := h - len(lines) - 2
	for _, line := range text.Clamp(skill.Description, max(w-2, 1), room) {
		lines = append(lines, " "+styles.TextPrimaryStyle.Render(line))
	}
	if room > 0 {
		lines = append(lines, "", " "+styles.TextDimStyle.Render(text.Truncate("↵ read  y yank ID", w-1)))
	}
	return panel.Render(strings.Join(lines, "\n"))
}

const fieldLabelWidth = 9

func field(label, value string) string {
	return " " + styles.TextSecondaryStyle.Render(text.PadRight(label, fieldLabelWidth)) + value
}

func (p *Preview) SetSize(w, h int) {
	p.width = w
	p.height = h
}
