package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SelectedRowStyle   = lipgloss.NewStyle().Background(SelectedRowBg)

	// Search highlight: yellow background, black text for matches
	SearchHighlightStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("11")).
				Foreground(lipgloss.Color("0"))

	CategoryStyle     = lipgloss.NewStyle().Foreground(CategoryBadge)
	ActiveOptionStyle = lipgloss.NewStyle().Foreground(ActiveOption).Bold(true)
	ErrorStyle        = lipgloss.NewStyle().Foreground(StatusError).Bold(true)
	SuccessStyle      = lipgloss.NewStyle().Foreground(StatusSuccess).Bold(true)
)
