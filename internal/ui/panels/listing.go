package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/ui/border"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
	"github.com/justinpbarnett/skillcat/internal/ui/text"
)

const (
	searchPlaceholder = "Search skills (e.g., 'react', 'security', 'python')..."

	listingHeaderRows = 3 // search, categories, rule
	rowHeight         = 2 // name line, description line
	gPrefixWindow     = 500 * time.Millisecond
)

// Listing is the catalog screen: search box, category selector and the
// filtered list of skills.
type Listing struct {
	state        catalog.Listing
	selected     int
	offset       int
	width        int
	height       int
	lastKeyG     bool
	lastKeyT     time.Time
	searchActive bool
	searchInput  textinput.Model
	spinner      spinner.Model
	focused      bool
}

func NewListing() Listing {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = ""
	ti.CharLimit = 128

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.StatusRunning)),
	)

	return Listing{
		state:       catalog.NewListing(),
		searchInput: ti,
		spinner:     sp,
	}
}

// Begin starts a new activation. The filter and selection are reset and
// the returned generation identifies the index fetch that belongs to it.
func (l *Listing) Begin() (uint64, tea.Cmd) {
	gen := l.state.Begin()
	l.selected, l.offset = 0, 0
	l.lastKeyG = false
	l.searchActive = false
	l.searchInput.SetValue("")
	l.searchInput.Blur()
	return gen, l.spinner.Tick
}

// IndexLoaded applies an index fetch result; stale generations are ignored.
func (l *Listing) IndexLoaded(gen uint64, index catalog.Index, err error) bool {
	if !l.state.IndexLoaded(gen, index, err) {
		return false
	}
	l.clampSelection()
	return true
}

func (l Listing) Update(msg tea.Msg) (Listing, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !l.state.Loading() {
			return l, nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	case tea.KeyMsg:
		if l.searchActive {
			return l.updateSearch(msg)
		}
		return l.updateKeys(msg)
	}
	return l, nil
}

func (l Listing) updateKeys(msg tea.KeyMsg) (Listing, tea.Cmd) {
	key := msg.String()
	if key != "g" {
		l.lastKeyG = false
	}

	switch key {
	case "/":
		l.searchActive = true
		return l, l.searchInput.Focus()
	case "j", "down":
		if l.selected < len(l.state.View())-1 {
			l.selected++
			l.scrollToSelection()
		}
	case "k", "up":
		if l.selected > 0 {
			l.selected--
			l.scrollToSelection()
		}
	case "G":
		l.selected = max(len(l.state.View())-1, 0)
		l.scrollToSelection()
	case "g":
		if l.lastKeyG && time.Since(l.lastKeyT) < gPrefixWindow {
			l.selected = 0
			l.scrollToSelection()
			l.lastKeyG = false
		} else {
			l.lastKeyG = true
			l.lastKeyT = time.Now()
		}
	case "f", "F":
		delta := 1
		if key == "F" {
			delta = -1
		}
		l.state.CycleCategory(delta)
		l.resetSelection()
	case "enter":
		if s, ok := l.SelectedSkill(); ok {
			trail := l.trail()
			return l, func() tea.Msg { return OpenSkillMsg{ID: s.ID, Trail: trail} }
		}
	case "y":
		if s, ok := l.SelectedSkill(); ok {
			return l, func() tea.Msg { return YankMsg{Text: s.ID} }
		}
	}
	return l, nil
}

func (l Listing) updateSearch(msg tea.KeyMsg) (Listing, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			l.searchInput.SetValue("")
			l.state.SetSearch("")
			l.resetSelection()
		}
		l.searchActive = false
		l.searchInput.Blur()
		return l, nil
	}

	var cmd tea.Cmd
	l.searchInput, cmd = l.searchInput.Update(msg)
	if v := l.searchInput.Value(); v != l.state.Filter().Search {
		l.state.SetSearch(v)
		l.resetSelection()
	}
	return l, cmd
}

func (l Listing) View() string {
	p := border.Panel{
		Title:   "Explore Skills",
		Width:   l.width,
		Height:  l.height,
		Focused: l.focused,
	}
	if !l.state.Loading() {
		p.Badge = text.Showing(len(l.state.View()), l.state.Total())
	}
	if l.focused {
		p.Keybinds = []border.Keybind{
			{Key: "↵", Label: " read"},
			{Key: "/", Label: " search"},
			{Key: "f", Label: "ilter"},
			{Key: "y", Label: "ank ID"},
			{Key: "?", Label: " help"},
		}
	}
	w, h := p.Inner()
	return p.Render(l.renderContent(w, h))
}

func (l Listing) renderContent(width, height int) string {
	var b strings.Builder
	b.WriteString(l.renderSearchBar(width))
	b.WriteString("\n")
	b.WriteString(l.renderCategories(width))
	b.WriteString("\n")
	b.WriteString(styles.TextDimStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	switch {
	case l.state.Loading():
		b.WriteString(" " + l.spinner.View() + " Loading skills...")
	case len(l.state.View()) == 0:
		b.WriteString(" " + styles.TitleStyle.Render("No skills found") + "\n")
		b.WriteString(" " + styles.TextSecondaryStyle.Render("Try adjusting your search or filter."))
	default:
		b.WriteString(l.renderRows(width, height-listingHeaderRows))
	}
	return b.String()
}

func (l Listing) renderSearchBar(width int) string {
	prefix := styles.TextSecondaryStyle.Render("/ ")
	switch {
	case l.searchActive:
		return prefix + l.searchInput.View()
	case l.state.Filter().Search != "":
		return prefix + text.Truncate(styles.TextPrimaryStyle.Render(l.state.Filter().Search), width-2)
	default:
		return prefix + styles.TextDimStyle.Render(text.Truncate(searchPlaceholder, width-2))
	}
}

func (l Listing) renderCategories(width int) string {
	current := l.state.Filter().Category
	parts := make([]string, 0, len(l.state.Categories()))
	for _, c := range l.state.Categories() {
		label := text.CapitalizeFirst(c)
		if c == current {
			parts = append(parts, styles.ActiveOptionStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, styles.TextSecondaryStyle.Render(" "+label+" "))
		}
	}
	return text.Truncate(styles.TextDimStyle.Render("f ")+strings.Join(parts, " "), width)
}

func (l Listing) renderRows(width, height int) string {
	view := l.state.View()
	visible := max(height/rowHeight, 1)
	end := min(l.offset+visible, len(view))

	lines := make([]string, 0, (end-l.offset)*rowHeight)
	for i := l.offset; i < end; i++ {
		s := view[i]
		name := text.Handle(s.Name)
		category := s.DisplayCategory()
		desc := "  " + s.Description

		if i == l.selected && l.focused {
			head := text.Truncate(name+"  "+category, width)
			lines = append(lines,
				styles.SelectedRowStyle.Width(width).Render(head),
				styles.SelectedRowStyle.Width(width).Render(text.Truncate(desc, width)),
			)
			continue
		}

		head := styles.TitleStyle.Render(name) + "  " + styles.CategoryStyle.Render(category)
		if i == l.selected {
			head = styles.ActiveOptionStyle.Render("›") + head
		}
		lines = append(lines,
			text.Truncate(head, width),
			styles.TextSecondaryStyle.Render(text.Truncate(desc, width)),
		)
	}
	return strings.Join(lines, "\n")
}

func (l *Listing) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.searchInput.Width = max(w-6, 1)
	l.clampSelection()
}

func (l *Listing) SetFocused(focused bool) {
	l.focused = focused
}

// SelectedSkill returns the highlighted skill of the current view.
func (l Listing) SelectedSkill() (catalog.SkillSummary, bool) {
	view := l.state.View()
	if l.selected < 0 || l.selected >= len(view) {
		return catalog.SkillSummary{}, false
	}
	return view[l.selected], true
}

// SearchActive reports whether keystrokes are going to the search box.
func (l Listing) SearchActive() bool {
	return l.searchActive
}

func (l Listing) State() catalog.Listing {
	return l.state
}

func (l Listing) trail() catalog.Index {
	return append(catalog.Index(nil), l.state.View()...)
}

func (l *Listing) resetSelection() {
	l.selected, l.offset = 0, 0
}

func (l *Listing) clampSelection() {
	n := len(l.state.View())
	if n == 0 {
		l.selected, l.offset = 0, 0
		return
	}
	l.selected = min(max(l.selected, 0), n-1)
	l.scrollToSelection()
}

func (l *Listing) scrollToSelection() {
	visible := l.visibleRows()
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+visible {
		l.offset = l.selected - visible + 1
	}
	l.offset = min(l.offset, max(len(l.state.View())-visible, 0))
	l.offset = max(l.offset, 0)
}

func (l Listing) visibleRows() int {
	inner := l.height - 2 - listingHeaderRows
	return max(inner/rowHeight, 1)
}
