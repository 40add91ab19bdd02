package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/ui/border"
	"github.com/justinpbarnett/skillcat/internal/ui/clipboard"
	"github.com/justinpbarnett/skillcat/internal/ui/markdown"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
	"github.com/justinpbarnett/skillcat/internal/ui/text"
)

// DefaultCopiedFor is how long the copy acknowledgement stays visible.
const DefaultCopiedFor = 2 * time.Second

// Detail is the skill screen: header, rendered SKILL.md and the copy
// action, driven by the catalog.Detail resolver.
type Detail struct {
	state     catalog.Detail
	viewport  viewport.Model
	renderer  *markdown.Renderer
	spinner   spinner.Model
	clip      clipboard.Writer
	copiedFor time.Duration
	copied    bool
	copySeq   int
	body      string
	width     int
	height    int
	focused   bool
}

func NewDetail(renderer *markdown.Renderer, clip clipboard.Writer, copiedFor time.Duration) Detail {
	if copiedFor <= 0 {
		copiedFor = DefaultCopiedFor
	}
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.StatusRunning)),
	)
	return Detail{
		viewport:  viewport.New(0, 0),
		renderer:  renderer,
		spinner:   sp,
		clip:      clip,
		copiedFor: copiedFor,
	}
}

// Begin starts resolving id. Any acknowledgement or document left from the
// previous activation is dropped.
func (d *Detail) Begin(id string) (catalog.Token, tea.Cmd) {
	tok := d.state.Begin(id)
	d.copied = false
	d.copySeq++
	d.body = ""
	d.refresh()
	d.viewport.GotoTop()
	return tok, d.spinner.Tick
}

// IndexLoaded applies the index fetch for t. When the skill is found the
// returned location is the document that should be fetched next.
func (d *Detail) IndexLoaded(t catalog.Token, index catalog.Index, err error) (string, bool) {
	if !d.state.Current(t) {
		return "", false
	}
	loc, ok := d.state.IndexLoaded(t, index, err)
	d.refresh()
	return loc, ok
}

// DocumentLoaded applies the document fetch for t. The frontmatter is
// stripped before the body is rendered.
func (d *Detail) DocumentLoaded(t catalog.Token, body string, err error) bool {
	if !d.state.DocumentLoaded(t, body, err) {
		return false
	}
	if resolved, ok := d.state.Resolved(); ok {
		d.body = d.renderBody(resolved.Body)
	}
	d.refresh()
	d.viewport.GotoTop()
	return true
}

func (d Detail) renderBody(raw string) string {
	doc, err := catalog.ParseDocument([]byte(raw))
	if err != nil {
		// Unparseable frontmatter still leaves a readable document.
		return d.renderer.Render(raw)
	}
	return d.renderer.Render(doc.Body)
}

func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.state.Phase().Loading() {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		if cmd != nil {
			d.refresh()
		}
		return d, cmd

	case CopyResultMsg:
		if msg.Seq != d.copySeq || msg.Err != nil {
			return d, nil
		}
		d.copied = true
		d.refresh()
		seq := msg.Seq
		return d, tea.Tick(d.copiedFor, func(time.Time) tea.Msg {
			return CopyExpiredMsg{Seq: seq}
		})

	case CopyExpiredMsg:
		if msg.Seq == d.copySeq {
			d.copied = false
			d.refresh()
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "h":
			return d, func() tea.Msg { return BackMsg{} }
		case "c":
			return d.copyPrompt()
		case "[":
			return d, func() tea.Msg { return NavigateMsg{Offset: -1} }
		case "]":
			return d, func() tea.Msg { return NavigateMsg{Offset: 1} }
		case "g":
			d.viewport.GotoTop()
			return d, nil
		case "G":
			d.viewport.GotoBottom()
			return d, nil
		}
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return d, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return d, cmd
	}
	return d, nil
}

// copyPrompt writes the invocation prompt for the resolved skill. Only a
// ready skill can be copied.
func (d Detail) copyPrompt() (Detail, tea.Cmd) {
	resolved, ok := d.state.Resolved()
	if !ok || d.clip == nil {
		return d, nil
	}
	d.copySeq++
	d.copied = false
	d.refresh()
	seq := d.copySeq
	prompt := catalog.CopyPrompt(resolved.Name)
	clip := d.clip
	return d, func() tea.Msg {
		return CopyResultMsg{Seq: seq, Text: prompt, Err: clip.Write(prompt)}
	}
}

func (d Detail) View() string {
	p := d.panel()
	return p.Render(d.viewport.View())
}

func (d Detail) panel() border.Panel {
	p := border.Panel{
		Title:   d.title(),
		Width:   d.width,
		Height:  d.height,
		Focused: d.focused,
	}
	switch {
	case d.copied:
		p.Badge = styles.SuccessStyle.Render("✓ Copied!")
	case d.state.Phase() == catalog.PhaseReady:
		p.Badge = "c: Copy Prompt"
	default:
		p.Badge = lipgloss.NewStyle().Foreground(styles.PhaseColor(d.state.Phase())).Render(d.state.Phase().String())
	}
	if d.focused {
		p.Keybinds = d.keybinds()
	}
	return p
}

func (d Detail) title() string {
	if s, ok := d.state.Skill(); ok {
		return text.Handle(s.Name)
	}
	if d.state.ID() == "" {
		return "Skill"
	}
	return d.state.ID()
}

func (d Detail) keybinds() []border.Keybind {
	if d.state.Phase().Failed() {
		return []border.Keybind{{Key: "Esc", Label: " back"}}
	}
	kb := []border.Keybind{
		{Key: "Esc", Label: " back"},
		{Key: "[/]", Label: " prev/next"},
	}
	if d.state.Phase() == catalog.PhaseReady {
		kb = append([]border.Keybind{{Key: "c", Label: "opy"}}, kb...)
	}
	return kb
}

// refresh rebuilds the viewport content for the current phase.
func (d *Detail) refresh() {
	w, _ := d.panel().Inner()
	d.viewport.SetContent(d.content(w))
}

func (d Detail) content(width int) string {
	phase := d.state.Phase()
	switch {
	case phase == catalog.PhaseIdle:
		return ""
	case phase == catalog.PhaseLoadingIndex:
		return " " + d.spinner.View() + " Loading skill..."
	case phase.Failed():
		return d.errorContent(width)
	}

	var b strings.Builder
	b.WriteString(d.header(width))
	if phase == catalog.PhaseLoadingDocument {
		b.WriteString(" " + d.spinner.View() + " Loading document...")
		return b.String()
	}
	b.WriteString(d.body)
	return b.String()
}

func (d Detail) header(width int) string {
	s, ok := d.state.Skill()
	if !ok {
		return ""
	}
	var b strings.Builder

	var badges []string
	if s.Category != "" {
		badges = append(badges, styles.CategoryStyle.Render(strings.ToUpper(s.Category)))
	}
	if s.Source != "" {
		badges = append(badges, styles.TextSecondaryStyle.Render("from "+s.Source))
	}
	if len(badges) > 0 {
		b.WriteString(" " + strings.Join(badges, styles.TextDimStyle.Render(" · ")) + "\n")
	}

	b.WriteString(" " + styles.TitleStyle.Render(text.Handle(s.Name)) + "\n")
	for _, line := range text.Wrap(s.Description, max(width-2, 1)) {
		b.WriteString(" " + styles.TextSecondaryStyle.Render(line) + "\n")
	}

	action := "Copy Prompt (c)"
	actionStyle := styles.ActiveOptionStyle
	if d.copied {
		action = "✓ Copied!"
		actionStyle = styles.SuccessStyle
	}
	if d.state.Phase() == catalog.PhaseReady {
		b.WriteString("\n " + actionStyle.Render(action) + "\n")
	}
	b.WriteString(styles.TextDimStyle.Render(strings.Repeat("─", width)) + "\n")
	return b.String()
}

func (d Detail) errorContent(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(" " + styles.ErrorStyle.Render("Error Loading Skill") + "\n\n")
	for _, line := range text.Wrap(d.state.Message(), max(width-2, 1)) {
		b.WriteString(" " + styles.TextPrimaryStyle.Render(line) + "\n")
	}
	b.WriteString("\n " + styles.ActiveOptionStyle.Render("← Back to Catalog (esc)"))
	return b.String()
}

func (d *Detail) SetSize(w, h int) {
	d.width = w
	d.height = h
	rewrap := false
	if d.renderer != nil {
		prev := d.renderer.Width()
		d.renderer.SetWidth(max(w-2, 0))
		rewrap = d.renderer.Width() != prev
	}
	iw, ih := d.panel().Inner()
	d.viewport.Width = iw
	d.viewport.Height = ih
	if resolved, ok := d.state.Resolved(); ok && rewrap {
		d.body = d.renderBody(resolved.Body)
	}
	d.refresh()
}

func (d *Detail) SetFocused(focused bool) {
	d.focused = focused
}

// Copied reports whether the copy acknowledgement is showing.
func (d Detail) Copied() bool {
	return d.copied
}

func (d Detail) State() catalog.Detail {
	return d.state
}
