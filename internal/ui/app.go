package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/config"
	"github.com/justinpbarnett/skillcat/internal/logger"
	"github.com/justinpbarnett/skillcat/internal/source"
	"github.com/justinpbarnett/skillcat/internal/ui/clipboard"
	"github.com/justinpbarnett/skillcat/internal/ui/layout"
	"github.com/justinpbarnett/skillcat/internal/ui/markdown"
	"github.com/justinpbarnett/skillcat/internal/ui/panels"
	"github.com/justinpbarnett/skillcat/internal/ui/styles"
	"github.com/justinpbarnett/skillcat/internal/ui/text"
)

type screen int

const (
	screenListing screen = iota
	screenDetail
)

func (s screen) String() string {
	if s == screenDetail {
		return "detail"
	}
	return "listing"
}

// Options wires the app to its collaborators.
type Options struct {
	Source    source.Source
	Clipboard clipboard.Writer // defaults to the system clipboard
	StartID   string           // open this skill instead of the listing
}

type App struct {
	config      *config.Config
	src         source.Source
	sourceName  string
	clip        clipboard.Writer
	width       int
	height      int
	layout      layout.Layout
	screen      screen
	listing     panels.Listing
	preview     panels.Preview
	detail      panels.Detail
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	ready       bool

	// ctx belongs to the active screen and is cancelled when it is left.
	ctx    context.Context
	cancel context.CancelFunc
	trail  catalog.Index
	start  tea.Cmd
}

func NewApp(cfg *config.Config, opts Options) App {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	wordWrap := cfg.UI.WordWrap == nil || *cfg.UI.WordWrap
	renderer := markdown.New(cfg.UI.MarkdownStyle, wordWrap)

	name := cfg.Source.Base
	if s, ok := opts.Source.(fmt.Stringer); ok {
		name = s.String()
	}

	a := App{
		config:     cfg,
		src:        opts.Source,
		sourceName: name,
		clip:       clip,
		listing:    panels.NewListing(),
		preview:    panels.NewPreview(),
		detail:     panels.NewDetail(renderer, clip, cfg.UI.CopiedFor()),
		statusBar:  panels.NewStatusBar(name),
		keys:       DefaultKeyMap(),
	}

	// Init cannot change the model, so the first activation happens here
	// and Init only hands out its commands.
	if opts.StartID != "" {
		a.start = a.showDetail(opts.StartID)
	} else {
		a.start = a.showListing()
	}
	return a
}

func (a App) Init() tea.Cmd {
	return a.start
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case ListingIndexMsg:
		if a.screen != screenListing || !a.listing.IndexLoaded(msg.Gen, msg.Index, msg.Err) {
			logger.Debugw("discarding stale listing index", "generation", msg.Gen)
			return a, nil
		}
		if msg.Err != nil {
			logger.Warnw("loading skill index failed", "source", a.sourceName, "error", msg.Err)
		}
		return a, nil

	case DetailIndexMsg:
		if a.screen != screenDetail || !a.detail.State().Current(msg.Token) {
			logger.Debugw("discarding stale detail index", "id", msg.Token.ID, "generation", msg.Token.Gen)
			return a, nil
		}
		location, ok := a.detail.IndexLoaded(msg.Token, msg.Index, msg.Err)
		if !ok {
			a.logDetailFailure()
			return a, nil
		}
		return a, fetchDocument(a.ctx, a.src, msg.Token, location)

	case DocumentMsg:
		if a.screen != screenDetail || !a.detail.DocumentLoaded(msg.Token, msg.Body, msg.Err) {
			logger.Debugw("discarding stale document", "id", msg.Token.ID, "generation", msg.Token.Gen)
			return a, nil
		}
		if msg.Err != nil {
			a.logDetailFailure()
		}
		return a, nil

	case panels.OpenSkillMsg:
		a.trail = msg.Trail
		return a, a.showDetail(msg.ID)

	case panels.NavigateMsg:
		current := a.detail.State().ID()
		next, ok := a.trail.Neighbor(current, msg.Offset)
		if !ok {
			return a, nil
		}
		if next == current {
			// Expires on the next redraw after FlashDuration.
			a.statusBar.SetFlashWithLevel("No more skills in this list", panels.FlashWarning)
			return a, nil
		}
		return a, a.showDetail(next)

	case panels.BackMsg:
		return a, a.showListing()

	case panels.YankMsg:
		return a, yank(a.clip, msg.Text)

	case panels.YankResultMsg:
		if msg.Err != nil {
			logger.Warnw("yanking skill id failed", "id", msg.Text, "error", msg.Err)
			a.statusBar.SetFlashWithLevel("Clipboard unavailable", panels.FlashError)
		} else {
			a.statusBar.SetFlashWithLevel("Yanked "+msg.Text, panels.FlashSuccess)
		}
		return a, clearFlashAfter()

	case panels.CopyResultMsg:
		var cmds []tea.Cmd
		if msg.Err != nil {
			logger.Warnw("copying prompt failed", "prompt", msg.Text, "error", msg.Err)
			a.statusBar.SetFlashWithLevel("Could not copy prompt", panels.FlashError)
			cmds = append(cmds, clearFlashAfter())
		} else {
			logger.Infow("copied prompt", "prompt", msg.Text)
		}
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, tea.Batch(append(cmds, cmd)...)

	case panels.CopyExpiredMsg:
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		// Each spinner ignores ticks carrying another spinner's ID.
		var listCmd, detailCmd tea.Cmd
		a.listing, listCmd = a.listing.Update(msg)
		a.detail, detailCmd = a.detail.Update(msg)
		return a, tea.Batch(listCmd, detailCmd)

	case tea.MouseMsg:
		if a.screen == screenDetail {
			var cmd tea.Cmd
			a.detail, cmd = a.detail.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		// The search box takes every other key while it is open.
		if a.screen == screenListing && a.listing.SearchActive() {
			return a.routeKey(msg)
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.helpOverlay = panels.NewHelpOverlay()
			return a, nil
		case key.Matches(msg, a.keys.Reload):
			a.statusBar.SetFlash("Reloading")
			if a.screen == screenDetail {
				return a, a.showDetail(a.detail.State().ID())
			}
			return a, a.showListing()
		}

		return a.routeKey(msg)
	}
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	var body string
	switch a.screen {
	case screenDetail:
		body = a.detail.View()
	default:
		body = a.listing.View()
		if a.layout.HasPreview() {
			skill, ok := a.listing.SelectedSkill()
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, a.preview.View(skill, ok))
		}
	}

	statusBar := a.statusBar
	statusBar.SetContext(a.statusContext())
	fullLayout := lipgloss.JoinVertical(lipgloss.Left, body, statusBar.View())

	if a.helpOverlay != nil {
		modalView := a.helpOverlay.View()
		fullLayout = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, modalView,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}

	return fullLayout
}

func (a App) statusContext() string {
	if a.screen == screenDetail {
		d := a.detail.State()
		if s, ok := d.Skill(); ok {
			return text.Handle(s.Name) + " " + d.Phase().String()
		}
		return d.ID() + " " + d.Phase().String()
	}
	l := a.listing.State()
	if l.Loading() {
		return "loading catalog"
	}
	return fmt.Sprintf("showing %d of %d", len(l.View()), l.Total())
}

func (a App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case screenListing:
		a.listing, cmd = a.listing.Update(msg)
	case screenDetail:
		a.detail, cmd = a.detail.Update(msg)
	}
	return a, cmd
}

// activate cancels the work of the screen being left and returns the
// context for the one being entered.
func (a *App) activate(next screen) context.Context {
	if a.cancel != nil {
		a.cancel()
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.screen = next
	a.listing.SetFocused(next == screenListing)
	a.detail.SetFocused(next == screenDetail)
	return a.ctx
}

// showListing enters the listing screen. Every entry is a fresh
// activation: the filter is reset and the index is fetched again.
func (a *App) showListing() tea.Cmd {
	ctx := a.activate(screenListing)
	gen, tick := a.listing.Begin()
	logger.Debugw("activated screen", "screen", screenListing, "generation", gen)
	return tea.Batch(tick, fetchListingIndex(ctx, a.src, gen))
}

// showDetail enters the detail screen for id.
func (a *App) showDetail(id string) tea.Cmd {
	ctx := a.activate(screenDetail)
	tok, tick := a.detail.Begin(id)
	logger.Debugw("activated screen", "screen", screenDetail, "id", id, "generation", tok.Gen)
	return tea.Batch(tick, fetchDetailIndex(ctx, a.src, tok))
}

func (a App) logDetailFailure() {
	d := a.detail.State()
	switch d.Phase() {
	case catalog.PhaseNotFound:
		logger.Infow("skill not found", "id", d.ID())
	case catalog.PhaseIndexError:
		logger.Warnw("loading skill index failed", "id", d.ID(), "source", a.sourceName, "error", d.Err())
	case catalog.PhaseLoadError:
		logger.Warnw("loading skill document failed", "id", d.ID(), "location", d.Location(),
			"status", source.StatusCode(d.Err()), "error", d.Err())
	}
}

func (a *App) propagateSizes() {
	l := a.layout
	a.listing.SetSize(l.ListWidth, l.ListHeight)
	a.preview.SetSize(l.PreviewWidth, l.PreviewHeight)
	a.detail.SetSize(l.DetailWidth, l.DetailHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}
