package ui

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/config"
	"github.com/justinpbarnett/skillcat/internal/source"
)

const waitDuration = 3 * time.Second

// fakeSource serves a fixed catalog and counts index reads.
type fakeSource struct {
	index      catalog.Index
	indexErr   error
	docs       map[string]string
	indexReads atomic.Int32
}

func (f *fakeSource) String() string { return "test catalog" }

func (f *fakeSource) Index(ctx context.Context) (catalog.Index, error) {
	f.indexReads.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	return f.index, nil
}

func (f *fakeSource) Document(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, ok := f.docs[location]
	if !ok {
		return "", &source.StatusError{URL: location, Code: 404}
	}
	return body, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		index: catalog.Index{
			{ID: "react-hooks", Name: "react-hooks", Description: "Patterns for React hooks", Category: "frontend", Path: "frontend/react-hooks"},
			{ID: "secret-scan", Name: "secret-scan", Description: "Scan diffs for leaked credentials", Category: "security", Path: "security/secret-scan"},
			{ID: "missing-doc", Name: "missing-doc", Description: "Listed without a document", Category: "dev", Path: "dev/missing-doc"},
		},
		docs: map[string]string{
			"skills/frontend/react-hooks/SKILL.md": "---\nname: react-hooks\n---\n# Hooks\n\nDeclare every dependency.\n",
			"skills/security/secret-scan/SKILL.md": "# Secret scanning\n\nRun before every push.\n",
		},
	}
}

// fakeClipboard records clipboard writes.
type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (f *fakeClipboard) Write(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, text)
	return f.err
}

func (f *fakeClipboard) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return ""
	}
	return f.writes[len(f.writes)-1]
}

var errOffline = errors.New("offline")

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.UI.MarkdownStyle = "notty"
	cfg.UI.CopiedDuration = 20
	return &cfg
}

func newTestApp(src *fakeSource, clip *fakeClipboard, startID string) App {
	return NewApp(testConfig(), Options{Source: src, Clipboard: clip, StartID: startID})
}

func update(a App, msg tea.Msg) (App, tea.Cmd) {
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func sendWindowSize(a App, w, h int) App {
	a, _ = update(a, tea.WindowSizeMsg{Width: w, Height: h})
	return a
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and returns the messages it produced, flattening
// batches. Spinner ticks are dropped so animations never feed back.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch m := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, collect(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	case nil:
		return nil
	default:
		return []tea.Msg{m}
	}
}

// settle feeds everything cmd produces back into the app until no work is
// left, the way the bubbletea runtime would.
func settle(a App, cmd tea.Cmd) App {
	for i := 0; cmd != nil && i < 10; i++ {
		var next []tea.Cmd
		for _, msg := range collect(cmd) {
			var c tea.Cmd
			a, c = update(a, msg)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
	return a
}

// press sends a key and settles whatever it triggers.
func press(a App, k string) App {
	a, cmd := update(a, keyMsg(k))
	return settle(a, cmd)
}

// appAdapter wraps the App (value receiver model) so tests can inspect the
// latest model after the program has processed messages.
type appAdapter struct {
	mu  sync.Mutex
	app App
}

func (a *appAdapter) Init() tea.Cmd {
	return a.app.Init()
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
