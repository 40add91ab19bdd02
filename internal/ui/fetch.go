package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/logger"
	"github.com/justinpbarnett/skillcat/internal/source"
	"github.com/justinpbarnett/skillcat/internal/ui/clipboard"
	"github.com/justinpbarnett/skillcat/internal/ui/panels"
)

func fetchListingIndex(ctx context.Context, src source.Source, gen uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		idx, err := src.Index(ctx)
		logger.Debugw("fetched index", "screen", "listing", "generation", gen,
			"skills", len(idx), "elapsed", time.Since(start), "error", err)
		return ListingIndexMsg{Gen: gen, Index: idx, Err: err}
	}
}

func fetchDetailIndex(ctx context.Context, src source.Source, tok catalog.Token) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		idx, err := src.Index(ctx)
		logger.Debugw("fetched index", "screen", "detail", "id", tok.ID, "generation", tok.Gen,
			"skills", len(idx), "elapsed", time.Since(start), "error", err)
		return DetailIndexMsg{Token: tok, Index: idx, Err: err}
	}
}

func fetchDocument(ctx context.Context, src source.Source, tok catalog.Token, location string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		body, err := src.Document(ctx, location)
		logger.Debugw("fetched document", "id", tok.ID, "location", location,
			"bytes", len(body), "elapsed", time.Since(start), "error", err)
		return DocumentMsg{Token: tok, Location: location, Body: body, Err: err}
	}
}

func yank(clip clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return panels.YankResultMsg{Text: text, Err: clip.Write(text)}
	}
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}
