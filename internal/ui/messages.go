package ui

import (
	"github.com/justinpbarnett/skillcat/internal/catalog"
	"github.com/justinpbarnett/skillcat/internal/ui/panels"
)

// Aliases for the panels message types.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// ListingIndexMsg carries the index fetched for listing activation Gen.
type ListingIndexMsg struct {
	Gen   uint64
	Index catalog.Index
	Err   error
}

// DetailIndexMsg carries the index fetched for the detail activation Token.
type DetailIndexMsg struct {
	Token catalog.Token
	Index catalog.Index
	Err   error
}

// DocumentMsg carries the SKILL.md fetched for the detail activation Token.
type DocumentMsg struct {
	Token    catalog.Token
	Location string
	Body     string
	Err      error
}
