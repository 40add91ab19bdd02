package layout

// Layout holds the computed cell dimensions for all panels.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Listing screen: skill list, plus a summary preview on wide terminals.
	ListWidth     int
	ListHeight    int
	PreviewWidth  int
	PreviewHeight int

	// Detail screen
	DetailWidth  int
	DetailHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 60
	MinHeight = 15

	// PreviewMinWidth is the narrowest terminal that still gets a preview pane.
	PreviewMinWidth = 110
	ListColWeight   = 0.55
)

// Calculate computes panel dimensions from terminal size.
// One row is reserved for the status bar.
func Calculate(termWidth, termHeight int) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	usableHeight := termHeight - 1

	l.ListWidth = termWidth
	l.ListHeight = usableHeight
	if termWidth >= PreviewMinWidth {
		l.ListWidth = int(float64(termWidth) * ListColWeight)
		l.PreviewWidth = termWidth - l.ListWidth
		l.PreviewHeight = usableHeight
	}

	l.DetailWidth = termWidth
	l.DetailHeight = usableHeight
	l.StatusBarWidth = termWidth

	return l
}

// HasPreview reports whether the listing screen shows a preview pane.
func (l Layout) HasPreview() bool {
	return l.PreviewWidth > 0
}
