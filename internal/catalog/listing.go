package catalog

// Listing is the state of one listing screen: the loaded index, the
// filter input, and the derived view and category options. All derived
// fields are recomputed from the full index after every change.
type Listing struct {
	gen        uint64
	loading    bool
	index      Index
	filter     FilterState
	view       Index
	categories []string
}

// NewListing returns a listing that has not been activated yet.
func NewListing() Listing {
	l := Listing{filter: NewFilterState()}
	l.recompute()
	return l
}

// Begin starts a new activation: the index is cleared, the filter is
// reset and the listing is loading. The returned generation must be
// passed back to IndexLoaded.
func (l *Listing) Begin() uint64 {
	l.gen++
	l.loading = true
	l.index = nil
	l.filter = NewFilterState()
	l.recompute()
	return l.gen
}

// IndexLoaded applies the result of the index fetch for activation gen.
// A failed fetch leaves the listing loaded and empty. Results for a
// superseded activation are ignored and false is returned.
func (l *Listing) IndexLoaded(gen uint64, index Index, err error) bool {
	if gen != l.gen || !l.loading {
		return false
	}
	l.loading = false
	if err != nil {
		index = nil
	}
	l.index = index
	if !l.hasCategory(l.filter.Category) {
		l.filter.Category = AllCategories
	}
	l.recompute()
	return true
}

// SetSearch updates the search text and recomputes the view.
func (l *Listing) SetSearch(s string) {
	l.filter.Search = s
	l.recompute()
}

// SetCategory updates the selected category and recomputes the view.
func (l *Listing) SetCategory(c string) {
	l.filter.Category = c
	l.recompute()
}

// CycleCategory moves the category selection by delta through the
// derived options, wrapping at either end.
func (l *Listing) CycleCategory(delta int) {
	n := len(l.categories)
	if n == 0 {
		return
	}
	cur := 0
	for i, c := range l.categories {
		if c == l.filter.Category {
			cur = i
			break
		}
	}
	next := ((cur+delta)%n + n) % n
	l.SetCategory(l.categories[next])
}

func (l *Listing) recompute() {
	l.view = Filter(l.index, l.filter)
	l.categories = Categories(l.index)
}

func (l Listing) hasCategory(c string) bool {
	for _, have := range Categories(l.index) {
		if have == c {
			return true
		}
	}
	return false
}

func (l Listing) Loading() bool        { return l.loading }
func (l Listing) View() Index          { return l.view }
func (l Listing) Filter() FilterState  { return l.filter }
func (l Listing) Categories() []string { return l.categories }
func (l Listing) Total() int           { return len(l.index) }
