package catalog

import "fmt"

// Phase is the state of a detail screen activation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoadingIndex
	PhaseLoadingDocument
	PhaseReady
	PhaseNotFound
	PhaseIndexError
	PhaseLoadError
)

// User-facing messages for the terminal failure phases.
const (
	MsgNotFound   = "Skill not found in registry."
	MsgIndexError = "Skill registry is unavailable."
	MsgLoadError  = "Could not load skill content. File might be missing."
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoadingIndex:
		return "loading_index"
	case PhaseLoadingDocument:
		return "loading_document"
	case PhaseReady:
		return "ready"
	case PhaseNotFound:
		return "not_found"
	case PhaseIndexError:
		return "index_error"
	case PhaseLoadError:
		return "load_error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Loading reports whether a fetch is outstanding.
func (p Phase) Loading() bool {
	return p == PhaseLoadingIndex || p == PhaseLoadingDocument
}

// Failed reports whether p is one of the terminal error phases.
func (p Phase) Failed() bool {
	return p == PhaseNotFound || p == PhaseIndexError || p == PhaseLoadError
}

// ResolvedSkill is a skill record together with its fetched document.
type ResolvedSkill struct {
	SkillSummary
	Body string
}

// Token identifies one detail activation. Results are only applied when
// their token is still current.
type Token struct {
	ID  string
	Gen uint64
}

// Detail is the detail screen state machine:
//
//	loading_index -> loading_document -> ready
//	      |                |
//	 not_found/index_error load_error
//
// Every Begin bumps the generation, so completions carrying an older
// token are dropped no matter in which order they arrive.
type Detail struct {
	gen      uint64
	id       string
	phase    Phase
	skill    SkillSummary
	location string
	body     string
	err      error
}

// Begin starts resolving id and returns the token for this activation.
func (d *Detail) Begin(id string) Token {
	d.gen++
	*d = Detail{gen: d.gen, id: id, phase: PhaseLoadingIndex}
	return Token{ID: id, Gen: d.gen}
}

// Current reports whether t belongs to the active resolution.
func (d Detail) Current(t Token) bool {
	return t.Gen == d.gen && t.ID == d.id
}

// IndexLoaded applies the index fetch result. When the record is found
// the machine moves to loading_document and the document location to
// fetch is returned with ok=true.
func (d *Detail) IndexLoaded(t Token, index Index, err error) (location string, ok bool) {
	if !d.Current(t) || d.phase != PhaseLoadingIndex {
		return "", false
	}
	if err != nil {
		d.phase = PhaseIndexError
		d.err = err
		return "", false
	}
	skill, found := index.Lookup(t.ID)
	if !found {
		d.phase = PhaseNotFound
		return "", false
	}
	d.skill = skill
	d.location = DocumentLocation(skill.Path)
	d.phase = PhaseLoadingDocument
	return d.location, true
}

// DocumentLoaded applies the document fetch result and reports whether
// it was applied.
func (d *Detail) DocumentLoaded(t Token, body string, err error) bool {
	if !d.Current(t) || d.phase != PhaseLoadingDocument {
		return false
	}
	if err != nil {
		d.phase = PhaseLoadError
		d.err = err
		return true
	}
	d.body = body
	d.phase = PhaseReady
	return true
}

// Message returns the user-facing message of a failed phase, or "".
func (d Detail) Message() string {
	switch d.phase {
	case PhaseNotFound:
		return MsgNotFound
	case PhaseIndexError:
		return MsgIndexError
	case PhaseLoadError:
		return MsgLoadError
	}
	return ""
}

// Resolved returns the resolved skill once the phase is ready.
func (d Detail) Resolved() (ResolvedSkill, bool) {
	if d.phase != PhaseReady {
		return ResolvedSkill{}, false
	}
	return ResolvedSkill{SkillSummary: d.skill, Body: d.body}, true
}

// Skill returns the looked-up record; it is set from loading_document on.
func (d Detail) Skill() (SkillSummary, bool) {
	switch d.phase {
	case PhaseLoadingDocument, PhaseReady, PhaseLoadError:
		return d.skill, true
	}
	return SkillSummary{}, false
}

func (d Detail) ID() string       { return d.id }
func (d Detail) Phase() Phase     { return d.phase }
func (d Detail) Location() string { return d.location }
func (d Detail) Err() error       { return d.err }
