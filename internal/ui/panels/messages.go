package panels

import "github.com/justinpbarnett/skillcat/internal/catalog"

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// OpenSkillMsg asks for the detail screen of ID. Trail is the listing view
// at the time it was opened, in order, for previous/next navigation.
type OpenSkillMsg struct {
	ID    string
	Trail catalog.Index
}

// NavigateMsg moves the detail screen to a neighbouring skill of the trail.
type NavigateMsg struct {
	Offset int
}

// BackMsg returns from the detail screen to the listing.
type BackMsg struct{}

// YankMsg asks for Text to be placed on the clipboard.
type YankMsg struct {
	Text string
}

// YankResultMsg reports the outcome of a YankMsg.
type YankResultMsg struct {
	Text string
	Err  error
}

// CopyResultMsg reports the clipboard write started by the copy key.
type CopyResultMsg struct {
	Seq  int
	Text string
	Err  error
}

// CopyExpiredMsg ends the acknowledgement of copy Seq.
type CopyExpiredMsg struct {
	Seq int
}
