package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) Write(text string) error { return f(text) }

// System writes to the native clipboard (wl-copy, xclip, pbcopy, etc.)
// and falls back to an OSC52 sequence on Terminal for SSH/tmux sessions.
type System struct {
	Terminal io.Writer // defaults to os.Stderr
	native   func(string) error
}

func (s System) Write(text string) error {
	native := s.native
	if native == nil {
		native = clipboard.WriteAll
	}
	if err := native(text); err == nil {
		return nil
	}
	out := s.Terminal
	if out == nil {
		out = os.Stderr
	}
	return writeOSC52(out, text)
}

// writeOSC52 writes text to the clipboard using the OSC 52 escape sequence.
func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}
