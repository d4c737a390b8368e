package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsWriterTerminal returns true if w is a file attached to a terminal.
// Buffers, pipes and redirected files are not terminals.
func IsWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
