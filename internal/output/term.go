package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Non-TTY output
// skips spinners and keeps rendering plain.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
