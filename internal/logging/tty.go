package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether log records written to w may carry ANSI
// colors. Color is off for non-terminals, after --no-color (color.NoColor),
// and when NO_COLOR is set or TERM is "dumb".
func SupportsColor(w io.Writer) bool {
	return colorAllowed(isTerminal(w))
}

func colorAllowed(tty bool) bool {
	if !tty || color.NoColor {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	// https://no-color.org
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}
