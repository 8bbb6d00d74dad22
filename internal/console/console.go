// Package console holds the terminal plumbing shared by the programs.
package console

import (
	"fmt"
	"io"

	"github.com/bjaus/minifmt"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/olekukonko/ll/lx"
	"golang.org/x/term"
)

// Cursor up twice, then erase the line: removes the pause prompt and the
// empty line the user typed.
const erasePause = "\x1b[1A\x1b[1A\x1b[2K"

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Pause waits for the user to press enter. On a terminal the prompt is
// erased afterwards.
func Pause(r *minifmt.Reader, tty bool) error {
	out := r.Writer()
	if _, err := fmt.Fprintln(out, "Press enter to continue..."); err != nil {
		return err
	}
	if _, err := r.ReadLine(); err != nil {
		return err
	}
	if tty {
		_, err := io.WriteString(out, erasePause)
		return err
	}
	return nil
}

// NewLogger returns a text logger writing to w under namespace name. Debug
// messages are only emitted when verbose is set.
func NewLogger(name string, w io.Writer, verbose bool) *ll.Logger {
	logger := ll.New(name, ll.WithHandler(lh.NewTextHandler(w)))
	logger.Enable()
	if verbose {
		logger.Level(lx.LevelDebug)
	} else {
		logger.Level(lx.LevelInfo)
	}
	return logger
}
