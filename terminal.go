package asciigif

import (
	"fmt"
	"io"
)

type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

type Xterm struct {
	Writer io.Writer
}

// Move the cursor to the beginning of the line and up rows
func (term *Xterm) ResetCursor(rows int) {
	if rows <= 0 {
		// Some terminals treat a count of 0 as 1.
		fmt.Fprint(term.Writer, "\033[999D")
		return
	}
	fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		io.WriteString(term.Writer, "\033[?12l\033[?25h")
	} else {
		io.WriteString(term.Writer, "\033[?25l")
	}
}
