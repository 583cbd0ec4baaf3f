package runner

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// WriterSink prints snapshots as text boards.
type WriterSink struct {
	W io.Writer
	// Every prints only every Nth tick; zero or one prints all of them.
	Every uint64
	// Final forces the terminal snapshot to be printed regardless of Every.
	Final bool
}

// Frame writes s when it falls on the sampling interval.
func (w WriterSink) Frame(s snake.Snapshot) error {
	every := max(w.Every, 1)
	if s.Tick%every != 0 && !(w.Final && s.Status.Terminal()) {
		return nil
	}
	_, err := fmt.Fprintln(w.W, s.String())
	return err
}
