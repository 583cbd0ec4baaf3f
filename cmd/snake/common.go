package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Rows used around the board: HUD (2), box border (2), status line (1).
const chromeRows = 5

// loadRegistry loads the variants config and builds the registry.
func loadRegistry() (*registry.Registry, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	return registry.FromConfig(cfg)
}

// newLogger builds a logger writing to w at the level chosen by --debug.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// fileLogger opens --log-file for the TUI, which owns the terminal. Without
// the flag it returns a nil logger and logs are discarded.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("could not open log file: %w", err)
	}
	return newLogger(f, "snake"), func() { f.Close() }, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// warnIfTooSmall tells the user up front when the variant cannot fit.
func warnIfTooSmall(reg *registry.Registry, variant string, width, height int) {
	if variant == "" {
		variant = reg.Default()
	}
	for _, info := range reg.List() {
		if info.ID != variant {
			continue
		}
		needW := info.Width*2 + 2
		needH := info.Height + chromeRows
		if width < needW || height < needH {
			fmt.Fprintf(os.Stderr, "Warning: %s needs a %dx%d terminal, have %dx%d\n",
				info.Title, needW, needH, width, height)
		}
	}
}
