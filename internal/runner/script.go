package runner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ParseScript turns a move script into one frame per tick.
//
// Ticks are separated by spaces or commas. A tick holds one or more
// actions joined with '+' (first listed wins); "." is an idle tick and a
// "*N" suffix repeats the tick N times:
//
//	r*5 d . l+u x q
func ParseScript(script string) ([]core.InputFrame, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var frames []core.InputFrame
	for _, field := range fields {
		body, count, err := splitRepeat(field)
		if err != nil {
			return nil, err
		}
		frame, err := parseFrame(body)
		if err != nil {
			return nil, err
		}
		for range count {
			frames = append(frames, frame.Clone())
		}
	}
	return frames, nil
}

func splitRepeat(field string) (string, int, error) {
	body, rep, found := strings.Cut(field, "*")
	if !found {
		return field, 1, nil
	}
	n, err := strconv.Atoi(rep)
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("runner: bad repeat count in %q", field)
	}
	return body, n, nil
}

func parseFrame(body string) (core.InputFrame, error) {
	frame := core.NewInputFrame()
	for _, tok := range strings.Split(body, "+") {
		a, ok := core.ParseAction(tok)
		if !ok {
			return frame, fmt.Errorf("runner: unknown move %q", tok)
		}
		frame.Set(a)
	}
	return frame, nil
}

// ScriptSource replays a fixed list of frames.
type ScriptSource struct {
	frames []core.InputFrame
	pos    int
}

// NewScriptSource parses script into a source.
func NewScriptSource(script string) (*ScriptSource, error) {
	frames, err := ParseScript(script)
	if err != nil {
		return nil, err
	}
	return &ScriptSource{frames: frames}, nil
}

// Next returns the next scripted frame.
func (s *ScriptSource) Next() (core.InputFrame, bool) {
	if s.pos >= len(s.frames) {
		return core.InputFrame{}, false
	}
	f := s.frames[s.pos]
	s.pos++
	return f, true
}

// LineSource reads one script line per Next call, so each line may hold
// several ticks. Blank lines are idle ticks.
type LineSource struct {
	scanner *bufio.Scanner
	pending []core.InputFrame
	err     error
}

// NewLineSource reads moves from r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Next returns the next frame, reading another line when the current one
// is used up. A parse error ends the source; see Err.
func (s *LineSource) Next() (core.InputFrame, bool) {
	for len(s.pending) == 0 {
		if s.err != nil || !s.scanner.Scan() {
			return core.InputFrame{}, false
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			return core.NewInputFrame(), true
		}
		frames, err := ParseScript(line)
		if err != nil {
			s.err = err
			return core.InputFrame{}, false
		}
		s.pending = frames
	}
	f := s.pending[0]
	s.pending = s.pending[1:]
	return f, true
}

// Err returns the first parse or read error.
func (s *LineSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.scanner.Err()
}
