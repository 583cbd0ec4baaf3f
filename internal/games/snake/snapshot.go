package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is a read-only copy of the simulation handed to renderers,
// tests and headless output.
type Snapshot struct {
	Tick    uint64
	Variant string
	Width   int
	Height  int
	Snake   []bool // flat y*Width+x
	Apple   []bool // flat y*Width+x
	Head    Point
	Tail    Point
	Heading Direction
	Length  int
	Score   int
	Status  Status
	Delay   time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	b := g.state.Board
	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.id,
		Width:   b.Width(),
		Height:  b.Height(),
		Snake:   make([]bool, b.Size()),
		Apple:   make([]bool, b.Size()),
		Head:    g.state.Head,
		Tail:    g.state.Tail,
		Heading: g.state.Heading,
		Length:  g.state.Length,
		Score:   g.state.Score,
		Status:  g.state.Status,
		Delay:   g.Delay(),
	}
	for i := range b.Size() {
		snap.Snake[i] = b.snake[i] != DirNone
		snap.Apple[i] = b.apple[i]
	}
	return snap
}

// IsSnake reports whether the snake occupied (x, y).
func (s Snapshot) IsSnake(x, y int) bool {
	return s.in(x, y) && s.Snake[y*s.Width+x]
}

// IsApple reports whether an apple sat on (x, y).
func (s Snapshot) IsApple(x, y int) bool {
	return s.in(x, y) && s.Apple[y*s.Width+x]
}

func (s Snapshot) in(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// String draws the board as text: H head, o body, * apple, . empty.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d score=%d len=%d dir=%s status=%s delay=%s\n",
		s.Tick, s.Score, s.Length, s.Heading, s.Status, s.Delay)
	for y := range s.Height {
		for x := range s.Width {
			switch {
			case s.Head == (Point{X: x, Y: y}) && s.IsSnake(x, y):
				b.WriteByte('H')
			case s.IsSnake(x, y):
				b.WriteByte('o')
			case s.IsApple(x, y):
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
