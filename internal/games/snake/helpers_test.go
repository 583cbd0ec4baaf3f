package snake

import "testing"

// fixedRand always starts the probe at the same flat index.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	return int(f) % n
}

// placeSnake lays a snake over cells (tail first, head last) with tags
// pointing along the body, and sets the state's ends to match.
func placeSnake(t *testing.T, s *State, heading Direction, cells ...Point) {
	t.Helper()
	s.Board.Reset()
	for i, p := range cells {
		tag := heading
		if i < len(cells)-1 {
			tag = directionBetween(t, p, cells[i+1])
		}
		s.Board.MarkSnake(p, tag)
	}
	s.Tail = cells[0]
	s.Head = cells[len(cells)-1]
	s.Heading = heading
	s.Length = len(cells)
	s.Status = StatusPlaying
}

func directionBetween(t *testing.T, from, to Point) Direction {
	t.Helper()
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if from.Step(d) == to {
			return d
		}
	}
	t.Fatalf("cells %v and %v are not adjacent", from, to)
	return DirNone
}

// checkInvariants verifies the tag path and the apple/snake exclusivity.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	b := s.Board

	body := s.Body()
	if got := b.SnakeCells(); got != len(body) {
		t.Fatalf("occupied cells = %d, tag path from tail has %d cells", got, len(body))
	}
	if len(body) != s.Length {
		t.Fatalf("path length %d != Length %d", len(body), s.Length)
	}
	if len(body) > 0 && body[len(body)-1] != s.Head {
		t.Fatalf("tag path ends at %v, head is %v", body[len(body)-1], s.Head)
	}

	seen := make(map[Point]bool, len(body))
	for _, p := range body {
		if seen[p] {
			t.Fatalf("tag path visits %v twice", p)
		}
		seen[p] = true
	}

	for y := range b.Height() {
		for x := range b.Width() {
			p := Point{X: x, Y: y}
			if b.IsSnake(p) && b.IsApple(p) {
				t.Fatalf("cell %v holds both snake and apple", p)
			}
		}
	}
}
