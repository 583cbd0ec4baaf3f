package snake

import (
	"math/rand"
	"testing"
)

func newTestState(w, h int) *State {
	s := NewState(w, h)
	s.Reset(fixedRand(w*h - 1))
	return s
}

func TestAdvanceToWall(t *testing.T) {
	const w, h = 20, 15
	s := newTestState(w, h)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < w-1; i++ {
		Advance(s, DirRight, rng)
		if s.Status != StatusPlaying {
			t.Fatalf("move %d: status %v, expected playing", i+1, s.Status)
		}
		checkInvariants(t, s)
	}
	if s.Head != (Point{X: w - 1, Y: 0}) {
		t.Fatalf("head at %v, expected right edge", s.Head)
	}

	if out := Advance(s, DirRight, rng); out != OutcomeLost {
		t.Errorf("moving off the board returned %v", out)
	}
	if s.Status != StatusLost {
		t.Errorf("status %v, expected lost", s.Status)
	}
}

func TestAdvanceWallAllSides(t *testing.T) {
	tests := []struct {
		name    string
		start   Point
		heading Direction
	}{
		{"top", Point{2, 0}, DirUp},
		{"bottom", Point{2, 3}, DirDown},
		{"left", Point{0, 2}, DirLeft},
		{"right", Point{3, 2}, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(4, 4)
			placeSnake(t, s, tc.heading, tc.start)

			before := s.Board.SnakeCells()
			if out := Advance(s, tc.heading, fixedRand(0)); out != OutcomeLost {
				t.Fatalf("Advance = %v, expected lost", out)
			}
			if s.Head != tc.start {
				t.Errorf("head moved to %v on a losing tick", s.Head)
			}
			if s.Board.SnakeCells() != before {
				t.Error("board occupancy changed on a losing tick")
			}
		})
	}
}

func TestAdvanceEatsApple(t *testing.T) {
	s := NewState(10, 10)
	placeSnake(t, s, DirRight, Point{2, 5}, Point{3, 5}, Point{4, 5})
	s.Board.MarkApple(Point{5, 5})

	out := Advance(s, DirRight, rand.New(rand.NewSource(7)))

	if out != OutcomeAte {
		t.Fatalf("Advance = %v, expected ate", out)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, expected 1", s.Score)
	}
	if !s.Board.IsSnake(Point{5, 5}) || s.Board.IsApple(Point{5, 5}) {
		t.Error("apple cell should now be snake and no longer apple")
	}
	if s.Tail != (Point{2, 5}) {
		t.Errorf("tail moved to %v while growing", s.Tail)
	}
	if s.Length != 4 {
		t.Errorf("length = %d, expected 4", s.Length)
	}
	if s.Board.AppleCount() != 1 {
		t.Errorf("expected a replacement apple, got %d apples", s.Board.AppleCount())
	}
	checkInvariants(t, s)
}

func TestAdvanceRetractsTail(t *testing.T) {
	s := NewState(10, 10)
	placeSnake(t, s, DirDown, Point{1, 1}, Point{2, 1}, Point{2, 2})
	s.Board.MarkApple(Point{9, 9})

	if out := Advance(s, DirDown, fixedRand(0)); out != OutcomeMoved {
		t.Fatalf("Advance = %v, expected moved", out)
	}
	if s.Tail != (Point{2, 1}) {
		t.Errorf("tail = %v, expected (2,1)", s.Tail)
	}
	if s.Board.IsSnake(Point{1, 1}) {
		t.Error("old tail cell should be cleared")
	}
	if s.Head != (Point{2, 3}) {
		t.Errorf("head = %v, expected (2,3)", s.Head)
	}
	checkInvariants(t, s)
}

func TestAdvanceSelfCollision(t *testing.T) {
	s := NewState(6, 6)
	placeSnake(t, s, DirLeft,
		Point{1, 1}, Point{2, 1}, Point{3, 1}, Point{3, 2}, Point{2, 2})

	if out := Advance(s, DirUp, fixedRand(0)); out != OutcomeLost {
		t.Fatalf("Advance into body = %v, expected lost", out)
	}
	if s.Status != StatusLost {
		t.Errorf("status = %v", s.Status)
	}
}

func TestAdvanceIntoTailCellLoses(t *testing.T) {
	// The tail would move away this tick, but entering it still counts.
	s := NewState(6, 6)
	placeSnake(t, s, DirLeft, Point{1, 1}, Point{2, 1}, Point{2, 2}, Point{1, 2})

	if out := Advance(s, DirUp, fixedRand(0)); out != OutcomeLost {
		t.Errorf("Advance into tail = %v, expected lost", out)
	}
}

func TestAdvanceWinsOnLastApple(t *testing.T) {
	s := NewState(2, 1)
	s.Reset(fixedRand(0))

	if !s.Board.IsApple(Point{1, 0}) {
		t.Fatal("the only free cell should hold the apple")
	}

	out := Advance(s, DirRight, fixedRand(0))
	if out != OutcomeWon {
		t.Fatalf("Advance = %v, expected won", out)
	}
	if s.Status != StatusWon || s.Score != 1 {
		t.Errorf("status=%v score=%d", s.Status, s.Score)
	}
	if s.Board.SnakeCells() != 2 {
		t.Errorf("snake should fill the board, got %d cells", s.Board.SnakeCells())
	}
}

func TestAdvanceTerminalIsNoOp(t *testing.T) {
	s := NewState(5, 5)
	placeSnake(t, s, DirRight, Point{0, 0}, Point{1, 0})
	s.Status = StatusLost

	head, tail, length := s.Head, s.Tail, s.Length
	if out := Advance(s, DirDown, fixedRand(0)); out != OutcomeNone {
		t.Errorf("Advance on terminal state = %v", out)
	}
	if s.Head != head || s.Tail != tail || s.Length != length || s.Heading != DirRight {
		t.Error("terminal Advance mutated the state")
	}
}

func TestAdvanceRandomWalkKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	s := NewState(8, 6)
	s.Reset(rng)

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	rounds := 0
	for i := 0; i < 5000; i++ {
		if s.Status.Terminal() {
			rounds++
			s.Reset(rng)
		}
		d := dirs[rng.Intn(len(dirs))]
		if !CanTurn(s.Heading, d) {
			d = s.Heading
		}
		before := s.Score
		Advance(s, d, rng)
		checkInvariants(t, s)
		if s.Score < before {
			t.Fatal("score decreased")
		}
		if s.Status == StatusPlaying && s.Board.AppleCount() != 1 {
			t.Fatalf("expected exactly one apple while playing, got %d", s.Board.AppleCount())
		}
	}
	if rounds == 0 {
		t.Error("random walk never ended a round")
	}
}

func TestStateReset(t *testing.T) {
	s := NewState(20, 15)
	placeSnake(t, s, DirUp, Point{5, 5}, Point{5, 4})
	s.Score = 12
	s.Status = StatusLost

	s.Reset(rand.New(rand.NewSource(3)))

	if s.Status != StatusPlaying || s.Score != 0 {
		t.Errorf("status=%v score=%d after reset", s.Status, s.Score)
	}
	if s.Head != Origin || s.Tail != Origin || s.Heading != DirRight || s.Length != 1 {
		t.Errorf("snake not at origin: head=%v tail=%v heading=%v len=%d", s.Head, s.Tail, s.Heading, s.Length)
	}
	if s.Board.SnakeCells() != 1 || !s.Board.IsSnake(Origin) {
		t.Error("snake should occupy exactly the origin")
	}
	if s.Board.AppleCount() != 1 {
		t.Errorf("expected one apple, got %d", s.Board.AppleCount())
	}
}

func TestStateResetOneCellBoardIsWon(t *testing.T) {
	s := NewState(1, 1)
	s.Reset(fixedRand(0))
	if s.Status != StatusWon {
		t.Errorf("one-cell board should be won at once, got %v", s.Status)
	}
}
