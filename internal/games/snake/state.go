package snake

// Status is the round lifecycle state.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over.
func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusWon
}

// Origin is where every round starts.
var Origin = Point{X: 0, Y: 0}

// State is the whole mutable simulation: the board plus the snake ends,
// heading, score and status. The snake body is implicit in the board's
// direction tags; following them from Tail reaches Head in Length-1 steps.
type State struct {
	Board   *Board
	Head    Point
	Tail    Point
	Heading Direction
	Length  int
	Score   int
	Status  Status
}

// NewState allocates a state for a width×height board. Call Reset before use.
func NewState(width, height int) *State {
	return &State{Board: NewBoard(width, height)}
}

// Reset returns the state to the start of a round: a one-cell snake at the
// origin heading right, score zero and a single apple.
func (s *State) Reset(rng RandSource) {
	s.Board.Reset()
	s.Head = Origin
	s.Tail = Origin
	s.Heading = DirRight
	s.Length = 1
	s.Score = 0
	s.Status = StatusPlaying

	s.Board.MarkSnake(Origin, DirRight)
	if _, ok := SpawnApple(s.Board, rng); !ok {
		// A one-cell board is already full.
		s.Status = StatusWon
	}
}

// Body walks the direction tags from tail to head and returns the cells in
// that order. The walk stops after Board.Size() steps so a corrupted board
// cannot loop forever.
func (s *State) Body() []Point {
	body := make([]Point, 0, s.Length)
	p := s.Tail
	for range s.Board.Size() {
		if !s.Board.InBounds(p) || !s.Board.IsSnake(p) {
			break
		}
		body = append(body, p)
		if p == s.Head {
			break
		}
		p = p.Step(s.Board.Tag(p))
	}
	return body
}
