package snake

// Outcome describes what a single Advance did.
type Outcome int

const (
	OutcomeNone  Outcome = iota // round already over, nothing changed
	OutcomeMoved                // head moved, tail retracted
	OutcomeAte                  // head moved onto an apple, snake grew
	OutcomeLost                 // hit a wall or itself
	OutcomeWon                  // ate the last apple the board could hold
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Advance moves the snake one cell in heading and resolves the result.
//
// The head cell is tagged with heading before moving, so the tail can later
// retrace the path. Leaving the board or entering any occupied cell
// (including the current tail cell) ends the round without further board
// changes. Eating an apple grows the snake and spawns the next apple; if no
// free cell remains the round is won.
func Advance(s *State, heading Direction, rng RandSource) Outcome {
	if s.Status.Terminal() {
		return OutcomeNone
	}

	b := s.Board
	s.Heading = heading
	b.MarkSnake(s.Head, heading)

	next := s.Head.Step(heading)
	if !b.InBounds(next) || b.IsSnake(next) {
		s.Status = StatusLost
		return OutcomeLost
	}

	s.Head = next
	b.MarkSnake(next, heading)
	s.Length++

	if b.IsApple(next) {
		b.ClearApple(next)
		s.Score++
		if _, ok := SpawnApple(b, rng); !ok {
			s.Status = StatusWon
			return OutcomeWon
		}
		return OutcomeAte
	}

	tag := b.Tag(s.Tail)
	b.ClearSnake(s.Tail)
	s.Tail = s.Tail.Step(tag)
	s.Length--
	return OutcomeMoved
}
