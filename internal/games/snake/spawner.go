package snake

// RandSource is the random integer source the spawner draws from.
// *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// SpawnApple places one apple on a free cell and returns it.
//
// It starts at a random flat index and probes forward, wrapping at the end
// of the board, until it finds a cell with neither snake nor apple. The
// probe visits every cell at most once, so it always terminates; false
// means the board is full. Placement is biased towards cells that follow
// long occupied runs.
func SpawnApple(b *Board, rng RandSource) (Point, bool) {
	size := b.Size()
	if size == 0 {
		return Point{}, false
	}

	start := rng.Intn(size)
	for n := range size {
		i := (start + n) % size
		if b.snake[i] == DirNone && !b.apple[i] {
			b.apple[i] = true
			return b.point(i), true
		}
	}
	return Point{}, false
}
