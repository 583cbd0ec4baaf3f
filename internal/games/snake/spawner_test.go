package snake

import (
	"math/rand"
	"testing"
)

func TestSpawnAppleNeverOnOccupiedCell(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	b := NewBoard(10, 8)

	// Scatter some snake cells
	for i := 0; i < 30; i++ {
		b.MarkSnake(Point{X: rng.Intn(10), Y: rng.Intn(8)}, DirRight)
	}

	free := b.Size() - b.SnakeCells()
	for i := 0; i < free; i++ {
		p, ok := SpawnApple(b, rng)
		if !ok {
			t.Fatalf("spawn %d reported full board with %d free cells left", i, free-i)
		}
		if b.IsSnake(p) {
			t.Fatalf("apple placed on snake at %v", p)
		}
	}

	if b.AppleCount() != free {
		t.Errorf("expected %d apples, got %d", free, b.AppleCount())
	}
}

func TestSpawnAppleProbesForwardAndWraps(t *testing.T) {
	b := NewBoard(4, 2)
	// Occupy flat indices 5, 6, 7 (the end of row 1) and 0.
	b.MarkSnake(Point{X: 1, Y: 1}, DirRight)
	b.MarkSnake(Point{X: 2, Y: 1}, DirRight)
	b.MarkSnake(Point{X: 3, Y: 1}, DirRight)
	b.MarkSnake(Point{X: 0, Y: 0}, DirRight)

	p, ok := SpawnApple(b, fixedRand(5))
	if !ok {
		t.Fatal("expected a free cell")
	}
	if p != (Point{X: 1, Y: 0}) {
		t.Errorf("probe from index 5 should wrap to (1,0), got %v", p)
	}

	// Next probe from the same start skips the apple just placed
	p, _ = SpawnApple(b, fixedRand(5))
	if p != (Point{X: 2, Y: 0}) {
		t.Errorf("second probe should land on (2,0), got %v", p)
	}
}

func TestSpawnAppleFullBoardTerminates(t *testing.T) {
	b := NewBoard(3, 3)
	for i := range b.Size() {
		if i%2 == 0 {
			b.MarkSnake(b.point(i), DirDown)
		} else {
			b.MarkApple(b.point(i))
		}
	}

	for start := range b.Size() {
		if _, ok := SpawnApple(b, fixedRand(start)); ok {
			t.Fatalf("spawn from %d succeeded on a full board", start)
		}
	}
}

func TestSpawnAppleEmptyBoard(t *testing.T) {
	b := NewBoard(0, 0)
	if _, ok := SpawnApple(b, fixedRand(0)); ok {
		t.Error("zero-sized board has no room for an apple")
	}
}
