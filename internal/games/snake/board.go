package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is a heading and also the per-cell tag stored on the board.
// The zero value marks an empty cell.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell offset for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading, or DirNone for DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a movement action to a heading.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirNone, false
}

// Point is a board cell coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Board stores the two fixed-size layers of the playfield: the snake
// occupancy tags and the apples. Both are flat slices indexed y*width+x.
//
// Board methods assume valid coordinates; callers check InBounds first.
type Board struct {
	width  int
	height int
	snake  []Direction
	apple  []bool
}

// NewBoard allocates an empty width×height board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		snake:  make([]Direction, width*height),
		apple:  make([]bool, width*height),
	}
}

// Reset clears both layers.
func (b *Board) Reset() {
	clear(b.snake)
	clear(b.apple)
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Size returns the number of cells.
func (b *Board) Size() int { return b.width * b.height }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

func (b *Board) index(p Point) int {
	return p.Y*b.width + p.X
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.width, Y: i / b.width}
}

// IsSnake reports whether the snake occupies p.
func (b *Board) IsSnake(p Point) bool {
	return b.snake[b.index(p)] != DirNone
}

// IsApple reports whether an apple sits on p.
func (b *Board) IsApple(p Point) bool {
	return b.apple[b.index(p)]
}

// Tag returns the direction tag stored at p (DirNone if empty).
func (b *Board) Tag(p Point) Direction {
	return b.snake[b.index(p)]
}

// MarkSnake occupies p with the given direction tag.
func (b *Board) MarkSnake(p Point, d Direction) {
	b.snake[b.index(p)] = d
}

// ClearSnake empties the occupancy tag at p.
func (b *Board) ClearSnake(p Point) {
	b.snake[b.index(p)] = DirNone
}

// MarkApple places an apple on p.
func (b *Board) MarkApple(p Point) {
	b.apple[b.index(p)] = true
}

// ClearApple removes the apple at p.
func (b *Board) ClearApple(p Point) {
	b.apple[b.index(p)] = false
}

// SnakeCells counts occupied cells.
func (b *Board) SnakeCells() int {
	n := 0
	for _, d := range b.snake {
		if d != DirNone {
			n++
		}
	}
	return n
}

// AppleCount counts apples on the board.
func (b *Board) AppleCount() int {
	n := 0
	for _, a := range b.apple {
		if a {
			n++
		}
	}
	return n
}
