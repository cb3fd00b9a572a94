// Package snake implements the turn-based Snake engine: an 8x8 board, a
// single snake and one piece of food. The package has no I/O; drivers feed it
// directions and draw its snapshots.
package snake

import "fmt"

// Size is the board dimension. The board is always Size x Size.
const Size = 8

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
// It panics on a value outside the four directions.
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
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
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

// Cell is a board coordinate. X increases to the right, Y increases downward.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one step away in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// adjacent reports whether two cells share an edge.
func (c Cell) adjacent(o Cell) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	SnakeOccupied
	Food
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case SnakeOccupied:
		return "snake"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Grid is a row-major view of the board: Grid[y][x].
// It is an array so copies never alias the engine's state.
type Grid [Size][Size]CellState

// At returns the state of a cell. Out-of-bounds cells report Empty.
func (g Grid) At(c Cell) CellState {
	if !c.InBounds() {
		return Empty
	}
	return g[c.Y][c.X]
}

// Count returns how many cells hold the given state.
func (g Grid) Count(s CellState) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == s {
				n++
			}
		}
	}
	return n
}

// Status is the game state machine position.
type Status string

const (
	StatePlaying Status = "playing"
	StateLost    Status = "lost"
	StateWon     Status = "won"
)

// Terminal reports whether no further moves are processed.
func (s Status) Terminal() bool {
	return s == StateLost || s == StateWon
}

// Cause records why a game reached its terminal state.
type Cause string

const (
	CauseNone      Cause = ""
	CauseWall      Cause = "wall"
	CauseBody      Cause = "body"
	CauseBoardFull Cause = "board_full"
)

// Outcome is the result of a single ApplyMove call.
type Outcome struct {
	Status Status
	Grew   bool  // food was eaten this turn
	Cause  Cause // set once Status is terminal
}
