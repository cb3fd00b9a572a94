package snake

import (
	"errors"
	"fmt"
)

// Source picks an index in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Board is the turn-resolution engine. It owns the snake, the food and the
// derived grid. A Board is not safe for concurrent use; each driver owns one.
type Board struct {
	rng     Source
	body    *Body
	grid    Grid
	food    Cell
	hasFood bool
	status  Status
	cause   Cause
	turn    int
}

// ErrNoRoomForFood is returned when a layout leaves no cell for food.
var ErrNoRoomForFood = errors.New("snake: layout leaves no room for food")

// startBody is the initial vertical snake at column 1, head on row 3.
func startBody() *Body {
	b := NewBody()
	for y := 1; y < 4; y++ {
		b.AddHead(Cell{X: 1, Y: y})
	}
	return b
}

// New creates a board with the standard starting snake and random food.
func New(rng Source) *Board {
	b := &Board{
		rng:    rng,
		body:   startBody(),
		status: StatePlaying,
	}
	b.redraw()
	// The starting snake covers 3 of 64 cells, so food always fits.
	b.spawnFood()
	b.placeFood()
	return b
}

// NewFromLayout creates a board from an explicit head-first body. If food is
// nil it is placed at random. The body must be non-empty, in bounds,
// self-avoiding and made of edge-adjacent cells.
func NewFromLayout(rng Source, body []Cell, food *Cell) (*Board, error) {
	if len(body) == 0 {
		return nil, errors.New("snake: layout has an empty body")
	}
	seen := make(map[Cell]bool, len(body))
	for i, c := range body {
		if !c.InBounds() {
			return nil, fmt.Errorf("snake: segment %d at %s is out of bounds", i, c)
		}
		if seen[c] {
			return nil, fmt.Errorf("snake: segment %d at %s overlaps the body", i, c)
		}
		if i > 0 && !body[i-1].adjacent(c) {
			return nil, fmt.Errorf("snake: segment %d at %s is not adjacent to %s", i, c, body[i-1])
		}
		seen[c] = true
	}

	b := &Board{
		rng:    rng,
		body:   NewBody(body...),
		status: StatePlaying,
	}
	b.redraw()

	switch {
	case food != nil:
		if !food.InBounds() {
			return nil, fmt.Errorf("snake: food at %s is out of bounds", *food)
		}
		if seen[*food] {
			return nil, fmt.Errorf("snake: food at %s is on the body", *food)
		}
		b.food = *food
		b.hasFood = true
	case !b.spawnFood():
		return nil, ErrNoRoomForFood
	}
	b.placeFood()
	return b, nil
}

// ApplyMove resolves one turn. Once the game is lost or won it is a no-op.
func (b *Board) ApplyMove(dir Direction) Outcome {
	if b.status.Terminal() {
		return b.outcome(false)
	}

	next := b.body.Head().Step(dir)
	if !next.InBounds() {
		return b.lose(CauseWall)
	}

	// Collisions are judged against the grid as it was before this move,
	// so the cell the tail is about to leave still counts as body.
	grow := false
	switch b.grid.At(next) {
	case SnakeOccupied:
		return b.lose(CauseBody)
	case Food:
		grow = true
	}

	b.body.AddHead(next)
	if !grow {
		b.body.RemoveTail()
	}
	b.turn++
	b.redraw()

	if grow && !b.spawnFood() {
		b.status = StateWon
		b.cause = CauseBoardFull
		return b.outcome(true)
	}
	b.placeFood()
	return b.outcome(grow)
}

func (b *Board) lose(cause Cause) Outcome {
	b.status = StateLost
	b.cause = cause
	return b.outcome(false)
}

func (b *Board) outcome(grew bool) Outcome {
	return Outcome{Status: b.status, Grew: grew, Cause: b.cause}
}

// redraw rebuilds the grid from the body. Food is drawn separately.
func (b *Board) redraw() {
	b.grid = Grid{}
	for _, seg := range b.body.cells {
		b.grid[seg.Y][seg.X] = SnakeOccupied
	}
}

// spawnFood chooses a uniformly random cell not covered by the snake.
// It returns false and clears the food when the snake fills the board.
func (b *Board) spawnFood() bool {
	free := make([]Cell, 0, Size*Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.grid[y][x] != SnakeOccupied {
				free = append(free, Cell{X: x, Y: y})
			}
		}
	}
	if len(free) == 0 {
		b.hasFood = false
		return false
	}
	b.food = free[b.rng.Intn(len(free))]
	b.hasFood = true
	return true
}

func (b *Board) placeFood() {
	if b.hasFood {
		b.grid[b.food.Y][b.food.X] = Food
	}
}

// Status returns the current game state.
func (b *Board) Status() Status {
	return b.status
}

// Cause returns why the game ended, or CauseNone while playing.
func (b *Board) Cause() Cause {
	return b.cause
}

// Lost reports whether the game ended in a collision.
func (b *Board) Lost() bool {
	return b.status == StateLost
}

// Won reports whether the snake filled the board.
func (b *Board) Won() bool {
	return b.status == StateWon
}

// Turn returns the number of moves applied so far.
func (b *Board) Turn() int {
	return b.turn
}

// Head returns the snake's head cell.
func (b *Board) Head() Cell {
	return b.body.Head()
}

// Body returns a copy of the snake's cells, head-first.
func (b *Board) Body() []Cell {
	return b.body.Cells()
}

// Food returns the food cell and whether one is on the board.
func (b *Board) Food() (Cell, bool) {
	return b.food, b.hasFood
}
