package snake

// Snapshot is a read-only copy of the board for rendering and comparison.
// Snapshots are comparable with ==.
type Snapshot struct {
	Turn     int
	Status   Status
	Cause    Cause
	SnakeLen int
	Head     Cell
	Food     Cell
	HasFood  bool
	Grid     Grid
}

// Snapshot returns the current board view. It has no side effects.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Turn:     b.turn,
		Status:   b.status,
		Cause:    b.cause,
		SnakeLen: b.body.Len(),
		Head:     b.body.Head(),
		Food:     b.food,
		HasFood:  b.hasFood,
		Grid:     b.grid,
	}
}
