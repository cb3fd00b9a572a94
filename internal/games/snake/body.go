package snake

// Body tracks the ordered cells of the snake. Head at index 0.
type Body struct {
	cells []Cell
}

// NewBody creates a body from cells given head-first.
func NewBody(cells ...Cell) *Body {
	b := &Body{cells: make([]Cell, 0, Size*Size)}
	b.cells = append(b.cells, cells...)
	return b
}

// AddHead prepends c as the new head.
func (b *Body) AddHead(c Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = c
}

// RemoveTail drops the last cell. An empty body is a programming error.
func (b *Body) RemoveTail() {
	if len(b.cells) == 0 {
		panic("snake: RemoveTail on empty body")
	}
	b.cells = b.cells[:len(b.cells)-1]
}

// Head returns the current head cell. An empty body is a programming error.
func (b *Body) Head() Cell {
	if len(b.cells) == 0 {
		panic("snake: Head on empty body")
	}
	return b.cells[0]
}

// Tail returns the last cell. An empty body is a programming error.
func (b *Body) Tail() Cell {
	if len(b.cells) == 0 {
		panic("snake: Tail on empty body")
	}
	return b.cells[len(b.cells)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Contains reports whether any segment occupies c.
func (b *Body) Contains(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments, head-first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
