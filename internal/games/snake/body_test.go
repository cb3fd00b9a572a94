package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyAddHeadRemoveTail(t *testing.T) {
	b := NewBody()
	b.AddHead(C(1, 1))
	b.AddHead(C(1, 2))
	b.AddHead(C(1, 3))

	require.Equal(t, []Cell{C(1, 3), C(1, 2), C(1, 1)}, b.Cells())
	assert.Equal(t, C(1, 3), b.Head())
	assert.Equal(t, C(1, 1), b.Tail())

	b.RemoveTail()
	assert.Equal(t, 2, b.Len())
	assert.False(t, b.Contains(C(1, 1)), "removed tail should no longer be part of the body")
	assert.True(t, b.Contains(C(1, 2)))
}

func TestBodyCellsIsCopy(t *testing.T) {
	b := NewBody(C(0, 0), C(0, 1))
	cells := b.Cells()
	cells[0] = C(5, 5)

	assert.Equal(t, C(0, 0), b.Head(), "mutating Cells() result must not change the body")
}

func TestBodyEmptyPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Body)
	}{
		{"Head", func(b *Body) { b.Head() }},
		{"Tail", func(b *Body) { b.Tail() }},
		{"RemoveTail", func(b *Body) { b.RemoveTail() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { tc.fn(NewBody()) })
		})
	}
}
