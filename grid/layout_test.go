package grid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plankpath/grid"
)

// square returns the four cells of a 2×2 grid.
func square() (c00, c10, c01, c11 grid.Coordinate) {
	return grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 1, Y: 0},
		grid.Coordinate{X: 0, Y: 1}, grid.Coordinate{X: 1, Y: 1}
}

func TestLayout_Membership(t *testing.T) {
	c00, c10, c01, c11 := square()
	l := grid.NewLayout(grid.NewEdge(c00, c10), grid.NewEdge(c10, c00))

	assert.Equal(t, 1, l.Len(), "duplicate edges collapse")
	assert.True(t, l.Contains(grid.NewEdge(c10, c00)))
	assert.True(t, l.Connected(c00, c10))
	assert.False(t, l.Connected(c01, c11))

	assert.True(t, l.Add(grid.NewEdge(c11, c01)))
	assert.False(t, l.Add(grid.NewEdge(c01, c11)), "reverse orientation is the same plank")
	assert.Equal(t, 2, l.Len())

	assert.True(t, l.Remove(grid.NewEdge(c01, c11)))
	assert.False(t, l.Remove(grid.NewEdge(c01, c11)))
	assert.Equal(t, 1, l.Len())
}

func TestLayout_EdgesSortedAndClone(t *testing.T) {
	c00, c10, c01, c11 := square()
	l := grid.NewLayout(grid.NewEdge(c11, c01), grid.NewEdge(c10, c00), grid.NewEdge(c00, c01))

	want := []grid.Edge{grid.NewEdge(c00, c10), grid.NewEdge(c00, c01), grid.NewEdge(c01, c11)}
	assert.Equal(t, want, l.Edges())

	cp := l.Clone()
	cp.Remove(grid.NewEdge(c00, c10))
	assert.Equal(t, 3, l.Len(), "clone must not share storage")
	assert.Equal(t, 2, cp.Len())
}

func TestLayout_Validate(t *testing.T) {
	c00, c10, _, c11 := square()

	require.NoError(t, grid.NewLayout(grid.NewEdge(c00, c10)).Validate(1))

	err := grid.NewLayout(grid.NewEdge(c00, c11)).Validate(1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange, "diagonal plank")

	err = grid.NewLayout(grid.NewEdge(c10, grid.Coordinate{X: 2, Y: 0})).Validate(1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange, "plank leaving the grid")
}

func TestAdjoiningNeighbors(t *testing.T) {
	c00, c10, c01, _ := square()
	l := grid.NewLayout(grid.NewEdge(c00, c10))

	got, err := grid.AdjoiningNeighbors(l, c00, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{c10}, got)

	got, err = grid.AdjoiningNeighbors(l, c00, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{c01}, got)

	_, err = grid.AdjoiningNeighbors(nil, c00, 1, false)
	assert.ErrorIs(t, err, grid.ErrNilInput)

	_, err = grid.AdjoiningNeighbors(l, grid.Coordinate{X: 5, Y: 5}, 1, false)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestLayout_ConcurrentReaders exercises the RWMutex under -race.
func TestLayout_ConcurrentReaders(t *testing.T) {
	c00, c10, _, _ := square()
	l := grid.NewLayout(grid.NewEdge(c00, c10))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				assert.True(t, l.Connected(c00, c10))
			}
		}()
	}
	wg.Wait()
}
