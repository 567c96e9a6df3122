package policy

import (
	"testing"

	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T) *gridworld.GridWorld {
	t.Helper()
	tags := map[int]gridworld.Tag{
		5: gridworld.Goal,
		6: gridworld.Forbidden,
		9: gridworld.Wall,
	}
	g, err := gridworld.New(gridworld.Rows, gridworld.Cols, 0, tags, 0.5)
	require.NoError(t, err)
	g.SetActions()
	return g
}

func TestNewEGreedyInvalid(t *testing.T) {
	_, err := NewEGreedy(-0.5, 1)
	assert.Error(t, err)
	_, err = NewEGreedy(1.5, 1)
	assert.Error(t, err)

	p, err := NewEGreedy(0.3, 1)
	require.NoError(t, err)
	assert.Panics(t, func() { p.SetEpsilon(2) })
}

func TestGreedySelection(t *testing.T) {
	g := newGrid(t)
	cell := g.Cell(4)
	cell.Actions()[2].SetValue(1.0)

	p, err := NewEGreedy(0, 1)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.Same(t, cell.Actions()[2], p.SelectAction(cell))
	}
	assert.Same(t, cell.Actions()[2], NewGreedy().SelectAction(cell))
}

func TestRandomSelection(t *testing.T) {
	g := newGrid(t)
	cell := g.Cell(4)
	cell.Actions()[2].SetValue(1.0)

	p, err := NewEGreedy(1, 3)
	require.NoError(t, err)

	counts := make(map[*gridworld.Action]int)
	for i := 0; i < 3000; i++ {
		counts[p.SelectAction(cell)]++
	}
	for _, a := range cell.Actions() {
		assert.InDelta(t, 1000, counts[a], 150, "%v", a)
	}
}

func TestSelectionReproducible(t *testing.T) {
	g := newGrid(t)
	cell := g.Cell(1)

	a, err := NewEGreedy(0.5, 11)
	require.NoError(t, err)
	b, err := NewEGreedy(0.5, 11)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Same(t, a.SelectAction(cell), b.SelectAction(cell))
	}
}

func TestSelectActionNoActions(t *testing.T) {
	g := newGrid(t)
	p, err := NewEGreedy(0.1, 1)
	require.NoError(t, err)
	assert.Panics(t, func() { p.SelectAction(g.Cell(9)) })
}
