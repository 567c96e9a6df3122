package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Action is a move available from a single cell. Its value is the
// learned estimate of the return from taking the action.
type Action struct {
	direction Direction
	dest      *Cell
	value     float64
}

// Direction returns the direction the action moves in
func (a *Action) Direction() Direction {
	return a.direction
}

// Dest returns the cell the action leads to
func (a *Action) Dest() *Cell {
	return a.dest
}

// Value returns the learned value of the action
func (a *Action) Value() float64 {
	return a.value
}

// SetValue sets the learned value of the action
func (a *Action) SetValue(v float64) {
	a.value = v
}

func (a *Action) String() string {
	return fmt.Sprintf("%v -> %d (%.2f)", a.direction, a.dest.index, a.value)
}

// Cell is a single position on the board. The tag and reward of a Cell
// never change after construction.
type Cell struct {
	index    int
	row, col int
	tag      Tag
	reward   float64

	actions   []*Action
	populated bool
}

func newCell(index, row, col int, tag Tag) *Cell {
	return &Cell{
		index:  index,
		row:    row,
		col:    col,
		tag:    tag,
		reward: tag.Reward(),
	}
}

// Index returns the flat, row-major, 0-based index of the cell
func (c *Cell) Index() int {
	return c.index
}

// Coordinates returns the (row, col) position of the cell
func (c *Cell) Coordinates() (row, col int) {
	return c.row, c.col
}

// Tag returns the tag of the cell
func (c *Cell) Tag() Tag {
	return c.tag
}

// Reward returns the reward collected when leaving the cell
func (c *Cell) Reward() float64 {
	return c.reward
}

// Terminal returns whether the cell ends an episode
func (c *Cell) Terminal() bool {
	return c.tag.Terminal()
}

// Actions returns the actions available from the cell. Actions panics
// if the actions of the owning GridWorld have not yet been set.
func (c *Cell) Actions() []*Action {
	if !c.populated {
		panic(fmt.Sprintf("actions: actions of cell %d queried before "+
			"being set", c.index))
	}
	return c.actions
}

// ActionValues returns the values of the cell's actions in enumeration
// order
func (c *Cell) ActionValues() []float64 {
	actions := c.Actions()
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = a.value
	}
	return values
}

// Greedy returns the action with the largest value. If multiple
// actions have the same maximal value, the first one in enumeration
// order is returned. Greedy returns nil if the cell has no actions.
func (c *Cell) Greedy() *Action {
	values := c.ActionValues()
	if len(values) == 0 {
		return nil
	}
	return c.actions[floats.MaxIdx(values)]
}

// MaxValue returns the largest action value of the cell. MaxValue
// panics if the cell has no actions.
func (c *Cell) MaxValue() float64 {
	values := c.ActionValues()
	if len(values) == 0 {
		panic(fmt.Sprintf("maxValue: cell %d has no actions", c.index))
	}
	return floats.Max(values)
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell %d (%d, %d) | %v", c.index, c.row, c.col, c.tag)
}
