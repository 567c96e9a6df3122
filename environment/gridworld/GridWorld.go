// Package gridworld implements the fixed-size grid world that the
// tabular Q-learning agent learns on.
//
// A GridWorld is a row-major collection of cells. Each cell is tagged
// as Normal, Wall, Forbidden, or Goal, and owns the list of actions
// that can be taken from it. Action values are the only state that
// changes after construction.
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridq/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Default board dimensions
const (
	Rows int = 3
	Cols int = 4
)

// GridWorld represents a gridworld environment
type GridWorld struct {
	r, c     int
	cells    []*Cell
	starter  *SingleStart
	discount float64
}

// New creates a new gridworld with r rows, c columns, and discount
// factor discount. Episodes start in the cell at flat index start. The
// tags map assigns tags to flat indices, all other cells are Normal.
//
// The actions of the gridworld must be set with SetActions before the
// gridworld can be played on.
func New(r, c, start int, tags map[int]Tag, discount float64) (*GridWorld,
	error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("new: invalid dimensions (%d, %d)", r, c)
	}
	if discount < 0 || discount > 1 {
		return nil, fmt.Errorf("new: discount %v not in [0, 1]", discount)
	}

	for i, tag := range tags {
		if i < 0 || i >= r*c {
			return nil, fmt.Errorf("new: tagged index %d out of range "+
				"[0, %d)", i, r*c)
		}
		if tag < Normal || tag > Goal {
			return nil, fmt.Errorf("new: index %d has unknown tag %d", i,
				int(tag))
		}
	}

	starter, err := NewSingleStart(start, r, c)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if tags[start] == Wall {
		return nil, fmt.Errorf("new: start index %d is a wall", start)
	}

	cells := make([]*Cell, r*c)
	for i := range cells {
		row, col := indToC(i, c)
		cells[i] = newCell(i, row, col, tags[i])
	}

	return &GridWorld{r, c, cells, starter, discount}, nil
}

// SetActions (re)builds the action list of every cell and resets all
// action values to zero.
//
// Normal cells receive one action per movement direction whose
// destination is on the board and not a Wall. Forbidden and Goal cells
// receive a single Exit action leading to the start cell. Wall cells
// receive no actions.
func (g *GridWorld) SetActions() {
	start := g.Start()

	for _, cell := range g.cells {
		switch cell.tag {
		case Normal:
			actions := make([]*Action, 0, len(Moves))
			for _, d := range Moves {
				dr, dc := Offset(d)
				row, col := cell.row+dr, cell.col+dc

				if !g.inBounds(row, col) {
					continue
				}
				dest := g.CellAt(row, col)
				if dest.tag == Wall {
					continue
				}
				actions = append(actions, &Action{direction: d, dest: dest})
			}
			cell.actions = actions

		case Forbidden, Goal:
			cell.actions = []*Action{{direction: Exit, dest: start}}

		default:
			cell.actions = nil
		}
		cell.populated = true
	}
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Len returns the number of cells in the GridWorld
func (g *GridWorld) Len() int {
	return len(g.cells)
}

// Discount returns the discount factor of the GridWorld
func (g *GridWorld) Discount() float64 {
	return g.discount
}

// Start returns the cell that episodes start in
func (g *GridWorld) Start() *Cell {
	return g.cells[g.starter.Start()]
}

// Cell returns the cell at flat index i. Cell panics if i is out of
// range.
func (g *GridWorld) Cell(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("cell: index %d out of range [0, %d)", i,
			len(g.cells)))
	}
	return g.cells[i]
}

// CellAt returns the cell at position (row, col)
func (g *GridWorld) CellAt(row, col int) *Cell {
	if !g.inBounds(row, col) {
		panic(fmt.Sprintf("cellAt: (%d, %d) out of bounds (%d, %d)", row,
			col, g.r, g.c))
	}
	return g.cells[cToInd(row, col, g.c)]
}

// Cells returns all cells in row-major order
func (g *GridWorld) Cells() []*Cell {
	return g.cells
}

// PolicyEntry is the greedy direction of a single Normal cell
type PolicyEntry struct {
	Index     int
	Direction Direction
}

// Policy returns the greedy direction of each Normal cell that has at
// least one action, in row-major order
func (g *GridWorld) Policy() []PolicyEntry {
	var policy []PolicyEntry
	for _, cell := range g.cells {
		if cell.tag != Normal {
			continue
		}
		if a := cell.Greedy(); a != nil {
			policy = append(policy, PolicyEntry{cell.index, a.direction})
		}
	}
	return policy
}

// ActionValue is the learned value of an action in some direction
type ActionValue struct {
	Direction Direction
	Value     float64
}

// Values returns the learned values of all actions available from the
// cell at flat index i
func (g *GridWorld) Values(i int) []ActionValue {
	actions := g.Cell(i).Actions()
	values := make([]ActionValue, len(actions))
	for j, a := range actions {
		values[j] = ActionValue{a.direction, a.value}
	}
	return values
}

// StateValues returns the maximum action value of each cell as an
// r x c matrix. Cells without actions have value 0.
func (g *GridWorld) StateValues() *mat.Dense {
	values := mat.NewDense(g.r, g.c, nil)
	for _, cell := range g.cells {
		if len(cell.Actions()) > 0 {
			values.Set(cell.row, cell.col, cell.MaxValue())
		}
	}
	return values
}

// Rollout follows the greedy policy from the cell at flat index from,
// returning the cells visited (including from). The rollout stops when
// a terminal cell is reached, when a cell without actions is reached,
// or after maxSteps moves.
func (g *GridWorld) Rollout(from, maxSteps int) []*Cell {
	cell := g.Cell(from)
	path := []*Cell{cell}

	for i := 0; i < maxSteps && !cell.Terminal(); i++ {
		a := cell.Greedy()
		if a == nil {
			break
		}
		cell = a.dest
		path = append(path, cell)
	}
	return path
}

func (g *GridWorld) String() string {
	str := "GridWorld | Start: %d  |  Bounds: (%d, %d)  |  Discount: %.2f"
	str = fmt.Sprintf(str, g.starter.Start(), g.r, g.c, g.discount)

	if !g.cells[0].populated {
		return str
	}
	return str + "\n" + matutils.Format(g.StateValues())
}

func (g *GridWorld) inBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

func cToInd(row, col, c int) int {
	return row*c + col
}

func indToC(i, c int) (row, col int) {
	row = i / c
	col = i - (row * c)
	return
}
