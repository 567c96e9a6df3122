package gridworld

import "fmt"

// Direction is the direction an action moves the agent in
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right

	// Exit is only available from terminal cells and moves the agent
	// back to the start cell
	Exit
)

// Moves lists the movement directions in the order actions are
// enumerated for a Normal cell. Greedy ties are broken in this order.
var Moves = [...]Direction{Up, Down, Left, Right}

// Offset returns the change in (row, col) that moving in direction d
// causes.
//
// The offsets are mirrored with respect to the glyphs: Up increases
// the row index and Left increases the column index. Learned policies
// are reported in these terms, so the mapping must not be changed.
func Offset(d Direction) (dr, dc int) {
	switch d {
	case Up:
		return 1, 0
	case Down:
		return -1, 0
	case Left:
		return 0, 1
	case Right:
		return 0, -1
	case Exit:
		return 0, 0
	}
	panic(fmt.Sprintf("offset: no such direction %d", int(d)))
}

// Glyph returns the character used to display d
func (d Direction) Glyph() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	case Right:
		return ">"
	case Exit:
		return "x"
	}
	return "?"
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
