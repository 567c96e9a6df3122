package gridworld

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

const cellWidth = 9

// Board returns a text drawing of the gridworld with one row per line.
// Normal cells show the glyph and value of their greedy action, other
// cells show their tag. When colour is true, tags and the start cell
// are highlighted with ANSI colours.
//
// Board panics if the actions of the gridworld have not been set.
func (g *GridWorld) Board(colour bool) string {
	au := aurora.NewAurora(colour)
	start := g.Start()

	var b strings.Builder
	for row := 0; row < g.r; row++ {
		for col := 0; col < g.c; col++ {
			cell := g.CellAt(row, col)
			label := fmt.Sprintf("%*s", cellWidth, cellLabel(cell))

			var v aurora.Value
			switch {
			case cell.tag == Goal:
				v = au.Green(label)
			case cell.tag == Forbidden:
				v = au.Red(label)
			case cell.tag == Wall:
				v = au.Gray(12, label)
			case cell == start:
				v = au.Blue(label)
			default:
				v = au.Reset(label)
			}
			b.WriteString(v.String())
			b.WriteString(au.White("|").String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cellLabel(c *Cell) string {
	if c.tag != Normal {
		return c.tag.String()
	}
	a := c.Greedy()
	if a == nil {
		return "."
	}
	return fmt.Sprintf("%s %.2f", a.direction.Glyph(), a.value)
}
