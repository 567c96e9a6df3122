package gridworld

import (
	"fmt"

	"github.com/fogleman/gg"
)

const border float64 = 2.0

// Render draws the board to a PNG image at filename. Each cell is a
// square of cellSize pixels. Normal cells show an arrow towards the
// destination of their greedy action and the value of that action.
//
// Render panics if the actions of the gridworld have not been set.
func (g *GridWorld) Render(filename string, cellSize int) error {
	if cellSize <= 0 {
		return fmt.Errorf("render: cell size must be positive")
	}
	size := float64(cellSize)

	dc := gg.NewContext(g.c*cellSize, g.r*cellSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, cell := range g.cells {
		x, y := float64(cell.col)*size, float64(cell.row)*size

		switch cell.tag {
		case Wall:
			dc.SetRGB(0.3, 0.3, 0.3)
		case Forbidden:
			dc.SetRGB(0.85, 0.2, 0.2)
		case Goal:
			dc.SetRGB(0.2, 0.7, 0.3)
		default:
			dc.SetRGB(0.95, 0.95, 0.95)
		}
		dc.DrawRectangle(x+border, y+border, size-2*border, size-2*border)
		dc.Fill()

		if cell == g.Start() {
			dc.SetRGB(0.2, 0.4, 0.9)
			dc.SetLineWidth(2 * border)
			dc.DrawRectangle(x+border, y+border, size-2*border,
				size-2*border)
			dc.Stroke()
		}

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprint(cell.index+1), x+4*border,
			y+4*border, 0, 1)

		if cell.tag != Normal {
			if cell.tag != Wall {
				dc.DrawStringAnchored(cell.tag.String(), x+size/2, y+size/2,
					0.5, 0.5)
			}
			continue
		}

		a := cell.Greedy()
		if a == nil {
			continue
		}
		drawArrow(dc, cell, a.dest, size)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", a.value), x+size/2,
			y+size-4*border, 0.5, 0)
	}

	return dc.SavePNG(filename)
}

// drawArrow draws an arrow from the centre of from pointing towards to
func drawArrow(dc *gg.Context, from, to *Cell, size float64) {
	cx := (float64(from.col) + 0.5) * size
	cy := (float64(from.row) + 0.5) * size
	dx := float64(to.col-from.col) * size * 0.3
	dy := float64(to.row-from.row) * size * 0.3

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(border)
	dc.DrawLine(cx-dx, cy-dy, cx+dx, cy+dy)
	dc.Stroke()

	// Head
	hx, hy := cx+dx, cy+dy
	dc.MoveTo(hx, hy)
	dc.LineTo(hx-dx/3-dy/3, hy-dy/3+dx/3)
	dc.LineTo(hx-dx/3+dy/3, hy-dy/3-dx/3)
	dc.ClosePath()
	dc.Fill()
}
