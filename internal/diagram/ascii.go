package diagram

import (
	"fmt"
	"math"
	"strings"
)

// glyphs are assigned to layers in order
var glyphs = []rune{'o', '=', '-', '+', '*', '#', '~', 'x'}

// DrawASCIIPlan rasterizes the layers into a width x height character plan,
// north up. Later layers draw over earlier ones.
func DrawASCIIPlan(layers []Layer, width, height int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  PLAN VIEW\n")
	sb.WriteString("  ─────────\n")

	b, ok := PlanBounds(layers)
	if !ok || width < 2 || height < 2 {
		sb.WriteString("  (no members)\n")
		return sb.String()
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	col := func(x float64) int {
		return int(math.Round((x - b.MinX) / b.Width() * float64(width-1)))
	}
	row := func(y float64) int {
		// row 0 is the top of the plan
		return height - 1 - int(math.Round((y-b.MinY)/b.Height()*float64(height-1)))
	}

	for i, layer := range layers {
		g := glyphs[i%len(glyphs)]
		for _, s := range layer.Segments {
			plotLine(grid, col(s.X1), row(s.Y1), col(s.X2), row(s.Y2), g)
		}
	}

	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", width)))
	for _, r := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(r)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", width)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for i, layer := range layers {
		sb.WriteString(fmt.Sprintf("  %c = %s (%d)\n", glyphs[i%len(glyphs)], layer.Name, len(layer.Segments)))
	}
	sb.WriteString(fmt.Sprintf("  X: %g to %g\n", b.MinX, b.MaxX))
	sb.WriteString(fmt.Sprintf("  Y: %g to %g\n", b.MinY, b.MaxY))

	return sb.String()
}

// plotLine draws from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func plotLine(grid [][]rune, x0, y0, x1, y1 int, g rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) {
			grid[y0][x0] = g
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
