package marble

// Grid holds the fixed layout parameters of a session.
type Grid struct {
	Radius int
	Rows   int
	Cols   int
}

// GridForArea fits as many touching marbles of the given radius as a width x height area holds.
func GridForArea(width, height, radius int) Grid {
	if radius <= 0 {
		return Grid{Radius: radius}
	}
	diameter := radius * 2
	return Grid{
		Radius: radius,
		Rows:   height / diameter,
		Cols:   width / diameter,
	}
}

// Degenerate reports whether the grid has no cells.
func (g Grid) Degenerate() bool {
	return g.Radius <= 0 || g.Rows <= 0 || g.Cols <= 0
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	if g.Degenerate() {
		return 0
	}
	return g.Rows * g.Cols
}

// Width returns the pixel width spanned by the grid.
func (g Grid) Width() int {
	if g.Degenerate() {
		return 0
	}
	return g.Cols * g.Radius * 2
}

// Height returns the pixel height spanned by the grid.
func (g Grid) Height() int {
	if g.Degenerate() {
		return 0
	}
	return g.Rows * g.Radius * 2
}

// Center returns the centre of the cell at row, col. The result is only meaningful
// for 0 <= row < Rows and 0 <= col < Cols.
func (g Grid) Center(row, col int) Point {
	return Point{
		X: g.Radius + col*2*g.Radius,
		Y: g.Radius + row*2*g.Radius,
	}
}

// Centers returns every cell centre of the grid in row-major order.
func (g Grid) Centers() []Point {
	return Centers(g.Radius, g.Rows, g.Cols)
}

// Centers lays out rows x cols touching marbles of the given radius and returns their
// centres in row-major order. The origin is the top-left corner of the first cell, with
// y pointing down. Non-positive arguments yield an empty slice.
func Centers(radius, rows, cols int) []Point {
	g := Grid{Radius: radius, Rows: rows, Cols: cols}
	if g.Degenerate() {
		return []Point{}
	}

	points := make([]Point, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			points = append(points, g.Center(r, c))
		}
	}
	return points
}
