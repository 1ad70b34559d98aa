package simplegrid

import "fmt"

// storage is the coordinate-resolution hook behind Grid. Implementations
// own only the layout of the backing buffer; bounds checking, occupancy
// rules, and display-width tracking live on Grid so they are written once.
//
// load and store are only ever called with coordinates already validated
// by Grid.
type storage interface {
	load(x, y int) any
	store(x, y int, v any)

	// index reports the linear position backing (x, y).
	index(x, y int) int

	// items returns the backing cells in storage order. For row-major
	// storage that is row-major order; for serpentine storage it is the
	// physical wiring order. The two are intentionally different.
	items() []any

	// rows returns the cells as row-major rows.
	rows() [][]any

	fmt.Stringer
}

// rowMajor stores cells as nested rows: grid[y][x].
type rowMajor struct {
	width, height int
	grid          [][]any
}

func newRowMajor(width, height int) *rowMajor {
	grid := make([][]any, height)
	for y := range grid {
		row := make([]any, width)
		for x := range row {
			row[x] = ""
		}
		grid[y] = row
	}
	return &rowMajor{width: width, height: height, grid: grid}
}

func (s *rowMajor) load(x, y int) any     { return s.grid[y][x] }
func (s *rowMajor) store(x, y int, v any) { s.grid[y][x] = v }
func (s *rowMajor) index(x, y int) int    { return y*s.width + x }

func (s *rowMajor) items() []any {
	flat := make([]any, 0, s.width*s.height)
	for _, row := range s.grid {
		flat = append(flat, row...)
	}
	return flat
}

func (s *rowMajor) rows() [][]any { return s.grid }

func (s *rowMajor) String() string { return fmt.Sprintf("%v", s.grid) }

// serpentine stores cells in one flat buffer addressed in physical wiring
// order, alternating row direction according to the pattern.
type serpentine struct {
	width, height int
	pattern       SerpentinePattern
	cells         []any
}

func newSerpentine(pattern SerpentinePattern, width, height int) *serpentine {
	cells := make([]any, width*height)
	for i := range cells {
		cells[i] = ""
	}
	return &serpentine{width: width, height: height, pattern: pattern, cells: cells}
}

// index maps (x, y) to the flat buffer position. The row stride is
// y*height, matching the wiring tables this layout was lifted from; the
// mapping is a bijection onto [0, width*height) only on square panels.
func (s *serpentine) index(x, y int) int {
	idx := y * s.height
	forward := y%2 == 0
	if s.pattern == TopRight {
		forward = !forward
	}
	if forward {
		return idx + x
	}
	return idx + (s.width - x - 1)
}

func (s *serpentine) load(x, y int) any     { return s.cells[s.index(x, y)] }
func (s *serpentine) store(x, y int, v any) { s.cells[s.index(x, y)] = v }

// items returns the flat buffer itself, in wiring order rather than
// row-major order.
func (s *serpentine) items() []any { return s.cells }

func (s *serpentine) rows() [][]any {
	grid := make([][]any, s.height)
	for y := range grid {
		row := make([]any, s.width)
		for x := range row {
			row[x] = s.load(x, y)
		}
		grid[y] = row
	}
	return grid
}

func (s *serpentine) String() string { return fmt.Sprintf("%v", s.cells) }
