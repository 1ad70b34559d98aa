package simplegrid

import (
	"fmt"
	"reflect"
)

// DefaultSize is used for any dimension passed as zero or negative.
const DefaultSize = 3

// initialLargestLength gives new grids ample cell width to start with;
// it grows as longer values are stored.
const initialLargestLength = 3

// Grid is a fixed-size rectangular container mapping (x, y) to a value.
// The origin (0, 0) is the top left corner. Cells start out holding the
// empty string; a cell is considered occupied once it holds anything
// other than its type's zero value.
//
// Grid assumes exclusive, sequential access and does no internal locking.
type Grid struct {
	width, height int
	store         storage
	largestLength int
}

// New returns a row-major grid of width x height empty-string cells.
// Dimensions that are zero or negative fall back to DefaultSize.
func New(width, height int) *Grid {
	width, height = normalizeSize(width, height)
	return &Grid{
		width:         width,
		height:        height,
		store:         newRowMajor(width, height),
		largestLength: initialLargestLength,
	}
}

// NewWithData returns a row-major grid that adopts the supplied rows as
// its backing storage. The shape of data is not validated against the
// given dimensions; the caller is responsible for supplying height rows
// of width cells.
func NewWithData(width, height int, data [][]any) *Grid {
	g := New(width, height)
	if data != nil {
		g.store = &rowMajor{width: g.width, height: g.height, grid: data}
	}
	return g
}

// NewSerpentine returns a grid backed by a single flat buffer addressed
// in serpentine (zigzag) order, as wired on LED matrix panels.
func NewSerpentine(pattern SerpentinePattern, width, height int) *Grid {
	width, height = normalizeSize(width, height)
	return &Grid{
		width:         width,
		height:        height,
		store:         newSerpentine(pattern, width, height),
		largestLength: initialLargestLength,
	}
}

// NewSerpentineWithData is NewSerpentine adopting a caller-supplied flat
// buffer, unvalidated, already in serpentine order.
func NewSerpentineWithData(pattern SerpentinePattern, width, height int, data []any) *Grid {
	g := NewSerpentine(pattern, width, height)
	if data != nil {
		g.store = &serpentine{width: g.width, height: g.height, pattern: pattern, cells: data}
	}
	return g
}

func normalizeSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}
	return width, height
}

// Width returns the fixed horizontal cell count.
func (g *Grid) Width() int { return g.width }

// Height returns the fixed vertical cell count.
func (g *Grid) Height() int { return g.height }

// LargestLength returns the length of the longest stringified value ever
// stored, used for cell padding when rendering. It never decreases.
func (g *Grid) LargestLength() int { return g.largestLength }

func (g *Grid) checkBounds(x, y int) error {
	if x < 0 || x >= g.width {
		return fmt.Errorf("%w: x=%d outside [0,%d)", ErrOutOfRange, x, g.width)
	}
	if y < 0 || y >= g.height {
		return fmt.Errorf("%w: y=%d outside [0,%d)", ErrOutOfRange, y, g.height)
	}
	return nil
}

// Get returns the value stored at (x, y), or ErrOutOfRange.
func (g *Grid) Get(x, y int) (any, error) {
	if err := g.checkBounds(x, y); err != nil {
		return nil, err
	}
	return g.store.load(x, y), nil
}

// Set stores v at (x, y). It returns ErrOutOfRange for invalid
// coordinates and ErrAlreadyFilled when the cell is occupied and
// allowOverwrite is false. Both are detected before any mutation.
func (g *Grid) Set(x, y int, v any, allowOverwrite bool) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	if !allowOverwrite && occupied(g.store.load(x, y)) {
		return fmt.Errorf("%w: (%d,%d)", ErrAlreadyFilled, x, y)
	}

	// Track the widest value ever stored before committing, so render
	// padding reflects the final contents.
	if n := len(fmt.Sprint(v)); n > g.largestLength {
		g.largestLength = n
	}

	g.store.store(x, y, v)
	return nil
}

// occupied reports whether a cell holds a value. Zero values (nil, the
// empty string, numeric 0, false) leave the cell free to be set without
// overwrite permission.
func occupied(v any) bool {
	if v == nil {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}

// AllItems returns the grid's cells flattened into one slice.
//
// The order depends on the backing storage: row-major grids return
// row-major order, serpentine grids return physical wiring order. Callers
// must not assume a shared ordering contract between the two variants.
func (g *Grid) AllItems() []any { return g.store.items() }

// ByRows returns the cells as row-major rows. For row-major grids this is
// the backing storage itself and must be treated as read-only.
func (g *Grid) ByRows() [][]any { return g.store.rows() }

// LinearIndex returns the backing buffer position for (x, y): y*width+x
// for row-major grids, the zigzag wiring index for serpentine grids.
func (g *Grid) LinearIndex(x, y int) (int, error) {
	if err := g.checkBounds(x, y); err != nil {
		return 0, err
	}
	return g.store.index(x, y), nil
}

// NextInDirection returns the coordinate one step from (x, y) in the
// given direction, or ErrOutOfRange if that point falls off the grid.
// It is a pure computation; the grid is not touched.
func (g *Grid) NextInDirection(x, y int, d Direction) (int, int, error) {
	newX, newY := x, y
	switch d {
	case Left:
		newX--
	case Right:
		newX++
	case Up:
		newY--
	case Down:
		newY++
	default:
		return 0, 0, fmt.Errorf("invalid direction %v", d)
	}

	if err := g.checkBounds(newX, newY); err != nil {
		return 0, 0, err
	}
	return newX, newY, nil
}

// String exposes the raw backing storage for debugging.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%v)", g.store)
}
