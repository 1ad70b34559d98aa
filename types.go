package simplegrid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a coordinate falls outside
// [0,width) x [0,height). It is always detected before any mutation.
var ErrOutOfRange = errors.New("coordinate out of grid range")

// ErrAlreadyFilled is returned by Set when the target cell is occupied and
// overwriting was not requested.
var ErrAlreadyFilled = errors.New("grid cell already filled")

// Direction identifies one of the four cardinal moves on a grid.
type Direction int

const (
	Left Direction = iota + 1
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// SerpentinePattern identifies which corner the first physical wiring
// segment of a serpentine LED panel starts from.
//
// TopLeft:
//
//	 0  1  2  3  4  5  6  7
//	15 14 13 12 11 10  9  8
//	16 17 18 19 20 21 22 23
//
// TopRight:
//
//	 7  6  5  4  3  2  1  0
//	 8  9 10 11 12 13 14 15
//	23 22 21 20 19 18 17 16
type SerpentinePattern int

const (
	TopLeft SerpentinePattern = iota + 1
	TopRight
)

func (p SerpentinePattern) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}
