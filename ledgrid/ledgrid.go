// Package ledgrid drives ws281x-style LED matrix panels through the
// serpentine addressing in simplegrid. An LEDGrid keeps the grid contract
// intact and additionally pushes every stored pixel to a hardware driver
// at its wiring index.
package ledgrid

import (
	"errors"
	"fmt"

	"github.com/overdrivenetworks/simplegrid"
)

// DefaultSize matches the common 16x16 ws281x matrix panel.
const DefaultSize = 16

// ErrInvalidPixelFormat is returned by Set for a pixel that is not 3
// (RGB) or 4 (RGBW) components long. It signals a caller bug; the grid
// and the hardware are left untouched.
var ErrInvalidPixelFormat = errors.New("pixel must have 3 (RGB) or 4 (RGBW) components")

// Pixel holds the colour components of one LED: red, green, blue and
// optionally white.
type Pixel []uint8

// RGB builds a 3-component pixel.
func RGB(r, g, b uint8) Pixel { return Pixel{r, g, b} }

// RGBW builds a 4-component pixel.
func RGBW(r, g, b, w uint8) Pixel { return Pixel{r, g, b, w} }

// Validate returns ErrInvalidPixelFormat unless the pixel has exactly 3
// or 4 components.
func (p Pixel) Validate() error {
	if len(p) != 3 && len(p) != 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidPixelFormat, len(p))
	}
	return nil
}

// PixelDriver pushes a colour update to physical hardware at a linear
// strip index. Implementations live in the pixeldriver package; anything
// with this method shape works, so tests can substitute recorders.
type PixelDriver interface {
	SetPixelRGB(index int, components ...uint8) error
}

// LEDGrid is a serpentine grid whose Set additionally hands the pixel to
// a PixelDriver. The driver is injected and shared, not owned; closing it
// is the caller's business.
type LEDGrid struct {
	*simplegrid.Grid
	driver PixelDriver
}

// New returns an LEDGrid over a fresh serpentine grid. Dimensions that
// are zero or negative fall back to DefaultSize.
func New(driver PixelDriver, pattern simplegrid.SerpentinePattern, width, height int) *LEDGrid {
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}
	return &LEDGrid{
		Grid:   simplegrid.NewSerpentine(pattern, width, height),
		driver: driver,
	}
}

// Set stores p at (x, y) and then pushes it to the hardware at the
// serpentine wiring index, synchronously. The pixel format is checked
// before any storage mutation or hardware call.
//
// A driver failure is returned to the caller, but the stored value is
// not rolled back: the grid reflects the intended panel state and the
// caller decides whether to retry the hand-off.
func (g *LEDGrid) Set(x, y int, p Pixel, allowOverwrite bool) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := g.Grid.Set(x, y, p, allowOverwrite); err != nil {
		return err
	}

	idx, _ := g.LinearIndex(x, y) // bounds were just validated by Set
	return g.driver.SetPixelRGB(idx, p...)
}

// GetPixel returns the pixel stored at (x, y), or nil when the cell has
// never been set.
func (g *LEDGrid) GetPixel(x, y int) (Pixel, error) {
	v, err := g.Get(x, y)
	if err != nil {
		return nil, err
	}
	p, ok := v.(Pixel)
	if !ok {
		return nil, nil
	}
	return p, nil
}
