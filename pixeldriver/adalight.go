package pixeldriver

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"go.bug.st/serial"
)

// ErrRGBWUnsupported is returned for 4-component pixels: the Adalight
// wire format carries exactly three bytes per LED.
var ErrRGBWUnsupported = errors.New("RGBW pixels are not supported by the Adalight wire format")

// headerLen is the fixed Adalight preamble: "Ada", LED count (big
// endian, count-1) and an XOR checksum byte.
const headerLen = 6

// Adalight drives an Adalight-protocol LED strip (ws281x behind an
// Arduino or similar) over a serial port. It keeps a full RGB frame and
// rewrites it on every pixel update, so the strip always reflects the
// last committed state.
//
// The port is a shared resource; a mutex serialises frame writes.
type Adalight struct {
	mu    sync.Mutex
	port  Porter
	count int
	frame []byte // count*3 payload bytes, RGB per LED
}

// NewAdalight returns a driver for count LEDs over an already-open port.
// The driver takes ownership of the port; Close closes it.
func NewAdalight(port Porter, count int) *Adalight {
	return &Adalight{
		port:  port,
		count: count,
		frame: make([]byte, count*3),
	}
}

// OpenAdalight opens the serial port at path and returns a driver for
// count LEDs on it.
func OpenAdalight(path string, count int, opts PortOptions) (*Adalight, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}

	log.Printf("opened Adalight port %s for %d LEDs at %d baud", path, count, mode.BaudRate)
	return NewAdalight(port, count), nil
}

// Count returns the number of LEDs on the strip.
func (d *Adalight) Count() int { return d.count }

// SetPixelRGB updates one LED and pushes the whole frame to the strip.
// It accepts exactly three components; the call blocks until the frame
// has been written to the port.
func (d *Adalight) SetPixelRGB(index int, components ...uint8) error {
	if index < 0 || index >= d.count {
		return fmt.Errorf("pixel index %d outside strip of %d LEDs", index, d.count)
	}
	if len(components) == 4 {
		return ErrRGBWUnsupported
	}
	if len(components) != 3 {
		return fmt.Errorf("expected 3 colour components, got %d", len(components))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	copy(d.frame[index*3:], components)
	return d.writeFrame()
}

// writeFrame sends the Adalight header followed by the full payload.
// Callers must hold mu.
func (d *Adalight) writeFrame() error {
	buf := make([]byte, 0, headerLen+len(d.frame))

	hi := byte((d.count - 1) >> 8)
	lo := byte((d.count - 1) & 0xff)
	buf = append(buf, 'A', 'd', 'a', hi, lo, hi^lo^0x55)
	buf = append(buf, d.frame...)

	if _, err := d.port.Write(buf); err != nil {
		return fmt.Errorf("failed to write frame to strip: %w", err)
	}
	return nil
}

// Clear blacks out every LED and pushes the frame.
func (d *Adalight) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.frame {
		d.frame[i] = 0
	}
	return d.writeFrame()
}

// Close clears the strip on a best-effort basis and closes the port.
func (d *Adalight) Close() error {
	if err := d.Clear(); err != nil {
		log.Printf("failed to clear strip on close: %v", err)
	}
	return d.port.Close()
}
