package pixeldriver

import "sync"

// Call records one SetPixelRGB invocation on a Mock.
type Call struct {
	Index      int
	Components []uint8
}

// Mock implements the pixel driver contract by recording calls. It lets
// grid code run without hardware and lets tests assert on exactly what
// would have been pushed to the strip.
type Mock struct {
	mu sync.Mutex

	// Err, when set, is returned by every SetPixelRGB call without
	// recording it. Use it to exercise driver-failure paths.
	Err error

	calls []Call
}

// NewMock returns an empty recording driver.
func NewMock() *Mock { return &Mock{} }

func (m *Mock) SetPixelRGB(index int, components ...uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	// Copy the components so later mutations by the caller don't
	// rewrite history.
	c := make([]uint8, len(components))
	copy(c, components)
	m.calls = append(m.calls, Call{Index: index, Components: c})
	return nil
}

// Calls returns a snapshot of the recorded invocations in order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset discards recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
