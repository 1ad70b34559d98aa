package framestore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/overdrivenetworks/simplegrid"
	"github.com/overdrivenetworks/simplegrid/ledgrid"
)

// Frame is one persisted snapshot of a panel. Pixels are stored in
// wiring (serpentine) order, exactly as the grid's flat buffer holds
// them; cells that were never set are nil.
type Frame struct {
	FrameID        string          `json:"frame_id"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Pattern        string          `json:"pattern"`
	TakenUnixNanos int64           `json:"taken_unix_nanos"`
	Reason         string          `json:"reason"`
	Pixels         []ledgrid.Pixel `json:"pixels"`
}

// Store provides persistence for grid frames over an open database.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store. The database must already be migrated (see
// Open).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert persists a frame. If FrameID is empty a UUID is generated; if
// TakenUnixNanos is zero the current time is used.
func (s *Store) Insert(f *Frame) error {
	if f.FrameID == "" {
		f.FrameID = uuid.New().String()
	}
	if f.TakenUnixNanos == 0 {
		f.TakenUnixNanos = time.Now().UnixNano()
	}
	if f.Reason == "" {
		f.Reason = "manual"
	}

	pixels, err := json.Marshal(f.Pixels)
	if err != nil {
		return fmt.Errorf("failed to encode pixels: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO grid_frames (
			frame_id, width, height, pattern, taken_unix_nanos, reason, pixels_json
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.FrameID, f.Width, f.Height, f.Pattern, f.TakenUnixNanos, f.Reason, string(pixels),
	)
	return err
}

// Get returns the frame with the given ID, or sql.ErrNoRows.
func (s *Store) Get(frameID string) (*Frame, error) {
	row := s.db.QueryRow(`
		SELECT frame_id, width, height, pattern, taken_unix_nanos, reason, pixels_json
		FROM grid_frames WHERE frame_id = ?`, frameID)
	return scanFrame(row)
}

// ListRecent returns up to limit frames, newest first.
func (s *Store) ListRecent(limit int) ([]*Frame, error) {
	rows, err := s.db.Query(`
		SELECT frame_id, width, height, pattern, taken_unix_nanos, reason, pixels_json
		FROM grid_frames ORDER BY taken_unix_nanos DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []*Frame
	for rows.Next() {
		f, err := scanFrame(rows)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// Delete removes a frame by ID. Deleting an unknown ID is not an error.
func (s *Store) Delete(frameID string) error {
	_, err := s.db.Exec(`DELETE FROM grid_frames WHERE frame_id = ?`, frameID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFrame(row rowScanner) (*Frame, error) {
	var f Frame
	var pixelsJSON string
	if err := row.Scan(&f.FrameID, &f.Width, &f.Height, &f.Pattern,
		&f.TakenUnixNanos, &f.Reason, &pixelsJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(pixelsJSON), &f.Pixels); err != nil {
		return nil, fmt.Errorf("failed to decode pixels for frame %s: %w", f.FrameID, err)
	}
	return &f, nil
}

// Snapshot captures the current state of an LED grid as a frame ready
// for Insert.
func Snapshot(g *ledgrid.LEDGrid, pattern simplegrid.SerpentinePattern, reason string) *Frame {
	items := g.AllItems() // wiring order for serpentine grids
	pixels := make([]ledgrid.Pixel, len(items))
	for i, v := range items {
		if p, ok := v.(ledgrid.Pixel); ok {
			pixels[i] = p
		}
	}

	return &Frame{
		Width:          g.Width(),
		Height:         g.Height(),
		Pattern:        pattern.String(),
		TakenUnixNanos: time.Now().UnixNano(),
		Reason:         reason,
		Pixels:         pixels,
	}
}

// Restore rebuilds an LED grid from a frame and pushes every stored
// pixel back to the driver, replaying the panel state.
func Restore(f *Frame, driver ledgrid.PixelDriver) (*ledgrid.LEDGrid, error) {
	pattern, err := parsePattern(f.Pattern)
	if err != nil {
		return nil, err
	}

	g := ledgrid.New(driver, pattern, f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx, err := g.LinearIndex(x, y)
			if err != nil {
				return nil, err
			}
			if idx >= len(f.Pixels) || f.Pixels[idx] == nil {
				continue
			}
			if err := g.Set(x, y, f.Pixels[idx], true); err != nil {
				return nil, fmt.Errorf("failed to restore pixel (%d,%d): %w", x, y, err)
			}
		}
	}
	return g, nil
}

func parsePattern(s string) (simplegrid.SerpentinePattern, error) {
	for _, p := range []simplegrid.SerpentinePattern{simplegrid.TopLeft, simplegrid.TopRight} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown serpentine pattern %q", s)
}
