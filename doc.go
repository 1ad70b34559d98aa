// Package simplegrid implements small fixed-size 2D grids with pluggable
// coordinate-to-storage addressing.
//
// Two addressing schemes are provided: plain row-major storage, and
// serpentine (boustrophedon) storage as wired on zigzag LED matrix
// panels. Both share one Grid type that owns bounds checking, occupancy
// rules, and display-width tracking; only the backing storage differs.
//
// Key types: Grid, Direction, SerpentinePattern.
//
// A Grid is a single mutable resource. It does no internal locking;
// concurrent callers must serialise access per instance.
package simplegrid
