package simplegrid

import (
	"fmt"
	"io"
	"strings"
)

// RenderTo writes a bordered table of the grid to w. Unset cells (nil or
// empty string) display their "x,y" coordinate label instead, so a blank
// 3x3 grid comes out as:
//
//	|---|---|---|
//	|0,0|1,0|2,0|
//	|---|---|---|
//	|0,1|1,1|2,1|
//	|---|---|---|
//	|0,2|1,2|2,2|
//	|---|---|---|
//
// Cell width grows with the longest value ever stored (see
// LargestLength); contents are centred.
func (g *Grid) RenderTo(w io.Writer) error {
	border := strings.Repeat("|"+strings.Repeat("-", g.largestLength), g.width) + "|"
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}

	for y := 0; y < g.height; y++ {
		var row strings.Builder
		for x := 0; x < g.width; x++ {
			row.WriteByte('|')

			v := g.store.load(x, y)
			label := fmt.Sprintf("%d,%d", x, y)

			// Unset cells show their coordinate label. Numeric 0 is a
			// stored value and shows as-is.
			out := label
			if v != nil && v != "" {
				out = fmt.Sprint(v)
			}

			row.WriteString(center(out, max(len(label), g.largestLength)))
		}
		row.WriteByte('|')

		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, border); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the bordered table as a string.
func (g *Grid) Render() string {
	var sb strings.Builder
	g.RenderTo(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

// center pads s with spaces to the given width, splitting the padding
// evenly and giving any odd space to the right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
