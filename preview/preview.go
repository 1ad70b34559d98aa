// Package preview renders debugging views of LED grids: the plain-text
// bordered table over HTTP, and a go-echarts brightness heatmap that
// shows what the physical panel should look like without hardware
// attached. These endpoints are unauthenticated debug surfaces; do not
// expose them publicly.
package preview

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/overdrivenetworks/simplegrid/ledgrid"
)

// viridis-style ramp, dark to bright.
var heatmapColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteHeatmapHTML renders a per-cell brightness heatmap of the grid as
// a standalone HTML page. Brightness is the mean of a pixel's colour
// components; unset cells read as 0.
func WriteHeatmapHTML(w io.Writer, g *ledgrid.LEDGrid) error {
	width, height := g.Width(), g.Height()

	xLabels := make([]string, width)
	for x := range xLabels {
		xLabels[x] = fmt.Sprintf("%d", x)
	}
	yLabels := make([]string, height)
	for y := range yLabels {
		// Flip so row 0 appears at the top, matching the panel.
		yLabels[y] = fmt.Sprintf("%d", height-y-1)
	}

	data := make([]opts.HeatMapData, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p, err := g.GetPixel(x, y)
			if err != nil {
				return err
			}
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{x, height - y - 1, brightness(p)},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "LED Grid Preview",
			Width:     "700px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "LED grid brightness",
			Subtitle: fmt.Sprintf("%dx%d panel", width, height),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        255,
			InRange:    &opts.VisualMapInRange{Color: heatmapColors},
		}),
	)

	hm.SetXAxis(xLabels).AddSeries("brightness", data)
	return hm.Render(w)
}

func brightness(p ledgrid.Pixel) int {
	if len(p) == 0 {
		return 0
	}
	sum := 0
	for _, c := range p {
		sum += int(c)
	}
	return sum / len(p)
}

// AttachDebugRoutes registers the grid debugging endpoints on mux:
// /debug/grid serves the bordered text render, /debug/grid/heatmap the
// HTML brightness chart.
func AttachDebugRoutes(mux *http.ServeMux, g *ledgrid.LEDGrid) {
	mux.HandleFunc("/debug/grid", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := g.RenderTo(w); err != nil {
			http.Error(w, fmt.Sprintf("failed to render grid: %v", err), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/debug/grid/heatmap", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := WriteHeatmapHTML(w, g); err != nil {
			http.Error(w, fmt.Sprintf("failed to render heatmap: %v", err), http.StatusInternalServerError)
		}
	})
}
