// Package render draws chart specs as SVG for clients without JavaScript.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"spacexdash/domain/chart"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Rendered chart sizes in pixels
const (
	PieSize       = 480
	ScatterWidth  = 900
	ScatterHeight = 420
)

// color converts a "#RRGGBB" palette entry
func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// pointStyle renders points only, no connecting line
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// PieSVG renders a pie chart. Segments with no value are left out, and a chart
// with nothing left to draw becomes a titled placeholder.
func PieSVG(w io.Writer, pie chart.PieChart) error {
	values := make([]gochart.Value, 0, len(pie.Segments))
	for _, s := range pie.Segments {
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s (%g)", s.Label, s.Value),
			Value: s.Value,
			Style: gochart.Style{FillColor: color(s.Color), StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		return Placeholder(w, pie.Title, PieSize, PieSize)
	}

	pc := gochart.PieChart{
		Title:  pie.Title,
		Width:  PieSize,
		Height: PieSize,
		Values: values,
	}
	if err := pc.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

// ScatterSVG renders the payload scatter chart, one series per booster category
func ScatterSVG(w io.Writer, sc chart.ScatterChart) error {
	if sc.Empty || len(sc.Points) == 0 || sc.Range.High <= sc.Range.Low {
		return Placeholder(w, sc.Title, ScatterWidth, ScatterHeight)
	}

	series := make([]gochart.Series, 0, len(sc.Categories))
	for i, category := range sc.Categories {
		pts := sc.PointsIn(category)
		xs := make([]float64, 0, len(pts)+1)
		ys := make([]float64, 0, len(pts)+1)
		for _, p := range pts {
			xs = append(xs, p.X)
			ys = append(ys, float64(p.Y))
		}
		// go-chart wants at least two values per series
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(color(chart.PaletteColor(i))),
		})
	}

	ch := gochart.Chart{
		Title:      sc.Title,
		Width:      ScatterWidth,
		Height:     ScatterHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: &gochart.ContinuousRange{Min: sc.Range.Low, Max: sc.Range.High},
		},
		YAxis: gochart.YAxis{
			Name:  "class",
			Range: &gochart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []gochart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render scatter chart: %w", err)
	}
	return nil
}

// Placeholder writes an SVG with the chart title and a no-data notice
func Placeholder(w io.Writer, title string, width, height int) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#888888">No launches match this selection</text>`+
			`</svg>`,
		width, height, width, height, html.EscapeString(title))
	return err
}
