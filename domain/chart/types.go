// Package chart defines the chart specifications produced by the dashboard callbacks.
package chart

import "spacexdash/domain/launch"

// Segment is one slice of a pie chart
type Segment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Launches is the number of rows behind the segment
	Launches int    `json:"launches"`
	Color    string `json:"color,omitempty"`
}

// PieChart is the landing outcome chart.
// Segment order is the render order; consumers must not re-sort it.
type PieChart struct {
	Title    string    `json:"title"`
	Site     string    `json:"site"`
	Segments []Segment `json:"segments"`
	Empty    bool      `json:"empty"`
}

// Total returns the sum of segment values
func (p PieChart) Total() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.Value
	}
	return total
}

// Launches returns the number of rows aggregated into the chart
func (p PieChart) Launches() int {
	var n int
	for _, s := range p.Segments {
		n += s.Launches
	}
	return n
}

// Point is one launch on the payload scatter chart
type Point struct {
	X        float64 `json:"x"`
	Y        int     `json:"y"`
	Category string  `json:"category"`
	Site     string  `json:"site"`
	Flight   int     `json:"flight,omitempty"`
}

// ScatterChart is the payload vs landing outcome chart
type ScatterChart struct {
	Title      string              `json:"title"`
	Site       string              `json:"site"`
	Range      launch.PayloadRange `json:"payload_range"`
	Points     []Point             `json:"points"`
	Categories []string            `json:"categories"`
	Empty      bool                `json:"empty"`
}

// PointsIn returns the points of one booster category in chart order
func (s ScatterChart) PointsIn(category string) []Point {
	var pts []Point
	for _, p := range s.Points {
		if p.Category == category {
			pts = append(pts, p)
		}
	}
	return pts
}

// Outcome colours. Failure is always red so the pie reads the same for every site.
const (
	FailureColor = "#EF553B"
	SuccessColor = "#636EFA"
)

// Palette is the qualitative colour cycle for sites and booster categories
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// PaletteColor returns the i-th palette colour, cycling
func PaletteColor(i int) string {
	return Palette[i%len(Palette)]
}

// OutcomeColor returns the fixed colour for a landing outcome
func OutcomeColor(o launch.Outcome) string {
	if o == launch.Success {
		return SuccessColor
	}
	return FailureColor
}
