package chart

// Figure is a Plotly figure as consumed by Plotly.react in the page script
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is the subset of Plotly trace attributes the dashboard uses
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	// Sort is always sent for pies; Plotly sorts by value otherwise
	Sort      *bool     `json:"sort,omitempty"`
	Direction string    `json:"direction,omitempty"`
	X         []float64 `json:"x,omitempty"`
	Y         []int     `json:"y,omitempty"`
	Text      []string  `json:"text,omitempty"`
	Mode      string    `json:"mode,omitempty"`
	Marker    *Marker   `json:"marker,omitempty"`
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Size   int      `json:"size,omitempty"`
}

type Layout struct {
	Title       Title `json:"title"`
	XAxis       *Axis `json:"xaxis,omitempty"`
	YAxis       *Axis `json:"yaxis,omitempty"`
	LegendTitle Title `json:"legend_title,omitempty"`
	// Annotations carries the empty-chart notice
	Annotations []Annotation `json:"annotations,omitempty"`
}

type Title struct {
	Text string `json:"text,omitempty"`
}

type Axis struct {
	Title    Title     `json:"title"`
	Range    []float64 `json:"range,omitempty"`
	TickVals []float64 `json:"tickvals,omitempty"`
}

type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

const noDataText = "No launches match this selection"

func noDataAnnotation() []Annotation {
	return []Annotation{{Text: noDataText, XRef: "paper", YRef: "paper", X: 0.5, Y: 0.5}}
}

// Figure converts the pie chart into a Plotly figure with sorting disabled
func (p PieChart) Figure() Figure {
	noSort := false
	trace := Trace{
		Type:      "pie",
		Labels:    make([]string, 0, len(p.Segments)),
		Values:    make([]float64, 0, len(p.Segments)),
		Sort:      &noSort,
		Direction: "clockwise",
		Marker:    &Marker{Colors: make([]string, 0, len(p.Segments))},
	}
	for _, s := range p.Segments {
		trace.Labels = append(trace.Labels, s.Label)
		trace.Values = append(trace.Values, s.Value)
		trace.Marker.Colors = append(trace.Marker.Colors, s.Color)
	}

	fig := Figure{
		Data:   []Trace{trace},
		Layout: Layout{Title: Title{Text: p.Title}},
	}
	if p.Empty || p.Total() == 0 {
		fig.Layout.Annotations = noDataAnnotation()
	}
	return fig
}

// Figure converts the scatter chart into a Plotly figure, one marker trace per booster category
func (s ScatterChart) Figure() Figure {
	traces := make([]Trace, 0, len(s.Categories))
	for i, category := range s.Categories {
		pts := s.PointsIn(category)
		trace := Trace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   category,
			X:      make([]float64, 0, len(pts)),
			Y:      make([]int, 0, len(pts)),
			Text:   make([]string, 0, len(pts)),
			Marker: &Marker{Color: PaletteColor(i), Size: 9},
		}
		for _, p := range pts {
			trace.X = append(trace.X, p.X)
			trace.Y = append(trace.Y, p.Y)
			trace.Text = append(trace.Text, p.Site)
		}
		traces = append(traces, trace)
	}

	fig := Figure{
		Data: traces,
		Layout: Layout{
			Title:       Title{Text: s.Title},
			XAxis:       &Axis{Title: Title{Text: "Payload Mass (kg)"}, Range: []float64{s.Range.Low, s.Range.High}},
			YAxis:       &Axis{Title: Title{Text: "class"}, Range: []float64{-0.25, 1.25}, TickVals: []float64{0, 1}},
			LegendTitle: Title{Text: "Booster Version Category"},
		},
	}
	if s.Empty {
		fig.Layout.Annotations = noDataAnnotation()
	}
	return fig
}
