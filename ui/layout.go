package ui

import (
	"fmt"
	"html/template"

	"spacexdash/domain/launch"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Widget IDs the page script binds to
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieGraphID      = "success-pie"
	ScatterGraphID  = "success-payload-scatter-chart"
)

// DashboardTitle is the page heading
const DashboardTitle = "SpaceX Launch Records Dashboard"

// WidgetKind names a widget type in the layout tree
type WidgetKind string

const (
	KindHeading     WidgetKind = "heading"
	KindCaption     WidgetKind = "caption"
	KindDropdown    WidgetKind = "dropdown"
	KindBreak       WidgetKind = "break"
	KindGraph       WidgetKind = "graph"
	KindParagraph   WidgetKind = "paragraph"
	KindRangeSlider WidgetKind = "range_slider"
)

// Widget is one node of the dashboard layout
type Widget struct {
	ID       string            `json:"id,omitempty"`
	Kind     WidgetKind        `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Dropdown *DropdownConfig   `json:"dropdown,omitempty"`
	Slider   *SliderConfig     `json:"slider,omitempty"`
}

type DropdownConfig struct {
	Options     []launch.SiteOption `json:"options"`
	Value       string              `json:"value"`
	Placeholder string              `json:"placeholder"`
	Searchable  bool                `json:"searchable"`
}

type SliderConfig struct {
	Min   int          `json:"min"`
	Max   int          `json:"max"`
	Step  int          `json:"step"`
	Value [2]int       `json:"value"`
	Marks []SliderMark `json:"marks"`
}

type SliderMark struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Layout is the static widget tree of the dashboard
type Layout struct {
	Title   string   `json:"title"`
	Widgets []Widget `json:"widgets"`
	// Intro is rendered markdown shown under the heading
	Intro template.HTML `json:"-"`
}

// Widget returns the widget with the given ID
func (l Layout) Widget(id string) (Widget, bool) {
	for _, w := range l.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

// BuildLayout assembles the dashboard widgets. The caption is the only part that depends on table.
func BuildLayout(table *launch.Table) Layout {
	return Layout{
		Title: DashboardTitle,
		Widgets: []Widget{
			{
				Kind:  KindHeading,
				Text:  DashboardTitle,
				Style: map[string]string{"text-align": "center", "color": "#503D36", "font-size": "40px"},
			},
			{Kind: KindCaption, Text: datasetCaption(table)},
			{
				ID:   SiteDropdownID,
				Kind: KindDropdown,
				Dropdown: &DropdownConfig{
					Options:     launch.SiteOptions,
					Value:       launch.AllSites,
					Placeholder: "Select a Launch Site",
					Searchable:  true,
				},
			},
			{Kind: KindBreak},
			{ID: PieGraphID, Kind: KindGraph},
			{Kind: KindBreak},
			{Kind: KindParagraph, Text: "Payload range (Kg):"},
			{
				ID:   PayloadSliderID,
				Kind: KindRangeSlider,
				Slider: &SliderConfig{
					Min:   launch.SliderMin,
					Max:   launch.SliderMax,
					Step:  launch.SliderStep,
					Value: [2]int{launch.SliderMin, launch.SliderMax},
					Marks: sliderMarks(),
				},
			},
			{ID: ScatterGraphID, Kind: KindGraph},
		},
	}
}

func sliderMarks() []SliderMark {
	marks := make([]SliderMark, 0, launch.SliderMax/launch.SliderStep+1)
	for v := launch.SliderMin; v <= launch.SliderMax; v += launch.SliderStep {
		marks = append(marks, SliderMark{Value: v, Label: fmt.Sprintf("%d", v)})
	}
	return marks
}

func datasetCaption(table *launch.Table) string {
	if table.Len() == 0 {
		return "No launch records loaded"
	}
	return fmt.Sprintf("%d launches, payload mass from %.0f kg to %.0f kg",
		table.Len(), table.MinPayload, table.MaxPayload)
}

// RenderMarkdown converts the intro markdown into HTML for the page
func RenderMarkdown(md []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return template.HTML(markdown.ToHTML(md, p, renderer))
}
