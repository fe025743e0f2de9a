package chart

import "github.com/noah-isme/teacher-dashboard/internal/dto"

const (
	// CanvasID is the fixed canvas region the analytics chart is bound to.
	CanvasID = "analytics-chart"

	Title      = "Class Performance by Subject"
	YAxisTitle = "Average Score"
)

// Config is a bar chart definition in the shape Chart.js accepts.
type Config struct {
	Type    string        `json:"type"`
	Data    dto.ChartData `json:"data"`
	Options Options       `json:"options"`
}

// Options holds the chart-wide display options.
type Options struct {
	Responsive bool    `json:"responsive"`
	Scales     Scales  `json:"scales"`
	Plugins    Plugins `json:"plugins"`
}

type Scales struct {
	Y Axis `json:"y"`
}

type Axis struct {
	BeginAtZero bool  `json:"beginAtZero"`
	Title       Label `json:"title"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
	Title  Label  `json:"title"`
}

type Legend struct {
	Position string `json:"position"`
}

type Label struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// BarConfig wraps the backend's dataset in the dashboard's fixed bar chart options.
// The data is passed through untouched.
func BarConfig(data dto.ChartData) Config {
	return Config{
		Type: "bar",
		Data: data,
		Options: Options{
			Responsive: true,
			Scales: Scales{
				Y: Axis{BeginAtZero: true, Title: Label{Display: true, Text: YAxisTitle}},
			},
			Plugins: Plugins{
				Legend: Legend{Position: "top"},
				Title:  Label{Display: true, Text: Title},
			},
		},
	}
}
