package dto

// ChartData is the pre-aggregated bar chart dataset served by the analytics endpoint.
// Labels are categories; each dataset is one series of averages aligned with Labels.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is a single series in a ChartData payload.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
}
