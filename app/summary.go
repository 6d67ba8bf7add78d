package app

import (
	"math"

	"spacexdash/domain/chart"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the launches behind a scatter chart.
// Statistics that are undefined for the selection are nil.
type Summary struct {
	Points        int      `json:"points"`
	Successes     int      `json:"successes"`
	SuccessRate   *float64 `json:"success_rate"`
	MeanPayload   *float64 `json:"mean_payload_kg"`
	MedianPayload *float64 `json:"median_payload_kg"`
	// Correlation is Pearson's r between payload mass and landing outcome
	Correlation *float64 `json:"payload_outcome_correlation"`
}

// Summarize computes selection statistics from the scatter points
func Summarize(sc chart.ScatterChart) Summary {
	summary := Summary{Points: len(sc.Points)}
	if summary.Points == 0 {
		return summary
	}

	payloads := make([]float64, 0, len(sc.Points))
	outcomes := make([]float64, 0, len(sc.Points))
	for _, p := range sc.Points {
		payloads = append(payloads, p.X)
		outcomes = append(outcomes, float64(p.Y))
		summary.Successes += p.Y
	}

	summary.SuccessRate = defined(float64(summary.Successes) / float64(summary.Points))
	if mean, err := stats.Mean(payloads); err == nil {
		summary.MeanPayload = defined(mean)
	}
	if median, err := stats.Median(payloads); err == nil {
		summary.MedianPayload = defined(median)
	}
	if summary.Points >= 2 {
		summary.Correlation = defined(stat.Correlation(payloads, outcomes, nil))
	}
	return summary
}

// defined returns nil for NaN and infinities so the JSON stays valid
func defined(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
