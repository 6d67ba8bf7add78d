package launch

import (
	"math"

	"spacexdash/internal/errors"
)

// Payload slider bounds in kilograms
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// PayloadRange is the slider selection. Bounds are exclusive when filtering.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// FullRange returns the slider's default selection
func FullRange() PayloadRange {
	return PayloadRange{Low: SliderMin, High: SliderMax}
}

// NewPayloadRange validates low <= high and that both lie within the slider bounds
func NewPayloadRange(low, high float64) (PayloadRange, error) {
	if math.IsNaN(low) || math.IsNaN(high) {
		return PayloadRange{}, errors.InvalidInput("payload range bounds must be numbers")
	}
	if low < SliderMin || high > SliderMax {
		return PayloadRange{}, errors.Newf(errors.CodeInvalidInput,
			"payload range [%g, %g] outside [%d, %d]", low, high, SliderMin, SliderMax)
	}
	if low > high {
		return PayloadRange{}, errors.Newf(errors.CodeInvalidInput,
			"payload range low %g exceeds high %g", low, high)
	}
	return PayloadRange{Low: low, High: high}, nil
}

// Contains reports whether low < kg < high. Both bounds are excluded.
func (r PayloadRange) Contains(kg float64) bool {
	return kg > r.Low && kg < r.High
}

// Selection is the dashboard state held by the page and sent with every request
type Selection struct {
	Site  string       `json:"site"`
	Range PayloadRange `json:"payload_range"`
}

// DefaultSelection is the state the page starts in
func DefaultSelection() Selection {
	return Selection{Site: AllSites, Range: FullRange()}
}
