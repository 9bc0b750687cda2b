// Package scorecard computes data-governance quality metrics over tabular
// datasets and aggregates them into a single weighted overall score.
package scorecard

// Dimension names one axis of the governance scorecard.
type Dimension string

const (
	Completeness Dimension = "completeness"
	Consistency  Dimension = "consistency"
	Timeliness   Dimension = "timeliness"
	Conformity   Dimension = "conformity"
	Standards    Dimension = "standards"
)

// Dimensions lists the scorecard axes in canonical order.
var Dimensions = []Dimension{Completeness, Consistency, Timeliness, Conformity, Standards}

// WeightConfig maps a dimension to a non-negative weight. Weights need not
// sum to 1; the aggregator normalizes. Negative weights are treated as 0
// rather than rejected, consistent with an advisory scoring tool.
type WeightConfig map[Dimension]float64

// DefaultWeights returns the canonical governance weights.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Completeness: 0.30,
		Consistency:  0.20,
		Timeliness:   0.20,
		Conformity:   0.15,
		Standards:    0.15,
	}
}

// Sum returns the total of all non-negative weights.
func (w WeightConfig) Sum() float64 {
	total := 0.0
	for _, v := range w {
		if v > 0 {
			total += v
		}
	}
	return total
}

// Normalized returns a copy with negatives clamped to 0 and weights scaled
// to sum to 1. A zero-sum config normalizes to all-zero weights.
func (w WeightConfig) Normalized() WeightConfig {
	out := make(WeightConfig, len(w))
	sum := w.Sum()
	for k, v := range w {
		if v < 0 || sum == 0 {
			out[k] = 0
			continue
		}
		out[k] = v / sum
	}
	return out
}
