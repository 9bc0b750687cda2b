package scorecard

import (
	"gonum.org/v1/gonum/stat"
)

// Metrics holds one score per scorecard dimension plus the row count of the
// dataset that produced them. Produced fresh per evaluation; no shared
// mutable state.
type Metrics struct {
	Scores map[Dimension]float64 `json:"scores"`
	N      int                   `json:"n"`
}

// Get returns the score for a dimension, defaulting missing dimensions to 0.
func (m Metrics) Get(dim Dimension) float64 {
	return m.Scores[dim]
}

// Overall computes the weighted overall governance score in [0,1].
// Weights are normalized to sum to 1 (the weighted mean is exactly the
// normalized dot product), missing dimensions contribute 0, and a zero-sum
// weight config yields 0. Pure and deterministic.
func Overall(m Metrics, weights WeightConfig) float64 {
	if weights == nil {
		weights = DefaultWeights()
	}
	vals := make([]float64, 0, len(Dimensions))
	ws := make([]float64, 0, len(Dimensions))
	for _, dim := range Dimensions {
		w := weights[dim]
		if w < 0 {
			w = 0
		}
		vals = append(vals, m.Get(dim))
		ws = append(ws, w)
	}
	if floatsSum(ws) == 0 {
		return 0
	}
	return stat.Mean(vals, ws)
}

func floatsSum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
