// Package export serializes evaluation results for consumption outside the
// process. All numeric output is JSON-safe: NaN and infinities never cross
// the boundary.
package export

import (
	"encoding/json"
	"math"
	"time"

	"rwescore/app"
	"rwescore/domain/core"
	"rwescore/domain/finance"
	"rwescore/domain/scorecard"
)

// JSONSafe recursively converts a value into a form json.Marshal accepts
// from any encoder. Non-finite floats become nil, times render as RFC 3339,
// and IDs flatten to strings.
func JSONSafe(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		return JSONSafe(float64(x))
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case core.ID:
		return x.String()
	case core.EvaluationID:
		return x.String()
	case core.ScenarioID:
		return x.String()
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = JSONSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = JSONSafe(val)
		}
		return out
	case []float64:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = JSONSafe(val)
		}
		return out
	default:
		return x
	}
}

// MetricsMap flattens quality metrics into a JSON-safe map keyed by
// dimension name.
func MetricsMap(m scorecard.Metrics) map[string]any {
	out := map[string]any{"n": m.N}
	for _, dim := range scorecard.Dimensions {
		out[string(dim)] = JSONSafe(m.Get(dim))
	}
	return out
}

// EvaluationMap flattens a full evaluation report into a JSON-safe map.
func EvaluationMap(ev app.Evaluation) map[string]any {
	return map[string]any{
		"id":            ev.ID.String(),
		"source":        ev.Source,
		"metrics":       MetricsMap(ev.Metrics),
		"omop_score":    JSONSafe(ev.OMOPScore),
		"fhir_score":    JSONSafe(ev.FHIRScore),
		"overall_score": JSONSafe(ev.OverallScore),
		"created_at":    JSONSafe(ev.CreatedAt),
	}
}

// SummaryMap flattens an ROI summary into a JSON-safe map.
func SummaryMap(s finance.Summary) map[string]any {
	out := make(map[string]any, 8)
	for k, v := range s.Map() {
		out[k] = JSONSafe(v)
	}
	out["cost_policy"] = s.CostPolicy
	out["launch_policy"] = s.LaunchPolicy
	out["discount_convention"] = s.Convention
	return out
}

// Marshal renders any value as indented JSON after sanitizing it.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(JSONSafe(v), "", "  ")
}
