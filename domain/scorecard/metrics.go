package scorecard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"rwescore/domain/tabular"
)

// MetricsConfig defines how the quality dimensions are computed.
type MetricsConfig struct {
	// RequiredFields drive completeness and conformity.
	RequiredFields []string
	// DateColumn overrides date-column inference for timeliness.
	DateColumn string
	// ConsistencyKeys are the key columns whose absence is penalized.
	// When empty, the required fields present in the dataset are used.
	ConsistencyKeys []string
	// TimelinessWindowDays is the trailing window measured back from the
	// maximum observed date.
	TimelinessWindowDays int
}

// DefaultMetricsConfig returns sensible defaults for metric computation.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		TimelinessWindowDays: 14,
	}
}

const (
	// Consistency penalties: 0.1 per missing key column capped at 0.6,
	// plus twice the duplicate-row rate capped at 0.4.
	missingKeyPenalty    = 0.1
	missingKeyPenaltyCap = 0.6
	duplicatePenaltyCap  = 0.4
	duplicateRateFactor  = 2.0

	// neutralTimeliness is reported when no date column can be found or
	// parsed: timeliness cannot be judged, not proven poor.
	neutralTimeliness = 0.5
)

// Compute evaluates the four base governance dimensions for a dataset.
// An empty dataset short-circuits every dimension to 0. No input is ever
// rejected; unparseable values degrade to null contributions.
func Compute(ds tabular.Dataset, cfg MetricsConfig) Metrics {
	m := Metrics{Scores: make(map[Dimension]float64), N: ds.N()}
	if ds.IsEmpty() {
		for _, dim := range []Dimension{Completeness, Consistency, Timeliness, Conformity} {
			m.Scores[dim] = 0
		}
		return m
	}
	if cfg.TimelinessWindowDays <= 0 {
		cfg.TimelinessWindowDays = DefaultMetricsConfig().TimelinessWindowDays
	}

	m.Scores[Completeness] = completenessScore(ds, cfg.RequiredFields)
	m.Scores[Consistency] = consistencyScore(ds, consistencyKeys(ds, cfg))
	m.Scores[Timeliness] = timelinessScore(ds, cfg.DateColumn, cfg.TimelinessWindowDays)
	m.Scores[Conformity] = conformityScore(ds, cfg.RequiredFields)
	return m
}

// completenessScore is the mean non-null fraction across required fields.
// Required fields absent from the schema count as 0 so a schema cannot
// improve its score by omitting columns.
func completenessScore(ds tabular.Dataset, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	fractions := make([]float64, 0, len(required))
	for _, field := range required {
		if !ds.HasColumn(field) {
			fractions = append(fractions, 0)
			continue
		}
		fractions = append(fractions, ds.NonNullFraction(field))
	}
	mean, err := stats.Mean(fractions)
	if err != nil {
		return 0
	}
	return mean
}

// consistencyKeys resolves the key columns for the consistency check.
func consistencyKeys(ds tabular.Dataset, cfg MetricsConfig) []string {
	if len(cfg.ConsistencyKeys) > 0 {
		return cfg.ConsistencyKeys
	}
	var keys []string
	for _, field := range cfg.RequiredFields {
		if ds.HasColumn(field) {
			keys = append(keys, field)
		}
	}
	return keys
}

// consistencyScore penalizes missing key columns and duplicate rows,
// floored at 0.
func consistencyScore(ds tabular.Dataset, keyCols []string) float64 {
	penalty := 0.0
	missing := 0
	for _, col := range keyCols {
		if !ds.HasColumn(col) {
			missing++
		}
	}
	if missing > 0 {
		p := missingKeyPenalty * float64(missing)
		if p > missingKeyPenaltyCap {
			p = missingKeyPenaltyCap
		}
		penalty += p
	}

	dupPenalty := duplicateRateFactor * duplicateRate(ds)
	if dupPenalty > duplicatePenaltyCap {
		dupPenalty = duplicatePenaltyCap
	}
	penalty += dupPenalty

	score := 1.0 - penalty
	if score < 0 {
		return 0
	}
	return score
}

// duplicateRate is the fraction of rows that repeat an earlier row's full
// signature over the union schema.
func duplicateRate(ds tabular.Dataset) float64 {
	if ds.N() == 0 {
		return 0
	}
	cols := ds.Columns()
	sort.Strings(cols)

	seen := make(map[string]bool, ds.N())
	dups := 0
	var sb strings.Builder
	for _, row := range ds.Rows() {
		sb.Reset()
		for _, col := range cols {
			cell := tabular.Lookup(row, col)
			if s, ok := cell.String(); ok {
				sb.WriteString(s)
			} else {
				fmt.Fprintf(&sb, "%v", cell.Value)
			}
			sb.WriteByte('\x1f')
		}
		sig := sb.String()
		if seen[sig] {
			dups++
		}
		seen[sig] = true
	}
	return float64(dups) / float64(ds.N())
}

// timelinessScore is the share of rows whose date falls within the trailing
// window of the maximum observed date. Falls back to a neutral score when
// no date column exists or nothing parses. An explicitly configured column
// is authoritative: when it is missing the score is neutral, never rescored
// off an inferred column.
func timelinessScore(ds tabular.Dataset, dateCol string, windowDays int) float64 {
	if dateCol == "" {
		inferred, ok := tabular.InferDateColumn(ds)
		if !ok {
			return neutralTimeliness
		}
		dateCol = inferred
	} else if !ds.HasColumn(dateCol) {
		return neutralTimeliness
	}

	var dates []time.Time
	for _, cell := range ds.Column(dateCol) {
		if t, ok := cell.Time(); ok {
			dates = append(dates, t)
		}
	}
	if len(dates) == 0 {
		return neutralTimeliness
	}

	latest := dates[0]
	for _, t := range dates[1:] {
		if t.After(latest) {
			latest = t
		}
	}
	cutoff := latest.AddDate(0, 0, -windowDays)

	recent := 0
	for _, t := range dates {
		if !t.Before(cutoff) {
			recent++
		}
	}
	return float64(recent) / float64(len(dates))
}

// conformityScore is the fraction of required fields present as columns,
// independent of value completeness. An empty required list is vacuously
// conformant.
func conformityScore(ds tabular.Dataset, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	present := 0
	for _, field := range required {
		if ds.HasColumn(field) {
			present++
		}
	}
	return float64(present) / float64(len(required))
}
