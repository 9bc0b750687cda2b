// Package standards scores how closely a dataset resembles standardized
// health-data shapes: OMOP-style vocabulary readiness and FHIR-style
// resource shape. The scores are lightweight proxies, not validation
// against the real specifications.
package standards

import (
	"strings"

	"rwescore/domain/tabular"
)

// SourceKind identifies a known data source family. Each kind carries its
// own scoring heuristics; the kind is resolved once at input time instead
// of comparing source strings inside the scoring logic.
type SourceKind int

const (
	SourceGeneric SourceKind = iota
	SourceOpenFDA
	SourceCTGov
	SourceCDC
)

// String returns the canonical source name.
func (k SourceKind) String() string {
	switch k {
	case SourceOpenFDA:
		return "openfda"
	case SourceCTGov:
		return "ctgov"
	case SourceCDC:
		return "cdc"
	default:
		return "generic"
	}
}

// ParseSourceKind resolves a source identifier to a kind. Unknown or empty
// identifiers fall back to SourceGeneric rather than failing.
func ParseSourceKind(name string) SourceKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openfda":
		return SourceOpenFDA
	case "ctgov", "clinicaltrials", "clinicaltrials.gov":
		return SourceCTGov
	case "cdc":
		return SourceCDC
	default:
		return SourceGeneric
	}
}

// ResourceRecord is one FHIR-like resource: a mapping with arbitrary keys.
type ResourceRecord map[string]any

// SourceSummary describes a pre-aggregated source for shape scoring when
// only summary metadata survives aggregation (e.g. CDC surveillance feeds).
type SourceSummary struct {
	DateColumn  string   `json:"date_col"`
	GeoColumn   string   `json:"geo_col"`
	NumericCols []string `json:"num_cols"`
}

// geoColumns are the geography-like column names recognized when deriving
// a summary, in priority order.
var geoColumns = []string{"state", "occurcountry", "country", "location"}

// SummarizeSource derives a SourceSummary from a dataset for callers that
// only hold the aggregated table: the inferred date column, the first
// geography-like column, and every remaining column whose valid values are
// mostly numeric.
func SummarizeSource(ds tabular.Dataset) SourceSummary {
	var s SourceSummary
	if col, ok := tabular.InferDateColumn(ds); ok {
		s.DateColumn = col
	}
	for _, col := range geoColumns {
		if ds.HasColumn(col) {
			s.GeoColumn = col
			break
		}
	}
	for _, col := range ds.Columns() {
		if col == s.DateColumn || col == s.GeoColumn {
			continue
		}
		if numericShare(ds.Column(col)) >= 0.5 {
			s.NumericCols = append(s.NumericCols, col)
		}
	}
	return s
}

// numericShare is the fraction of valid cells that coerce to a number.
func numericShare(cells []tabular.Cell) float64 {
	total, numeric := 0, 0
	for _, cell := range cells {
		if !cell.Valid() {
			continue
		}
		total++
		if _, ok := cell.Float(); ok {
			numeric++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(numeric) / float64(total)
}
