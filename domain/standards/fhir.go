package standards

import (
	"rwescore/domain/tabular"
)

// neutralShape is reported when no shape heuristic applies: shape cannot be
// judged, not proven wrong.
const neutralShape = 0.5

// shapeScorer scores FHIR resource shape for one source kind over a whole
// dataset.
type shapeScorer func(ds tabular.Dataset) float64

var shapeScorers = map[SourceKind]shapeScorer{
	SourceOpenFDA: scoreAdverseEventShape,
	SourceCTGov:   scoreResearchStudyShape,
}

// FHIRConformity returns the FHIR resource-shape score of a dataset in
// [0,1] for sources whose rows resemble one resource each. Surveillance
// sources carry their shape evidence in a SourceSummary, so a bare CDC
// dataset scores 0. Generic kinds report the neutral score; empty datasets
// score 0 for known kinds.
func FHIRConformity(ds tabular.Dataset, kind SourceKind) float64 {
	if kind == SourceCDC {
		return 0
	}
	scorer, ok := shapeScorers[kind]
	if !ok {
		return neutralShape
	}
	if ds.IsEmpty() {
		return 0
	}
	return scorer(ds)
}

// scoreAdverseEventShape checks AdverseEvent-like shape: report identifier,
// a receipt or receive date, and a seriousness flag.
func scoreAdverseEventShape(ds tabular.Dataset) float64 {
	hasID := ds.HasColumn("safetyreportid")
	hasDate := ds.HasColumn("receiptdate") || ds.HasColumn("receivedate")
	hasSerious := ds.HasColumn("serious")
	return capScore(0.4*boolScore(hasID) + 0.3*boolScore(hasDate) + 0.3*boolScore(hasSerious))
}

// scoreResearchStudyShape checks ResearchStudy-like shape: NCT identifier,
// status, phase, and a start or completion date.
func scoreResearchStudyShape(ds tabular.Dataset) float64 {
	hasNCT := ds.HasColumn("NCTId")
	hasStatus := ds.HasColumn("OverallStatus")
	hasPhase := ds.HasColumn("Phase")
	hasDate := ds.HasColumn("StartDate") || ds.HasColumn("CompletionDate")
	return capScore(0.3*boolScore(hasNCT) + 0.25*boolScore(hasStatus) +
		0.25*boolScore(hasPhase) + 0.20*boolScore(hasDate))
}

// FHIRShapeFromSummary scores Observation-like shape from pre-aggregated
// source metadata: a date column, a geography column, and at least one
// numeric column, as three independent weighted checks.
func FHIRShapeFromSummary(summary SourceSummary) float64 {
	hasDate := summary.DateColumn != ""
	hasGeo := summary.GeoColumn != ""
	hasNumeric := len(summary.NumericCols) > 0
	return capScore(0.4*boolScore(hasDate) + 0.3*boolScore(hasGeo) + 0.3*boolScore(hasNumeric))
}

// FHIRShapeFromRecords scores a list of individual resource records: the
// fraction of records carrying every expected top-level field present and
// non-null. An empty record list or an empty field list scores 0.
func FHIRShapeFromRecords(records []ResourceRecord, requiredFields []string) float64 {
	if len(records) == 0 || len(requiredFields) == 0 {
		return 0
	}
	complete := 0
	for _, rec := range records {
		if recordHasAll(rec, requiredFields) {
			complete++
		}
	}
	return float64(complete) / float64(len(records))
}

func recordHasAll(rec ResourceRecord, fields []string) bool {
	for _, field := range fields {
		if !tabular.Lookup(tabular.Row(rec), field).Valid() {
			return false
		}
	}
	return true
}
