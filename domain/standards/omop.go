package standards

import (
	"rwescore/domain/tabular"
)

// Extras carries auxiliary tables some vocabulary heuristics need, such as
// the exploded reactions table for adverse-event sources.
type Extras struct {
	Reactions tabular.Dataset
}

// vocabularyScorer scores OMOP vocabulary readiness for one source kind.
type vocabularyScorer func(ds tabular.Dataset, extras Extras) float64

// vocabularyScorers binds each source kind to its heuristic. Kinds without
// a dedicated heuristic use the generic code-shape blend.
var vocabularyScorers = map[SourceKind]vocabularyScorer{
	SourceOpenFDA: scoreOpenFDAVocabulary,
	SourceCTGov:   scoreCTGovVocabulary,
}

// OMOPConformity returns the OMOP vocabulary readiness of a dataset in
// [0,1]. The heuristic is selected by source kind; unknown kinds fall back
// to the generic vocabulary-format blend. An empty dataset scores 0.
func OMOPConformity(ds tabular.Dataset, kind SourceKind, extras Extras) float64 {
	if ds.IsEmpty() {
		return 0
	}
	if scorer, ok := vocabularyScorers[kind]; ok {
		return scorer(ds, extras)
	}
	return VocabularyFormatScore(ds)
}

// scoreOpenFDAVocabulary weights standardized reaction-term presence (the
// MedDRA preferred-term column of the reactions table), country-code share,
// and a reserved slot for external drug-vocabulary mapping.
func scoreOpenFDAVocabulary(ds tabular.Dataset, extras Extras) float64 {
	meddraPresent := extras.Reactions.HasColumn("reactionmeddrapt") &&
		extras.Reactions.NonNullFraction("reactionmeddrapt") > 0

	isoShare := 0.0
	if ds.HasColumn("occurcountry") {
		isoShare = CountryShare(ds.Column("occurcountry"))
	}

	// RxNorm-style drug name mapping stays 0 until an external vocabulary
	// service is wired in.
	rxShare := 0.0

	return capScore(0.5*boolScore(meddraPresent) + 0.3*isoShare + 0.2*rxShare)
}

// scoreCTGovVocabulary weights condition-code share (usually low: registry
// conditions are free text) and the presence of a study phase field.
func scoreCTGovVocabulary(ds tabular.Dataset, _ Extras) float64 {
	condShare := 0.0
	if ds.HasColumn("Condition") {
		condShare = ICD10Share(ds.Column("Condition"))
	}
	phasePresent := ds.HasColumn("Phase")
	return capScore(0.7*condShare + 0.3*boolScore(phasePresent))
}

// minimalTableSchemas lists the minimal column set per logical OMOP table
// used by the structural conformity check.
var minimalTableSchemas = map[string][]string{
	"person":               {"person_id", "gender_concept_id", "year_of_birth"},
	"condition_occurrence": {"person_id", "condition_concept_id", "condition_start_date"},
	"drug_exposure":        {"person_id", "drug_concept_id", "drug_exposure_start_date"},
}

// StructuralConformity checks presence and non-null coverage of the minimal
// column list per logical table, blending name coverage and value coverage
// 50/50. Tables without a known minimal schema are skipped; nothing known
// scores 0.
func StructuralConformity(tables map[string]tabular.Dataset) float64 {
	total, count := 0.0, 0
	for name, ds := range tables {
		schema, ok := minimalTableSchemas[name]
		if !ok {
			continue
		}
		count++
		if ds.IsEmpty() {
			continue
		}
		present := 0
		filled := 0.0
		for _, col := range schema {
			if ds.HasColumn(col) {
				present++
				filled += ds.NonNullFraction(col)
			}
		}
		nameCoverage := float64(present) / float64(len(schema))
		valueCoverage := filled / float64(len(schema))
		total += 0.5*nameCoverage + 0.5*valueCoverage
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
