package standards

// BlendConfig weights the sub-scores of the aggregated standards dimension.
// Negative weights are clamped to 0; a zero-sum config blends to 0.
type BlendConfig struct {
	OMOP       float64
	FHIR       float64
	Vocabulary float64
}

// DefaultBlendConfig returns the weighted-blend defaults.
func DefaultBlendConfig() BlendConfig {
	return BlendConfig{OMOP: 0.5, FHIR: 0.3, Vocabulary: 0.2}
}

// Aggregate folds the OMOP vocabulary score and the FHIR shape score into
// the single "standards" scorecard dimension as their unweighted mean.
func Aggregate(omop, fhir float64) float64 {
	return capScore((omop + fhir) / 2)
}

// AggregateBlend folds OMOP, FHIR and raw vocabulary-format sub-scores with
// configurable weights. The alternative to the plain mean for deployments
// that track the vocabulary-format signal separately.
func AggregateBlend(omop, fhir, vocabulary float64, cfg BlendConfig) float64 {
	wo, wf, wv := cfg.OMOP, cfg.FHIR, cfg.Vocabulary
	if wo < 0 {
		wo = 0
	}
	if wf < 0 {
		wf = 0
	}
	if wv < 0 {
		wv = 0
	}
	sum := wo + wf + wv
	if sum == 0 {
		return 0
	}
	return capScore((wo*omop + wf*fhir + wv*vocabulary) / sum)
}
