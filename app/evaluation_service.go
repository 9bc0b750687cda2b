package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"rwescore/domain/core"
	"rwescore/domain/finance"
	"rwescore/domain/scorecard"
	"rwescore/domain/standards"
	"rwescore/domain/tabular"
	"rwescore/internal/config"
)

// EvaluationService orchestrates a full governance evaluation of one
// dataset: quality metrics, standards conformity, and the weighted overall
// score. Every call is a single-shot transformation over immutable inputs;
// callers may evaluate many datasets concurrently.
type EvaluationService struct {
	logger     *logrus.Logger
	weights    scorecard.WeightConfig
	metricsCfg scorecard.MetricsConfig
	blend      standards.BlendConfig
	useBlend   bool
	roiModel   *finance.Model
}

// EvaluationRequest defines the inputs for one dataset evaluation.
type EvaluationRequest struct {
	Dataset tabular.Dataset
	Source  standards.SourceKind

	// Optional auxiliary inputs for standards scoring.
	Extras  standards.Extras
	Records []standards.ResourceRecord
	// RecordFields are the expected top-level fields when Records are
	// supplied.
	RecordFields []string
	Summary      *standards.SourceSummary
}

// Evaluation is the result of scoring one dataset.
type Evaluation struct {
	ID           core.EvaluationID `json:"id"`
	Source       string            `json:"source"`
	Metrics      scorecard.Metrics `json:"metrics"`
	OMOPScore    float64           `json:"omop_score"`
	FHIRScore    float64           `json:"fhir_score"`
	OverallScore float64           `json:"overall_score"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewEvaluationService builds a service from configuration. A nil logger
// falls back to the logrus standard logger.
func NewEvaluationService(cfg *config.Config, logger *logrus.Logger) *EvaluationService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	weights := scorecard.DefaultWeights()
	metricsCfg := scorecard.DefaultMetricsConfig()
	blend := standards.DefaultBlendConfig()
	useBlend := false
	roiCfg := finance.DefaultModelConfig()

	if cfg != nil {
		for name, w := range cfg.Scorecard.Weights {
			weights[scorecard.Dimension(name)] = w
		}
		metricsCfg = scorecard.MetricsConfig{
			RequiredFields:       cfg.Scorecard.RequiredFields,
			DateColumn:           cfg.Scorecard.DateColumn,
			ConsistencyKeys:      cfg.Scorecard.ConsistencyKeys,
			TimelinessWindowDays: cfg.Scorecard.TimelinessWindowDays,
		}
		blend = standards.BlendConfig{
			OMOP:       cfg.Standards.BlendOMOP,
			FHIR:       cfg.Standards.BlendFHIR,
			Vocabulary: cfg.Standards.BlendVocab,
		}
		useBlend = cfg.Standards.UseBlend
		roiCfg = finance.ModelConfig{
			Convention:      finance.ParseDiscountConvention(cfg.Finance.DiscountConvention),
			CostPolicy:      finance.ParseCostSavingsPolicy(cfg.Finance.CostPolicy),
			LaunchPolicy:    finance.ParseLaunchValuePolicy(cfg.Finance.LaunchPolicy),
			FlatSavingsRate: cfg.Finance.FlatSavingsRate,
			InvestmentRate:  cfg.Finance.InvestmentRate,
		}
	}

	return &EvaluationService{
		logger:     logger,
		weights:    weights,
		metricsCfg: metricsCfg,
		blend:      blend,
		useBlend:   useBlend,
		roiModel:   finance.NewModel(roiCfg),
	}
}

// WithRequiredFields returns a copy of the service scoring against the
// given required fields. Useful when one deployment scores datasets with
// different expected schemas.
func (s *EvaluationService) WithRequiredFields(fields []string) *EvaluationService {
	clone := *s
	clone.metricsCfg.RequiredFields = fields
	return &clone
}

// Evaluate scores one dataset end to end. It never fails: malformed values
// degrade inside the scorers and empty inputs produce well-defined zeros.
func (s *EvaluationService) Evaluate(req EvaluationRequest) Evaluation {
	ev := Evaluation{
		ID:        core.EvaluationID(core.NewID()),
		Source:    req.Source.String(),
		CreatedAt: time.Now(),
	}

	ev.Metrics = scorecard.Compute(req.Dataset, s.metricsCfg)

	ev.OMOPScore = standards.OMOPConformity(req.Dataset, req.Source, req.Extras)
	ev.FHIRScore = s.fhirScore(req)

	if s.useBlend {
		vocab := standards.VocabularyFormatScore(req.Dataset)
		ev.Metrics.Scores[scorecard.Standards] = standards.AggregateBlend(ev.OMOPScore, ev.FHIRScore, vocab, s.blend)
	} else {
		ev.Metrics.Scores[scorecard.Standards] = standards.Aggregate(ev.OMOPScore, ev.FHIRScore)
	}

	ev.OverallScore = scorecard.Overall(ev.Metrics, s.weights)

	s.logger.WithFields(logrus.Fields{
		"evaluation_id": ev.ID.String(),
		"source":        ev.Source,
		"rows":          ev.Metrics.N,
		"overall_score": ev.OverallScore,
	}).Info("Completed governance evaluation")

	return ev
}

// fhirScore picks the shape-scoring input: individual resource records when
// supplied, a pre-aggregated summary when that is all that survives, and
// the dataset-level heuristic otherwise.
func (s *EvaluationService) fhirScore(req EvaluationRequest) float64 {
	if len(req.Records) > 0 {
		return standards.FHIRShapeFromRecords(req.Records, req.RecordFields)
	}
	if req.Summary != nil {
		return standards.FHIRShapeFromSummary(*req.Summary)
	}
	return standards.FHIRConformity(req.Dataset, req.Source)
}

// ScenarioValue computes the ROI summary for a trial scenario under the
// configured financial policies.
func (s *EvaluationService) ScenarioValue(ts finance.TrialScenario, monthsSaved int) finance.Summary {
	summary := s.roiModel.Summarize(ts, monthsSaved)

	s.logger.WithFields(logrus.Fields{
		"months_saved":  monthsSaved,
		"cost_policy":   summary.CostPolicy,
		"total_benefit": summary.TotalBenefit,
		"roi_multiple":  summary.ROIMultiple,
	}).Info("Completed scenario valuation")

	return summary
}
