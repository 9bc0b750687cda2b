package finance

import "math"

// TrialScenario describes one trial/program scenario. Read-only value
// object; probabilities and counts outside their ranges are clamped by the
// model, not rejected.
type TrialScenario struct {
	// Program characteristics
	BaselineDurationMonths float64 `json:"baseline_duration_months"`
	PatientsTreatment      int     `json:"patients_treatment"`
	PatientsControl        int     `json:"patients_control"`
	CostPerPatientUSD      float64 `json:"cost_per_patient_usd"`

	// Evidence acceptance probabilities
	ProbRegAcceptRWE  float64 `json:"prob_reg_accept_rwe"`
	ProbRegAcceptTrad float64 `json:"prob_reg_accept_trad"`

	// Financials
	DiscountRateAnnual float64 `json:"discount_rate_annual"`
	MonthlyBenefitUSD  float64 `json:"monthly_benefit_usd"`
}

// CostSavingsPolicy selects how RWE-driven cost savings are estimated.
type CostSavingsPolicy int

const (
	// FlatReduction applies a flat percentage cut to total patient cost
	// as a proxy for RWE-enabled operational efficiencies.
	FlatReduction CostSavingsPolicy = iota
	// ControlArmDelta compares a traditional two-arm trial against an
	// RWE-augmented design that replaces the control arm with an
	// external comparator.
	ControlArmDelta
)

func (p CostSavingsPolicy) String() string {
	if p == ControlArmDelta {
		return "control_arm_delta"
	}
	return "flat_reduction"
}

// ParseCostSavingsPolicy resolves a policy name, defaulting to the flat
// reduction for unknown names.
func ParseCostSavingsPolicy(name string) CostSavingsPolicy {
	if name == ControlArmDelta.String() {
		return ControlArmDelta
	}
	return FlatReduction
}

// LaunchValuePolicy selects the scale applied to the acceptance-probability
// uplift.
type LaunchValuePolicy int

const (
	// FixedLaunchValue scales uplift by a fixed program launch value.
	FixedLaunchValue LaunchValuePolicy = iota
	// AnnualizedBenefit scales uplift by one year of the scenario's
	// monthly benefit.
	AnnualizedBenefit
)

func (p LaunchValuePolicy) String() string {
	if p == AnnualizedBenefit {
		return "annualized_benefit"
	}
	return "fixed_launch_value"
}

// ParseLaunchValuePolicy resolves a policy name, defaulting to the fixed
// launch value for unknown names.
func ParseLaunchValuePolicy(name string) LaunchValuePolicy {
	if name == AnnualizedBenefit.String() {
		return AnnualizedBenefit
	}
	return FixedLaunchValue
}

const (
	// FixedLaunchValueUSD is the program-scale launch value applied per
	// unit of acceptance uplift under FixedLaunchValue. Tune per
	// portfolio.
	FixedLaunchValueUSD = 10_000_000.0

	// DefaultFlatSavingsRate is the flat percentage cut of patient-related
	// cost under FlatReduction.
	DefaultFlatSavingsRate = 0.15

	// DefaultInvestmentRate is the fraction of the RWE-path cost treated
	// as data acquisition and governance overhead.
	DefaultInvestmentRate = 0.10
)

// ModelConfig fixes the policy choices for one deployment of the ROI model.
// The divergent conventions are deliberate configuration, never mixed.
type ModelConfig struct {
	Convention      DiscountConvention
	CostPolicy      CostSavingsPolicy
	LaunchPolicy    LaunchValuePolicy
	FlatSavingsRate float64
	InvestmentRate  float64
}

// DefaultModelConfig mirrors the original executive model: simple period
// rate, flat 15% savings, fixed launch value, 10% investment overhead.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Convention:      SimplePeriodRate,
		CostPolicy:      FlatReduction,
		LaunchPolicy:    FixedLaunchValue,
		FlatSavingsRate: DefaultFlatSavingsRate,
		InvestmentRate:  DefaultInvestmentRate,
	}
}

// Model computes ROI summaries for trial scenarios under a fixed policy
// configuration. Stateless and safe for concurrent use.
type Model struct {
	cfg ModelConfig
}

// NewModel creates an ROI model, normalizing nonsensical config values
// (negative rates clamp to 0) rather than rejecting them.
func NewModel(cfg ModelConfig) *Model {
	if cfg.FlatSavingsRate < 0 {
		cfg.FlatSavingsRate = 0
	}
	if cfg.InvestmentRate < 0 {
		cfg.InvestmentRate = 0
	}
	return &Model{cfg: cfg}
}

// Config returns the active policy configuration.
func (m *Model) Config() ModelConfig {
	return m.cfg
}

// Summary carries the ROI components of one scenario. Map() renders the
// boundary form consumed by reporting.
type Summary struct {
	Savings           float64 `json:"savings"`
	DiscountedBenefit float64 `json:"discounted_benefit"`
	EVUplift          float64 `json:"ev_uplift"`
	TotalBenefit      float64 `json:"total_benefit"`
	TotalInvestment   float64 `json:"total_investment"`
	ROIMultiple       float64 `json:"roi_multiple"`

	CostPolicy   string `json:"cost_policy"`
	LaunchPolicy string `json:"launch_policy"`
	Convention   string `json:"discount_convention"`
}

// Map returns the summary in its flat numeric boundary form.
func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		"savings":            s.Savings,
		"discounted_benefit": s.DiscountedBenefit,
		"ev_uplift":          s.EVUplift,
		"total_benefit":      s.TotalBenefit,
		"total_investment":   s.TotalInvestment,
		"roi_multiple":       s.ROIMultiple,
	}
}

// Summarize computes the ROI components of using RWE for a scenario:
// direct cost savings, the discounted benefit of entering the market
// monthsSaved months earlier, and the expected-value uplift from a higher
// acceptance probability. Negative inputs clamp toward zero per field:
// monthsSaved to 0, patient counts to 0, costs and benefits to 0, and
// probabilities into [0,1].
func (m *Model) Summarize(ts TrialScenario, monthsSaved int) Summary {
	if monthsSaved < 0 {
		monthsSaved = 0
	}
	treatment := maxInt(0, ts.PatientsTreatment)
	control := maxInt(0, ts.PatientsControl)
	costPP := math.Max(0, ts.CostPerPatientUSD)
	monthly := math.Max(0, ts.MonthlyBenefitUSD)

	savings, rweCost := m.costSavings(treatment, control, costPP)

	// Bring monthsSaved months of benefit forward.
	cash := make([]float64, monthsSaved)
	for i := range cash {
		cash[i] = monthly
	}
	timeBenefit := PresentValue(cash, ts.DiscountRateAnnual, 12, m.cfg.Convention)

	uplift := clamp01(ts.ProbRegAcceptRWE) - clamp01(ts.ProbRegAcceptTrad)
	if uplift < 0 {
		uplift = 0
	}
	evUplift := uplift * m.launchValue(monthly)

	totalBenefit := savings + timeBenefit + evUplift
	totalInvestment := m.cfg.InvestmentRate * rweCost

	return Summary{
		Savings:           savings,
		DiscountedBenefit: timeBenefit,
		EVUplift:          evUplift,
		TotalBenefit:      totalBenefit,
		TotalInvestment:   totalInvestment,
		ROIMultiple:       (totalBenefit - totalInvestment) / math.Max(1, totalInvestment),
		CostPolicy:        m.cfg.CostPolicy.String(),
		LaunchPolicy:      m.cfg.LaunchPolicy.String(),
		Convention:        m.cfg.Convention.String(),
	}
}

// costSavings returns the estimated savings and the cost of the RWE path
// under the active policy.
func (m *Model) costSavings(treatment, control int, costPP float64) (savings, rweCost float64) {
	traditional := float64(treatment+control) * costPP
	switch m.cfg.CostPolicy {
	case ControlArmDelta:
		rweCost = float64(treatment) * costPP
		return traditional - rweCost, rweCost
	default:
		savings = m.cfg.FlatSavingsRate * traditional
		return savings, traditional - savings
	}
}

// launchValue returns the uplift scale under the active policy.
func (m *Model) launchValue(monthlyBenefit float64) float64 {
	if m.cfg.LaunchPolicy == AnnualizedBenefit {
		return 12 * monthlyBenefit
	}
	return FixedLaunchValueUSD
}

func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
