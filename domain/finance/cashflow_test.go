package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresentValueZeroRateIsPlainSum(t *testing.T) {
	amounts := []float64{100, 100, 100}
	assert.Equal(t, 300.0, PresentValue(amounts, 0, 12, SimplePeriodRate))
}

func TestPresentValueEmptyAmounts(t *testing.T) {
	assert.Equal(t, 0.0, PresentValue(nil, 0.12, 12, SimplePeriodRate))
}

func TestPresentValueSimplePeriodRate(t *testing.T) {
	// 6 months of 100 at 12% annual, 1% per month.
	amounts := []float64{100, 100, 100, 100, 100, 100}
	pv := PresentValue(amounts, 0.12, 12, SimplePeriodRate)
	assert.InDelta(t, 579.5476, pv, 0.001)
}

func TestPresentValueConventionsDiffer(t *testing.T) {
	amounts := []float64{100, 100, 100, 100, 100, 100}
	simple := PresentValue(amounts, 0.12, 12, SimplePeriodRate)
	effective := PresentValue(amounts, 0.12, 12, EffectiveMonthlyRate)

	// (1.12)^(1/12)-1 < 0.12/12, so effective discounting is gentler.
	assert.Greater(t, effective, simple)
	assert.Less(t, effective, 600.0)
	assert.Less(t, simple, 600.0)
}

func TestPresentValueNegativeRateClampsToZero(t *testing.T) {
	amounts := []float64{100, 100}
	assert.Equal(t, 200.0, PresentValue(amounts, -0.5, 12, SimplePeriodRate))
}

func TestPresentValueBadPeriodsDefaultsToMonthly(t *testing.T) {
	amounts := []float64{100}
	want := PresentValue(amounts, 0.12, 12, SimplePeriodRate)
	assert.Equal(t, want, PresentValue(amounts, 0.12, 0, SimplePeriodRate))
	assert.Equal(t, want, PresentValue(amounts, 0.12, -3, SimplePeriodRate))
}

func TestParseDiscountConvention(t *testing.T) {
	assert.Equal(t, EffectiveMonthlyRate, ParseDiscountConvention("effective_monthly_rate"))
	assert.Equal(t, SimplePeriodRate, ParseDiscountConvention("simple_period_rate"))
	assert.Equal(t, SimplePeriodRate, ParseDiscountConvention("nonsense"))
}
