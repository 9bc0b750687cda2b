// Package finance values RWE-enabled trial programs: present-value
// discounting of periodic cashflows and an illustrative ROI model built on
// top of it. All functions are pure; malformed inputs clamp instead of
// failing, since this is decision support rather than strict accounting.
package finance

import "math"

// DiscountConvention selects how an annual rate is converted to a
// per-period rate. The two conventions are distinct policies and are never
// mixed silently; callers pick one explicitly.
type DiscountConvention int

const (
	// SimplePeriodRate divides the annual rate by the number of periods
	// per year and discounts period t by (1+pr)^t.
	SimplePeriodRate DiscountConvention = iota
	// EffectiveMonthlyRate converts the annual rate to the equivalent
	// compounding monthly rate (1+annual)^(1/12)-1 before discounting.
	EffectiveMonthlyRate
)

// String returns the convention name.
func (c DiscountConvention) String() string {
	if c == EffectiveMonthlyRate {
		return "effective_monthly_rate"
	}
	return "simple_period_rate"
}

// ParseDiscountConvention resolves a convention name, falling back to the
// simple-period-rate default for unknown names.
func ParseDiscountConvention(name string) DiscountConvention {
	if name == EffectiveMonthlyRate.String() {
		return EffectiveMonthlyRate
	}
	return SimplePeriodRate
}

// PresentValue discounts a sequence of periodic amounts to present value.
// Amounts are indexed from period 1. Negative rates clamp to 0, and a zero
// rate returns the plain sum so no division edge cases arise. Pure; never
// fails.
func PresentValue(amounts []float64, annualRate float64, periodsPerYear int, conv DiscountConvention) float64 {
	rate := math.Max(0, annualRate)
	if rate == 0 || len(amounts) == 0 {
		total := 0.0
		for _, a := range amounts {
			total += a
		}
		return total
	}
	if periodsPerYear <= 0 {
		periodsPerYear = 12
	}

	var periodRate float64
	switch conv {
	case EffectiveMonthlyRate:
		periodRate = math.Pow(1+rate, 1.0/12.0) - 1
	default:
		periodRate = rate / float64(periodsPerYear)
	}

	total := 0.0
	for i, amount := range amounts {
		t := float64(i + 1)
		total += amount / math.Pow(1+periodRate, t)
	}
	return total
}
