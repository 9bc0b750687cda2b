package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 0.30, cfg.Scorecard.Weights["completeness"], 1e-9)
	assert.InDelta(t, 0.15, cfg.Scorecard.Weights["standards"], 1e-9)
	assert.Equal(t, 14, cfg.Scorecard.TimelinessWindowDays)
	assert.False(t, cfg.Standards.UseBlend)
	assert.Equal(t, "flat_reduction", cfg.Finance.CostPolicy)
	assert.Equal(t, "simple_period_rate", cfg.Finance.DiscountConvention)
	assert.InDelta(t, 0.10, cfg.Finance.InvestmentRate, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("RWESCORE_FINANCE_COST_POLICY", "control_arm_delta")
	t.Setenv("RWESCORE_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "control_arm_delta", cfg.Finance.CostPolicy)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	chdirTemp(t)
	yaml := []byte("scorecard:\n  timeliness_window_days: 30\nstandards:\n  use_blend: true\n")
	require.NoError(t, os.WriteFile("rwescore.yaml", yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Scorecard.TimelinessWindowDays)
	assert.True(t, cfg.Standards.UseBlend)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("rwescore.yaml", []byte(":::not yaml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadNormalizesOutOfRangeValues(t *testing.T) {
	chdirTemp(t)
	yaml := []byte("scorecard:\n  timeliness_window_days: -5\nfinance:\n  investment_rate: -0.2\n")
	require.NoError(t, os.WriteFile(filepath.Join(".", "rwescore.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Scorecard.TimelinessWindowDays)
	assert.Equal(t, 0.0, cfg.Finance.InvestmentRate)
}
