package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"rwescore/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Scorecard ScorecardConfig `mapstructure:"scorecard"`
	Standards StandardsConfig `mapstructure:"standards"`
	Finance   FinanceConfig   `mapstructure:"finance"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ScorecardConfig holds quality-metric settings
type ScorecardConfig struct {
	Weights              map[string]float64 `mapstructure:"weights"`
	RequiredFields       []string           `mapstructure:"required_fields"`
	ConsistencyKeys      []string           `mapstructure:"consistency_keys"`
	DateColumn           string             `mapstructure:"date_column"`
	TimelinessWindowDays int                `mapstructure:"timeliness_window_days"`
}

// StandardsConfig holds standards-conformity settings
type StandardsConfig struct {
	// UseBlend switches the standards aggregate from the plain OMOP/FHIR
	// mean to the weighted OMOP/FHIR/vocabulary blend.
	UseBlend   bool    `mapstructure:"use_blend"`
	BlendOMOP  float64 `mapstructure:"blend_omop"`
	BlendFHIR  float64 `mapstructure:"blend_fhir"`
	BlendVocab float64 `mapstructure:"blend_vocab"`
}

// FinanceConfig holds ROI model policy settings
type FinanceConfig struct {
	DiscountConvention string  `mapstructure:"discount_convention"`
	CostPolicy         string  `mapstructure:"cost_policy"`
	LaunchPolicy       string  `mapstructure:"launch_policy"`
	FlatSavingsRate    float64 `mapstructure:"flat_savings_rate"`
	InvestmentRate     float64 `mapstructure:"investment_rate"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional yaml file, the environment
// (prefix RWESCORE_) and a .env file when present. Out-of-range values are
// normalized to their defaults rather than rejected: this is an advisory
// scoring tool, not a validator.
func Load() (*Config, error) {
	// Best-effort .env; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("rwescore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("RWESCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		// Config file not found; defaults and environment apply.
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.ConfigInvalid("failed to unmarshal configuration: " + err.Error())
	}

	config.normalize()
	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Scorecard defaults (canonical governance weights)
	v.SetDefault("scorecard.weights", map[string]float64{
		"completeness": 0.30,
		"consistency":  0.20,
		"timeliness":   0.20,
		"conformity":   0.15,
		"standards":    0.15,
	})
	v.SetDefault("scorecard.timeliness_window_days", 14)

	// Standards defaults
	v.SetDefault("standards.use_blend", false)
	v.SetDefault("standards.blend_omop", 0.5)
	v.SetDefault("standards.blend_fhir", 0.3)
	v.SetDefault("standards.blend_vocab", 0.2)

	// Finance defaults (mirrors the original executive model)
	v.SetDefault("finance.discount_convention", "simple_period_rate")
	v.SetDefault("finance.cost_policy", "flat_reduction")
	v.SetDefault("finance.launch_policy", "fixed_launch_value")
	v.SetDefault("finance.flat_savings_rate", 0.15)
	v.SetDefault("finance.investment_rate", 0.10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// normalize clamps out-of-range values to usable defaults. Negative weights
// and rates become 0; the aggregator handles weight renormalization.
func (c *Config) normalize() {
	for k, w := range c.Scorecard.Weights {
		if w < 0 {
			c.Scorecard.Weights[k] = 0
		}
	}
	if c.Scorecard.TimelinessWindowDays <= 0 {
		c.Scorecard.TimelinessWindowDays = 14
	}
	if c.Standards.BlendOMOP < 0 {
		c.Standards.BlendOMOP = 0
	}
	if c.Standards.BlendFHIR < 0 {
		c.Standards.BlendFHIR = 0
	}
	if c.Standards.BlendVocab < 0 {
		c.Standards.BlendVocab = 0
	}
	if c.Finance.FlatSavingsRate < 0 {
		c.Finance.FlatSavingsRate = 0
	}
	if c.Finance.InvestmentRate < 0 {
		c.Finance.InvestmentRate = 0
	}
}
