package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment overrides, e.g. SCORECARD_STORE_DRIVER.
const EnvPrefix = "SCORECARD"

type Config struct {
	Server      ServerConfig                      `mapstructure:"server"`
	Log         LogConfig                         `mapstructure:"log"`
	Store       StoreConfig                       `mapstructure:"store"`
	Rules       recommendation.RuleSettings       `mapstructure:"rules"`
	Signals     recommendation.PlaceholderSignals `mapstructure:"signals"`
	Snapshot    SnapshotConfig                    `mapstructure:"snapshot"`
	Preferences PreferencesConfig                 `mapstructure:"preferences"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required,numeric"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// ZerologLevel parses the configured level.
func (c LogConfig) ZerologLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.Level)
}

type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required"`
	// DSN is the database path for duckdb. The memory driver accepts "empty" for a store
	// without fixtures.
	DSN string `mapstructure:"dsn"`
	// WindowDays is the length of the generated demo series of the memory driver.
	WindowDays int `mapstructure:"window_days" validate:"gte=1"`
}

type SnapshotConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

type PreferencesConfig struct {
	Path    string `mapstructure:"path"`
	Profile string `mapstructure:"profile" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	rules := recommendation.DefaultRuleSettings()
	signals := recommendation.DefaultSignals()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.window_days", 30)
	v.SetDefault("rules.upsell_min_nps", rules.UpsellMinNPS)
	v.SetDefault("rules.retention_max_nps", rules.RetentionMaxNPS)
	v.SetDefault("rules.max_interaction_gap_days", rules.MaxInteractionGapDays)
	v.SetDefault("rules.onboarding_max_months", rules.OnboardingMaxMonths)
	v.SetDefault("rules.referral_min_months", rules.ReferralMinMonths)
	v.SetDefault("rules.referral_min_nps", rules.ReferralMinNPS)
	v.SetDefault("signals.days_since_last_interaction", signals.DaysSinceLastInteraction)
	v.SetDefault("signals.overdue_installments", signals.OverdueInstallments)
	v.SetDefault("snapshot.enabled", true)
	v.SetDefault("snapshot.schedule", "@daily")
	v.SetDefault("preferences.path", "")
	v.SetDefault("preferences.profile", "DEFAULT")
}

// LoadConfig reads the YAML file at path on top of the defaults. An empty path skips the file.
// SCORECARD_* environment variables override both.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scorecard config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid scorecard config: %s", verrs[0].Namespace())
		}
		return nil, fmt.Errorf("invalid scorecard config: %w", err)
	}
	return &cfg, nil
}
