// Package config loads khl-team settings from defaults, an optional YAML file,
// a .env file and KHL_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL           = "https://www.championat.com/"
	DefaultCatalogPath       = "hockey/_superleague/1770/teams.html"
	DefaultResultsSuffix     = "result.html"
	DefaultRosterSuffix      = "players.html"
	DefaultPlayerStatsSuffix = "pstat.html"
	DefaultTeamStatsSuffix   = "tstat.html"
	DefaultUserAgent         = "khl-team/1.0 (github.com/pfrederiksen/khl-team)"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerMinute = 60
	DefaultTimezone          = "Europe/Moscow"

	envPrefix = "KHL"
)

// Config holds every runtime setting
type Config struct {
	BaseURL           string        `mapstructure:"base_url"`
	CatalogPath       string        `mapstructure:"catalog_path"`
	ResultsSuffix     string        `mapstructure:"results_suffix"`
	RosterSuffix      string        `mapstructure:"roster_suffix"`
	PlayerStatsSuffix string        `mapstructure:"player_stats_suffix"`
	TeamStatsSuffix   string        `mapstructure:"team_stats_suffix"`
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Timezone          string        `mapstructure:"timezone"`
	LogLevel          string        `mapstructure:"log_level"`
	MetricsFile       string        `mapstructure:"metrics_file"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("catalog_path", DefaultCatalogPath)
	v.SetDefault("results_suffix", DefaultResultsSuffix)
	v.SetDefault("roster_suffix", DefaultRosterSuffix)
	v.SetDefault("player_stats_suffix", DefaultPlayerStatsSuffix)
	v.SetDefault("team_stats_suffix", DefaultTeamStatsSuffix)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("requests_per_minute", DefaultRequestsPerMinute)
	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_file", "")
}

// Load reads the configuration into a Config. A missing .env is ignored; a
// configFile that is set but unreadable is an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the extractor cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base_url is required")
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("catalog_path is required")
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must not be negative: %d", c.RequestsPerMinute)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	return nil
}

// Location resolves the configured time zone used to interpret match times.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
