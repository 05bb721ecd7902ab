// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Valid API regions. The region decides both the API host and which realm
// namespace item and auction data is served from.
var validRegions = map[string]bool{
	"us": true,
	"eu": true,
	"kr": true,
	"tw": true,
}

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	API       APIConfig       `mapstructure:"api"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// APIConfig holds game API access configuration.
type APIConfig struct {
	ClientID          string        `mapstructure:"client_id"`
	ClientSecret      string        `mapstructure:"client_secret"`
	Region            string        `mapstructure:"region"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	RequestsPerHour   int           `mapstructure:"requests_per_hour"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// Host returns the API host for a region.
func (c *APIConfig) Host(region string) string {
	return fmt.Sprintf("https://%s.api.blizzard.com", region)
}

// OAuthHost returns the token endpoint host.
func (c *APIConfig) OAuthHost() string {
	return "https://oauth.battle.net"
}

// AnalysisConfig holds profit analysis settings.
type AnalysisConfig struct {
	Professions     []string `mapstructure:"professions"`
	ExcludedRecipes []int64  `mapstructure:"excluded_recipes"`
	RankLevels      []int64  `mapstructure:"rank_levels"`
	Realm           string   `mapstructure:"realm"`
}

// CacheConfig holds cache TTL settings.
type CacheConfig struct {
	StaticTTL   time.Duration `mapstructure:"static_ttl"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
}

// ArchiveConfig holds price history persistence settings.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CRAFT")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "CRAFT_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "CRAFT_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "CRAFT_LOG_LEVEL", "LOG_LEVEL")

	// API
	v.BindEnv("api.client_id", "CRAFT_API_CLIENT_ID", "BNET_CLIENT_ID")
	v.BindEnv("api.client_secret", "CRAFT_API_CLIENT_SECRET", "BNET_CLIENT_SECRET")
	v.BindEnv("api.region", "CRAFT_API_REGION", "BNET_REGION")

	// Analysis
	v.BindEnv("analysis.realm", "CRAFT_REALM")
	v.BindEnv("analysis.professions", "CRAFT_PROFESSIONS")

	// Archive
	v.BindEnv("archive.path", "CRAFT_ARCHIVE_PATH")

	// Telemetry
	v.BindEnv("telemetry.enabled", "CRAFT_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "CRAFT_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "CRAFT_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "craftprofit")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// API defaults
	v.SetDefault("api.region", "us")
	v.SetDefault("api.requests_per_second", 90)
	v.SetDefault("api.burst", 10)
	v.SetDefault("api.requests_per_hour", 36000)
	v.SetDefault("api.timeout", "15s")

	// Analysis defaults
	v.SetDefault("analysis.professions", []string{})
	v.SetDefault("analysis.excluded_recipes", []int64{})
	// Item levels for multi-tier recipe ranks, position = rank ordinal.
	v.SetDefault("analysis.rank_levels", []int64{415, 445, 475})

	// Cache defaults
	v.SetDefault("cache.static_ttl", "24h")
	v.SetDefault("cache.snapshot_ttl", "30m")

	// Archive defaults
	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.path", "craftprofit.db")

	// Server defaults
	v.SetDefault("server.port", 8080)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "craftprofit")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !validRegions[c.API.Region] {
		return fmt.Errorf("invalid api.region: %s", c.API.Region)
	}
	if c.API.ClientID == "" {
		return fmt.Errorf("api.client_id is required")
	}
	if c.API.ClientSecret == "" {
		return fmt.Errorf("api.client_secret is required")
	}
	if c.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("api.requests_per_second must be positive")
	}
	if c.Archive.Enabled && c.Archive.Path == "" {
		return fmt.Errorf("archive.path is required when archive is enabled")
	}
	return nil
}
