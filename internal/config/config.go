package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the server configuration.
const (
	DefaultHTTPPort          = 8080
	DefaultDatasetPath       = "data/employees.csv"
	DefaultBroadcastInterval = 5 * time.Second
)

// Default risk thresholds. The high-burnout rule is the conjunction of all
// three conditions; these values reproduce the dashboard's original rule.
const (
	DefaultOvertimeFlagEquals = 1
	DefaultWorkLifeBalanceMax = 2
	DefaultEngagementIndexMax = 2.5
)

// Config holds the full workpulse-server configuration parsed from config.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Risk    RiskConfig    `yaml:"risk"`
}

// ServerConfig holds the HTTP-facing settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, WebSocket hub and /metrics listen on
	// (default 8080).
	HTTPPort int `yaml:"http_port"`

	// Auth configures API-key authentication for the REST API.
	Auth AuthConfig `yaml:"auth"`

	// CORS lists the browser origins allowed to call the API.
	CORS CORSConfig `yaml:"cors"`

	// Dashboard controls the WebSocket broadcast behaviour.
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// AuthConfig controls client authentication for the REST API.
type AuthConfig struct {
	// Mode is one of: apikey | none.
	Mode string `yaml:"mode"`

	// KeyEnv is the name of the environment variable that holds the expected
	// API key. Used when Mode == "apikey".
	KeyEnv string `yaml:"key_env"`

	// Header is the HTTP header name to read the key from.
	// Defaults to "x-api-key" if empty.
	Header string `yaml:"header"`
}

// Key returns the expected API key resolved from the environment.
func (a AuthConfig) Key() string {
	if a.KeyEnv == "" {
		return ""
	}
	return os.Getenv(a.KeyEnv)
}

// EffectiveHeader returns the configured header name, or the default "x-api-key".
func (a AuthConfig) EffectiveHeader() string {
	if a.Header != "" {
		return a.Header
	}
	return "x-api-key"
}

// CORSConfig lists the origins the browser dashboard is served from.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DashboardConfig controls the live-update channel.
type DashboardConfig struct {
	// BroadcastInterval is how often the WebSocket hub pushes the current
	// dashboard bundle to connected clients. Default: 5s.
	BroadcastInterval time.Duration `yaml:"broadcast_interval"`
}

// DatasetConfig locates the employee table.
type DatasetConfig struct {
	// Path is the CSV file read once at startup. The file is assumed static
	// for the process lifetime; there is no reload.
	Path string `yaml:"path"`
}

// RiskConfig holds the high-burnout-risk thresholds. An employee is high
// risk when the overtime flag equals OvertimeFlagEquals AND work-life
// balance is at most WorkLifeBalanceMax AND the engagement index is at most
// EngagementIndexMax. These are hot-reloadable via Watch.
type RiskConfig struct {
	OvertimeFlagEquals int     `yaml:"overtime_flag_equals"`
	WorkLifeBalanceMax int     `yaml:"work_life_balance_max"`
	EngagementIndexMax float64 `yaml:"engagement_index_max"`
}

// Load reads and parses the config file at path. Missing fields are filled
// with sensible defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: DefaultHTTPPort,
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			},
			Dashboard: DashboardConfig{
				BroadcastInterval: DefaultBroadcastInterval,
			},
		},
		Dataset: DatasetConfig{
			Path: DefaultDatasetPath,
		},
		Risk: RiskConfig{
			OvertimeFlagEquals: DefaultOvertimeFlagEquals,
			WorkLifeBalanceMax: DefaultWorkLifeBalanceMax,
			EngagementIndexMax: DefaultEngagementIndexMax,
		},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	switch cfg.Server.Auth.Mode {
	case "apikey", "none", "":
	default:
		return fmt.Errorf("server.auth.mode %q unknown: want apikey|none", cfg.Server.Auth.Mode)
	}
	if cfg.Server.Dashboard.BroadcastInterval <= 0 {
		return fmt.Errorf("server.dashboard.broadcast_interval must be positive")
	}
	if cfg.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	if cfg.Risk.OvertimeFlagEquals != 0 && cfg.Risk.OvertimeFlagEquals != 1 {
		return fmt.Errorf("risk.overtime_flag_equals %d invalid: want 0 or 1", cfg.Risk.OvertimeFlagEquals)
	}
	if cfg.Risk.WorkLifeBalanceMax < 1 || cfg.Risk.WorkLifeBalanceMax > 4 {
		return fmt.Errorf("risk.work_life_balance_max %d is out of the 1-4 scale", cfg.Risk.WorkLifeBalanceMax)
	}
	if cfg.Risk.EngagementIndexMax <= 0 {
		return fmt.Errorf("risk.engagement_index_max must be positive")
	}
	return nil
}
