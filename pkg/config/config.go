package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
		SlowRequest     time.Duration `yaml:"slow_request" default:"2s"`
	} `yaml:"server"`
	Log     applogger.Config `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	RateLimit struct {
		Enabled   bool    `yaml:"enabled" default:"true"`
		Burst     float64 `yaml:"burst" default:"5"`
		PerSecond float64 `yaml:"per_second" default:"1"`
	} `yaml:"rate_limit"`
	Yahoo struct {
		BaseURL   string        `yaml:"base_url" default:"https://query1.finance.yahoo.com"`
		UserAgent string        `yaml:"user_agent" default:"Mozilla/5.0"`
		Timeout   time.Duration `yaml:"timeout" default:"15s"`
		Retries   int           `yaml:"retries" default:"2"`
	} `yaml:"yahoo"`
	Chart struct {
		StartDate     string `yaml:"start_date" default:"2019-12-01"`
		DefaultSymbol string `yaml:"default_symbol" default:"AAPL"`
	} `yaml:"chart"`
}

// Default returns a config populated only from `default` tags.
func Default() *Config {
	var c Config
	_ = defaults.Set(&c)
	return &c
}

// Load reads and parses a YAML configuration file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads .env (if present), the YAML file, then applies
// environment variable overrides.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		c.Yahoo.BaseURL = v
	}
	if v := os.Getenv("START_DATE"); v != "" {
		c.Chart.StartDate = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		c.Chart.DefaultSymbol = strings.ToUpper(v)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Yahoo.BaseURL == "" {
		return fmt.Errorf("yahoo.base_url is required")
	}
	if c.Yahoo.Timeout <= 0 {
		return fmt.Errorf("yahoo.timeout must be positive")
	}
	if c.Yahoo.Retries < 1 {
		return fmt.Errorf("yahoo.retries must be >= 1")
	}
	if _, err := c.StartDate(); err != nil {
		return err
	}
	if c.Chart.DefaultSymbol == "" {
		return fmt.Errorf("chart.default_symbol is required")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Burst < 1 || c.RateLimit.PerSecond <= 0) {
		return fmt.Errorf("rate_limit: burst must be >= 1 and per_second > 0")
	}
	return nil
}

// StartDate parses chart.start_date.
func (c *Config) StartDate() (time.Time, error) {
	t, ok := util.ParseDate(c.Chart.StartDate)
	if !ok {
		return time.Time{}, fmt.Errorf("chart.start_date %q: want %s, RFC3339 or unix seconds", c.Chart.StartDate, util.DateLayout)
	}
	return t, nil
}
