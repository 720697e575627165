package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 8080 || c.Yahoo.Timeout != 15*time.Second || !c.RateLimit.Enabled {
		t.Fatalf("defaults not applied: %+v", c)
	}
	start, err := c.StartDate()
	if err != nil {
		t.Fatalf("start date: %v", err)
	}
	if !start.Equal(time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start date = %v", start)
	}
	if c.Log.Level != "info" || c.Chart.DefaultSymbol != "AAPL" {
		t.Fatalf("unexpected defaults: log=%q symbol=%q", c.Log.Level, c.Chart.DefaultSymbol)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
  read_timeout: 3s
log:
  level: debug
  format: json
chart:
  start_date: "2021-01-04"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Environment != "production" || c.Server.Port != 9090 || c.Server.ReadTimeout != 3*time.Second {
		t.Fatalf("yaml values not applied: %+v", c.Server)
	}
	if c.Server.WriteTimeout != 30*time.Second {
		t.Fatalf("unset field lost its default: %v", c.Server.WriteTimeout)
	}
	if c.Log.Format != "json" || c.Chart.StartDate != "2021-01-04" {
		t.Fatalf("unexpected values: %+v %+v", c.Log, c.Chart)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad start date": "chart:\n  start_date: 12/01/2019\n",
		"bad port":       "server:\n  port: 70000\n",
		"bad yaml":       "server: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEFAULT_SYMBOL", "msft")
	t.Setenv("START_DATE", "2020-06-01")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 7000 || c.Log.Level != "warn" || c.Chart.DefaultSymbol != "MSFT" || c.Chart.StartDate != "2020-06-01" {
		t.Fatalf("env overrides not applied: port=%d level=%s symbol=%s start=%s",
			c.Server.Port, c.Log.Level, c.Chart.DefaultSymbol, c.Chart.StartDate)
	}

	t.Setenv("PORT", "abc")
	if _, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for non-numeric PORT")
	}
}
