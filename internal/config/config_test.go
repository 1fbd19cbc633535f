package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, `dataset:
  path: "testdata/hr.csv"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.Dashboard.BroadcastInterval != DefaultBroadcastInterval {
		t.Errorf("broadcast_interval: got %v, want %v",
			cfg.Server.Dashboard.BroadcastInterval, DefaultBroadcastInterval)
	}
	if cfg.Risk.OvertimeFlagEquals != DefaultOvertimeFlagEquals {
		t.Errorf("overtime_flag_equals: got %d, want %d",
			cfg.Risk.OvertimeFlagEquals, DefaultOvertimeFlagEquals)
	}
	if cfg.Risk.WorkLifeBalanceMax != DefaultWorkLifeBalanceMax {
		t.Errorf("work_life_balance_max: got %d, want %d",
			cfg.Risk.WorkLifeBalanceMax, DefaultWorkLifeBalanceMax)
	}
	if cfg.Risk.EngagementIndexMax != DefaultEngagementIndexMax {
		t.Errorf("engagement_index_max: got %v, want %v",
			cfg.Risk.EngagementIndexMax, DefaultEngagementIndexMax)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 9091
  auth:
    mode: apikey
    key_env: MY_KEY
    header: x-wp-key
  dashboard:
    broadcast_interval: 10s
dataset:
  path: "/srv/hr/employees.csv"
risk:
  overtime_flag_equals: 1
  work_life_balance_max: 3
  engagement_index_max: 2.0
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9091 {
		t.Errorf("http_port: got %d, want 9091", cfg.Server.HTTPPort)
	}
	if cfg.Server.Auth.EffectiveHeader() != "x-wp-key" {
		t.Errorf("header: got %q, want x-wp-key", cfg.Server.Auth.EffectiveHeader())
	}
	if cfg.Server.Dashboard.BroadcastInterval != 10*time.Second {
		t.Errorf("broadcast_interval: got %v, want 10s", cfg.Server.Dashboard.BroadcastInterval)
	}
	if cfg.Dataset.Path != "/srv/hr/employees.csv" {
		t.Errorf("dataset.path: got %q", cfg.Dataset.Path)
	}
	if cfg.Risk.WorkLifeBalanceMax != 3 {
		t.Errorf("work_life_balance_max: got %d, want 3", cfg.Risk.WorkLifeBalanceMax)
	}
	if cfg.Risk.EngagementIndexMax != 2.0 {
		t.Errorf("engagement_index_max: got %v, want 2.0", cfg.Risk.EngagementIndexMax)
	}
}

func TestLoad_DefaultHeader(t *testing.T) {
	p := writeConfig(t, `server:
  auth:
    mode: apikey
    key_env: K
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h := cfg.Server.Auth.EffectiveHeader(); h != "x-api-key" {
		t.Errorf("EffectiveHeader: got %q, want x-api-key", h)
	}
}

func TestLoad_KeyEnvResolution(t *testing.T) {
	t.Setenv("TEST_WP_KEY", "supersecret")
	p := writeConfig(t, `server:
  auth:
    mode: apikey
    key_env: TEST_WP_KEY
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if k := cfg.Server.Auth.Key(); k != "supersecret" {
		t.Errorf("Key(): got %q, want supersecret", k)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown auth mode", "server:\n  auth:\n    mode: basic\n"},
		{"port out of range", "server:\n  http_port: 70000\n"},
		{"balance max off scale", "risk:\n  work_life_balance_max: 9\n"},
		{"negative engagement max", "risk:\n  engagement_index_max: -1\n"},
		{"zero broadcast interval", "server:\n  dashboard:\n    broadcast_interval: 0s\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeConfig(t, tc.content)
			if _, err := Load(p); err == nil {
				t.Errorf("Load: expected error for %s", tc.name)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestHolder_SetGet(t *testing.T) {
	a := defaults()
	h := NewHolder(a)
	if h.Get() != a {
		t.Fatal("Get: want the seeded config")
	}

	b := defaults()
	b.Risk.EngagementIndexMax = 3.0
	h.Set(b)
	if h.Get().Risk.EngagementIndexMax != 3.0 {
		t.Errorf("Get after Set: got %v, want 3.0", h.Get().Risk.EngagementIndexMax)
	}
}
