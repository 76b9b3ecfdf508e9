package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("DEFAULTER_THRESHOLD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerPort != "8080" || cfg.Environment != "development" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UpstreamTimeout != 10*time.Second || cfg.DefaulterThreshold != 75 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.IsProduction() {
		t.Fatalf("development must not be production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ATTENDANCE_API_URL", "http://attendance.local/all")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("DEFAULTER_THRESHOLD", "80")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerPort != "9090" || !cfg.IsProduction() || cfg.AttendanceAPIURL != "http://attendance.local/all" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.UpstreamTimeout != 3*time.Second || cfg.DefaulterThreshold != 80 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"bad duration":      {"UPSTREAM_TIMEOUT", "soon"},
		"negative duration": {"UPSTREAM_TIMEOUT", "-1s"},
		"bad threshold":     {"DEFAULTER_THRESHOLD", "most"},
		"threshold > 100":   {"DEFAULTER_THRESHOLD", "120"},
		"NaN threshold":     {"DEFAULTER_THRESHOLD", "NaN"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("UPSTREAM_TIMEOUT", "")
			t.Setenv("DEFAULTER_THRESHOLD", "")
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
