package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shad0w-jo4n/libcpp-gc/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMonitorConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
addr = "127.0.0.1:9311"
cors_origins = ["http://localhost:3000", "  ", "http://localhost:5173"]
sweep_interval = "250ms"
workers = 8
`)

	cfg, err := LoadMonitorConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9311" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if len(cfg.CorsOrigins) != 2 {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
	if cfg.SweepInterval != 250*time.Millisecond {
		t.Fatalf("unexpected sweep interval: %v", cfg.SweepInterval)
	}
	if cfg.Workers != 8 {
		t.Fatalf("unexpected workers: %d", cfg.Workers)
	}
	if cfg.ObjectsPerWorker != DefaultMonitorConfig().ObjectsPerWorker {
		t.Fatalf("expected default objects_per_worker, got %d", cfg.ObjectsPerWorker)
	}
	if cfg.RetainEvery != DefaultMonitorConfig().RetainEvery {
		t.Fatalf("expected default retain_every, got %d", cfg.RetainEvery)
	}
}

func TestLoadMonitorConfigIntervalMSWinsWhenLast(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
sweep_interval = "2s"
sweep_interval_ms = 50
`)

	cfg, err := LoadMonitorConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SweepInterval != 50*time.Millisecond {
		t.Fatalf("unexpected sweep interval: %v", cfg.SweepInterval)
	}
}

func TestLoadMonitorConfigRejectsBadInterval(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `sweep_interval = "soon"`)

	if _, err := LoadMonitorConfig(path); err == nil {
		t.Fatalf("expected interval parse error")
	}
}

func TestLoadMonitorConfigRejectsNonPositiveWorkers(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `workers = 0`)

	if _, err := LoadMonitorConfig(path); err == nil {
		t.Fatalf("expected workers validation error")
	}
}

func TestValidateMonitorConfigDefaults(t *testing.T) {
	testlog.Start(t)
	if err := ValidateMonitorConfig(DefaultMonitorConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
