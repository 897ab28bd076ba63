package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/shad0w-jo4n/libcpp-gc/gc"
)

// MonitorConfig drives the gcmon binary: the sweep cadence, the monitor
// HTTP listener, and the shape of the demo workload.
type MonitorConfig struct {
	Addr             string
	CorsOrigins      []string
	SweepInterval    time.Duration
	Workers          int
	ObjectsPerWorker int
	RetainEvery      int
}

func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		Addr:             ":9300",
		SweepInterval:    gc.DefaultInterval,
		Workers:          4,
		ObjectsPerWorker: 64,
		RetainEvery:      8,
	}
}

type fileConfig struct {
	Addr             string   `toml:"addr"`
	CorsOrigins      []string `toml:"cors_origins"`
	SweepInterval    string   `toml:"sweep_interval"`
	SweepIntervalMS  int64    `toml:"sweep_interval_ms"`
	Workers          int      `toml:"workers"`
	ObjectsPerWorker int      `toml:"objects_per_worker"`
	RetainEvery      int      `toml:"retain_every"`
}

func LoadMonitorConfig(path string) (MonitorConfig, error) {
	cfg := DefaultMonitorConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return MonitorConfig{}, fmt.Errorf("load monitor config: %w", err)
	}

	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Addr = addr
		}
	}

	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}

	if meta.IsDefined("sweep_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.SweepInterval))
		if err != nil {
			return MonitorConfig{}, fmt.Errorf("parse sweep_interval: %w", err)
		}
		cfg.SweepInterval = d
	}

	if meta.IsDefined("sweep_interval_ms") {
		cfg.SweepInterval = time.Duration(raw.SweepIntervalMS) * time.Millisecond
	}

	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}

	if meta.IsDefined("objects_per_worker") {
		cfg.ObjectsPerWorker = raw.ObjectsPerWorker
	}

	if meta.IsDefined("retain_every") {
		cfg.RetainEvery = raw.RetainEvery
	}

	if err := ValidateMonitorConfig(cfg); err != nil {
		return MonitorConfig{}, err
	}
	return cfg, nil
}

func ValidateMonitorConfig(cfg MonitorConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("monitor config missing addr")
	}
	if cfg.SweepInterval <= 0 {
		return fmt.Errorf("monitor config sweep_interval must be positive, got %v", cfg.SweepInterval)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("monitor config workers must be positive, got %d", cfg.Workers)
	}
	if cfg.ObjectsPerWorker <= 0 {
		return fmt.Errorf("monitor config objects_per_worker must be positive, got %d", cfg.ObjectsPerWorker)
	}
	if cfg.RetainEvery < 0 {
		return fmt.Errorf("monitor config retain_every must not be negative, got %d", cfg.RetainEvery)
	}
	return nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		out = append(out, origin)
	}
	return out
}
