package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine.Level != 3 {
		t.Errorf("expected default level 3, got %d", cfg.Engine.Level)
	}
	if cfg.Engine.Eps != 1e-6 {
		t.Errorf("expected default eps 1e-6, got %g", cfg.Engine.Eps)
	}
	if cfg.Engine.Concurrency.MaxWorkers != 0 {
		t.Errorf("expected max workers 0 (auto), got %d", cfg.Engine.Concurrency.MaxWorkers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
	}
}

func TestNewManager(t *testing.T) {
	manager := NewManager()
	if manager == nil {
		t.Fatal("expected manager to be created")
	}
	cfg := manager.Get()
	if cfg.Engine.Level != 3 {
		t.Errorf("expected default level from new manager, got %d", cfg.Engine.Level)
	}
}

func TestManagerLoadAppliesFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "engine:\n  level: 5\n  eps: 0.01\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	t.Setenv("SYNAPSE_MAX_WORKERS", "4")

	manager := NewManager()
	if err := manager.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := manager.Get()
	if cfg.Engine.Level != 5 {
		t.Errorf("expected level 5 from file, got %d", cfg.Engine.Level)
	}
	if cfg.Engine.Eps != 0.01 {
		t.Errorf("expected eps 0.01 from file, got %g", cfg.Engine.Eps)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging.level 'debug' from file, got %q", cfg.Logging.Level)
	}
	if cfg.Engine.Concurrency.MaxWorkers != 4 {
		t.Errorf("expected max_workers 4 from env override, got %d", cfg.Engine.Concurrency.MaxWorkers)
	}
}

func TestManagerLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "engine:\n  eps: -1\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	manager := NewManager()
	before := manager.Get()
	if err := manager.Load(path); err == nil {
		t.Fatal("expected Load to reject a non-positive eps")
	}
	after := manager.Get()
	if after.Engine.Eps != before.Engine.Eps {
		t.Error("expected Manager config to be left unchanged after a rejected Load")
	}
}

func TestManagerUpdate(t *testing.T) {
	manager := NewManager()
	if err := manager.Update(func(c *Config) { c.Engine.Level = 7 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := manager.Get().Engine.Level; got != 7 {
		t.Errorf("expected level 7 after Update, got %d", got)
	}
}

func TestManagerUpdateRejectsInvalid(t *testing.T) {
	manager := NewManager()
	err := manager.Update(func(c *Config) { c.Engine.Eps = 0 })
	if err == nil {
		t.Fatal("expected Update to reject eps == 0")
	}
	if got := manager.Get().Engine.Eps; got != 1e-6 {
		t.Errorf("expected config unchanged after rejected Update, got eps=%g", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid default", func(*Config) {}, false},
		{"negative level", func(c *Config) { c.Engine.Level = -1 }, true},
		{"zero eps", func(c *Config) { c.Engine.Eps = 0 }, true},
		{"negative workers", func(c *Config) { c.Engine.Concurrency.MaxWorkers = -1 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
