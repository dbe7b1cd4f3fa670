// Package config provides a unified configuration system for the engine:
// a YAML-backed, env-overridable, hot-swappable Config guarded by a
// Manager.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine" json:"engine"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// EngineConfig contains the refinement/enumeration tuning knobs used by
// Brain.Learn's default level=3, eps=1e-6 call.
type EngineConfig struct {
	Level       int               `yaml:"level" json:"level" default:"3" env:"SYNAPSE_LEVEL"`
	Eps         float64           `yaml:"eps" json:"eps" default:"1e-6" env:"SYNAPSE_EPS"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
}

// ConcurrencyConfig bounds the refinement engine's per-round goroutine pool.
type ConcurrencyConfig struct {
	MaxWorkers int `yaml:"max_workers" json:"max_workers" default:"0" env:"SYNAPSE_MAX_WORKERS"`
}

// LoggingConfig carries the fields this engine's logx package understands.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level" default:"info" env:"SYNAPSE_LOG_LEVEL"`
}

// Manager manages configuration loading, validation, and safe concurrent access.
type Manager struct {
	mu          sync.RWMutex
	config      *Config
	configPath  string
	changeHooks []func(*Config)
}

// NewManager creates a Manager seeded with DefaultConfig.
func NewManager() *Manager {
	return &Manager{
		config:      DefaultConfig(),
		changeHooks: make([]func(*Config), 0),
	}
}

// DefaultConfig returns the engine's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Level: 3,
			Eps:   1e-6,
			Concurrency: ConcurrencyConfig{
				MaxWorkers: 0, // auto-detect (runtime.GOMAXPROCS)
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path as YAML, applies environment overrides, validates the
// result, and swaps it in atomically. On any failure the Manager's
// current configuration is left unchanged.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	m.mu.Lock()
	m.config = cfg
	m.configPath = path
	m.mu.Unlock()

	m.notifyChangeHooks(cfg)
	return nil
}

// Get returns a copy of the current configuration, safe for the caller
// to read without further synchronisation.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfgCopy := *m.config
	return &cfgCopy
}

// Update applies updateFunc to a copy of the current configuration,
// validates it, and swaps it in on success.
func (m *Manager) Update(updateFunc func(*Config)) error {
	m.mu.Lock()
	cfgCopy := *m.config
	updateFunc(&cfgCopy)
	if err := Validate(&cfgCopy); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("validating updated configuration: %w", err)
	}
	m.config = &cfgCopy
	m.mu.Unlock()

	m.notifyChangeHooks(&cfgCopy)
	return nil
}

// OnChange registers a callback invoked (in its own goroutine) whenever
// Load or Update installs a new configuration.
func (m *Manager) OnChange(hook func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changeHooks = append(m.changeHooks, hook)
}

func (m *Manager) notifyChangeHooks(cfg *Config) {
	m.mu.RLock()
	hooks := make([]func(*Config), len(m.changeHooks))
	copy(hooks, m.changeHooks)
	m.mu.RUnlock()
	for _, hook := range hooks {
		go hook(cfg)
	}
}

// Validate checks the range invariants promised by each field's
// documentation: Level and MaxWorkers must be non-negative, Eps must be
// strictly positive (it is both a convergence gate and a tie window, and
// zero or negative would never let refinement converge).
func Validate(cfg *Config) error {
	if cfg.Engine.Level < 0 {
		return fmt.Errorf("engine.level must be >= 0, got %d", cfg.Engine.Level)
	}
	if cfg.Engine.Eps <= 0 {
		return fmt.Errorf("engine.eps must be > 0, got %g", cfg.Engine.Eps)
	}
	if cfg.Engine.Concurrency.MaxWorkers < 0 {
		return fmt.Errorf("engine.concurrency.max_workers must be >= 0, got %d", cfg.Engine.Concurrency.MaxWorkers)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug|info|warn|error, got %q", cfg.Logging.Level)
	}
	return nil
}

// applyEnvOverrides reads the env tags declared on Config's fields
// directly (a small, closed set, so plain field assignment suffices
// rather than the reflection-driven walk a larger config surface would
// need).
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("SYNAPSE_LEVEL"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.Level = n
		}
	}
	if v, ok := os.LookupEnv("SYNAPSE_EPS"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.Eps = f
		}
	}
	if v, ok := os.LookupEnv("SYNAPSE_MAX_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.Concurrency.MaxWorkers = n
		}
	}
	if v, ok := os.LookupEnv("SYNAPSE_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
}
