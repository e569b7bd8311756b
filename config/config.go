// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	World        WorldConfig        `yaml:"world"`
	Movement     MovementConfig     `yaml:"movement"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Hunter       HunterConfig       `yaml:"hunter"`
	Placement    PlacementConfig    `yaml:"placement"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
}

// ScreenConfig holds display settings for graphical mode.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the board dimensions. The board is square.
type WorldConfig struct {
	BoardSize int `yaml:"board_size"`
}

// MovementConfig holds the global movement budget.
type MovementConfig struct {
	Cap int `yaml:"cap"` // Total unit steps shared by every entity for the whole run
}

// ReproductionConfig holds mate selection and birth placement parameters.
type ReproductionConfig struct {
	Distance    float64 `yaml:"distance"`      // Max distance between mates
	BirthRadius float64 `yaml:"birth_radius"`  // Radius of the birth ring around the parents' midpoint
	RingStepDeg int     `yaml:"ring_step_deg"` // Angular spacing of birth ring samples
}

// HunterConfig holds parameters for the dedicated hunter entity.
type HunterConfig struct {
	Reach int `yaml:"reach"`
	Steps int `yaml:"steps"`
}

// PlacementConfig holds random placement parameters.
type PlacementConfig struct {
	Attempts int `yaml:"attempts"` // Random cells tried before giving up
}

// TelemetryConfig holds event log and perf parameters.
type TelemetryConfig struct {
	EventLog   string `yaml:"event_log"`   // Text event log path (empty = disabled)
	PerfWindow int    `yaml:"perf_window"` // Ticks averaged by the perf collector
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.World.BoardSize <= 0 {
		errs = append(errs, fmt.Errorf("world.board_size must be positive, got %d", c.World.BoardSize))
	}
	if c.Movement.Cap <= 0 {
		errs = append(errs, fmt.Errorf("movement.cap must be positive, got %d", c.Movement.Cap))
	}
	if c.Reproduction.Distance < 0 {
		errs = append(errs, fmt.Errorf("reproduction.distance must not be negative, got %v", c.Reproduction.Distance))
	}
	if c.Reproduction.BirthRadius <= 0 {
		errs = append(errs, fmt.Errorf("reproduction.birth_radius must be positive, got %v", c.Reproduction.BirthRadius))
	}
	if c.Reproduction.RingStepDeg <= 0 || 360%c.Reproduction.RingStepDeg != 0 {
		errs = append(errs, fmt.Errorf("reproduction.ring_step_deg must divide 360, got %d", c.Reproduction.RingStepDeg))
	}
	if c.Hunter.Reach < 0 {
		errs = append(errs, fmt.Errorf("hunter.reach must not be negative, got %d", c.Hunter.Reach))
	}
	// The hunter must keep consuming budget once every animal is gone
	if c.Hunter.Steps < 1 {
		errs = append(errs, fmt.Errorf("hunter.steps must be at least 1, got %d", c.Hunter.Steps))
	}
	if c.Placement.Attempts <= 0 {
		errs = append(errs, fmt.Errorf("placement.attempts must be positive, got %d", c.Placement.Attempts))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
