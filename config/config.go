// Package config loads the triroute run configuration from TOML.
//
// Precedence is defaults < TOML file < command-line flags; this package
// handles the first two and Validate checks the merged result.
//
//	input  = "input.txt"
//	output = "output.txt"
//
//	[solver]
//	engine     = "interleaved"   # or "sequential"
//	workers    = 4
//	cache_size = 1024            # 0 disables the route cache
//
//	[log]
//	level        = "info"        # debug, info, warn, error
//	file         = ""            # empty: stderr; otherwise rotated by size
//	max_log_size = 100           # megabytes
//	max_log_age  = 28            # days
//	max_backups  = 3
//	json         = false
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// Engine names accepted by SolverConfig.Engine.
const (
	EngineInterleaved = "interleaved"
	EngineSequential  = "sequential"
)

// Defaults.
const (
	DefaultInput    = "input.txt"
	DefaultOutput   = "output.txt"
	DefaultLogLevel = "info"
)

// Sentinel errors for configuration.
var (
	// ErrInvalid indicates a configuration value outside its domain.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey indicates a TOML key that maps to no field.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the complete run configuration.
type Config struct {
	Input  string       `toml:"input"`
	Output string       `toml:"output"`
	Solver SolverConfig `toml:"solver"`
	Log    LogConfig    `toml:"log"`
}

// SolverConfig selects the engine and its batch parameters.
type SolverConfig struct {
	Engine    string `toml:"engine"`
	Workers   int    `toml:"workers"`
	CacheSize int    `toml:"cache_size"`
}

// LogConfig controls the zap logger and optional file rotation.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_log_size"` // megabytes
	MaxAge     int    `toml:"max_log_age"`  // days
	MaxBackups int    `toml:"max_backups"`
	JSON       bool   `toml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Solver: SolverConfig{
			Engine:  EngineInterleaved,
			Workers: 1,
		},
		Log: LogConfig{
			Level:   DefaultLogLevel,
			MaxSize: 100,
			MaxAge:  28,
		},
	}
}

// Load decodes path over Default and validates the result.
// Keys absent from the file keep their default; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	switch c.Solver.Engine {
	case EngineInterleaved, EngineSequential:
	default:
		return fmt.Errorf("%w: engine %q (want %s or %s)",
			ErrInvalid, c.Solver.Engine, EngineInterleaved, EngineSequential)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, c.Solver.Workers)
	}
	if c.Solver.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size %d < 0", ErrInvalid, c.Solver.CacheSize)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 || c.Log.MaxBackups < 0 {
		return fmt.Errorf("%w: log rotation limits must be non-negative", ErrInvalid)
	}

	return nil
}
