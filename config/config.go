// Package config loads the YAML configuration of the vidcache binary and
// turns it into placement options.
//
// Example file:
//
//	workers: 8
//	objective: latency        # latency | volume
//	negative_gain: exclude    # exclude | clamp
//	merge_videos: false
//	memory_mode: full         # full | bits
//	max_table_cells: 67108864
//	log:
//	  level: info             # debug | info
//	  development: false
//
// Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vidcache/knapsack"
	"github.com/katalvlaran/vidcache/placement"
)

// Sentinel errors.
var (
	// ErrInvalid indicates a configuration value out of range.
	ErrInvalid = errors.New("config: invalid value")

	// ErrDecode indicates the YAML document could not be decoded.
	ErrDecode = errors.New("config: decode failed")
)

// LogConfig controls the process logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config is the on-disk configuration.
type Config struct {
	Workers       int       `yaml:"workers"`
	Objective     string    `yaml:"objective"`
	NegativeGain  string    `yaml:"negative_gain"`
	MergeVideos   bool      `yaml:"merge_videos"`
	MemoryMode    string    `yaml:"memory_mode"`
	MaxTableCells int64     `yaml:"max_table_cells"`
	Log           LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:       runtime.GOMAXPROCS(0),
		Objective:     placement.LatencyGain.String(),
		NegativeGain:  placement.ExcludeNegative.String(),
		MemoryMode:    knapsack.FullTable.String(),
		MaxTableCells: knapsack.DefaultMaxCells,
		Log:           LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data on top of Default and validates the result. An empty
// document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enum names.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	if c.MaxTableCells <= 0 {
		return fmt.Errorf("%w: max_table_cells=%d", ErrInvalid, c.MaxTableCells)
	}
	if _, err := placement.ParseObjective(c.Objective); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := placement.ParseNegativeGainPolicy(c.NegativeGain); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := parseMemoryMode(c.MemoryMode); err != nil {
		return err
	}
	switch c.Log.Level {
	case "", "info", "debug":
	default:
		return fmt.Errorf("%w: log.level=%q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// PlannerOptions maps c onto placement options.
func (c Config) PlannerOptions() ([]placement.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	obj, _ := placement.ParseObjective(c.Objective)
	neg, _ := placement.ParseNegativeGainPolicy(c.NegativeGain)
	mode, _ := parseMemoryMode(c.MemoryMode)

	opts := []placement.Option{
		placement.WithWorkers(c.Workers),
		placement.WithObjective(obj),
		placement.WithNegativeGain(neg),
		placement.WithSolverOptions(
			knapsack.WithMemoryMode(mode),
			knapsack.WithMaxCells(c.MaxTableCells),
		),
	}
	if c.MergeVideos {
		opts = append(opts, placement.WithMergeVideos())
	}

	return opts, nil
}

// parseMemoryMode is the inverse of knapsack.MemoryMode.String.
func parseMemoryMode(s string) (knapsack.MemoryMode, error) {
	switch s {
	case "full", "":
		return knapsack.FullTable, nil
	case "bits":
		return knapsack.ChoiceBits, nil
	default:
		return 0, fmt.Errorf("%w: memory_mode=%q", ErrInvalid, s)
	}
}
