// Package config loads program settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports settings that cannot drive the programs.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings shared by every program.
type Config struct {
	Width   int     `yaml:"width"`
	Clock   Clock   `yaml:"clock"`
	Deposit Term    `yaml:"deposit"`
	Planner Term    `yaml:"planner"`
	Tracker Tracker `yaml:"tracker"`
}

// Clock configures the clock display.
type Clock struct {
	Width int `yaml:"width"`
}

// Term bounds the investment term in years.
type Term struct {
	MinYears int `yaml:"min_years"`
	MaxYears int `yaml:"max_years"`
}

// Tracker names the item tracker's input and output files.
type Tracker struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Default returns the settings the programs use without a config file.
func Default() Config {
	return Config{
		Width:   80,
		Clock:   Clock{Width: 26},
		Deposit: Term{MinYears: 1, MaxYears: 50},
		Planner: Term{MinYears: 1, MaxYears: 250},
		Tracker: Tracker{
			Input:  "CS210_Project_Three_Input_File.txt",
			Output: "frequency.dat",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML settings from r over the defaults. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that widths and year bounds are usable.
func (c Config) Validate() error {
	if c.Width < 2 {
		return fmt.Errorf("%w: width %d", ErrInvalid, c.Width)
	}
	if c.Clock.Width < 2 {
		return fmt.Errorf("%w: clock width %d", ErrInvalid, c.Clock.Width)
	}
	for name, t := range map[string]Term{"deposit": c.Deposit, "planner": c.Planner} {
		if t.MinYears < 1 || t.MaxYears < t.MinYears {
			return fmt.Errorf("%w: %s years %d..%d", ErrInvalid, name, t.MinYears, t.MaxYears)
		}
	}
	if c.Tracker.Input == "" || c.Tracker.Output == "" {
		return fmt.Errorf("%w: tracker files must be set", ErrInvalid)
	}
	return nil
}
