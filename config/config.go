// Package config loads the runner configuration from a YAML file.
//
//	input_dir: inputs
//	input_name: input.txt
//	days: [8, 10]
//	grouping: true
//	verbosity: 1
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when none is named.
const DefaultFile = "advent.yaml"

var (
	// ErrParse wraps YAML decoding failures.
	ErrParse = errors.New("config: cannot parse configuration")
	// ErrInvalid reports values outside their allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config controls which days run and where their input is read from.
type Config struct {
	// InputDir holds one directory per day, named by day number.
	InputDir string `yaml:"input_dir"`
	// InputName is the file read inside each day directory.
	InputName string `yaml:"input_name"`
	// Days to run; empty runs every registered day.
	Days []int `yaml:"days"`
	// Grouping prints answers with digit separators.
	Grouping bool `yaml:"grouping"`
	// Verbosity is the klog V level.
	Verbosity int `yaml:"verbosity"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		InputDir:  ".",
		InputName: "input.txt",
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(ErrParse, "%s: %v", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.InputName == "" {
		return errors.Wrap(ErrInvalid, "input_name must not be empty")
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(ErrInvalid, "verbosity %d is negative", c.Verbosity)
	}
	for _, d := range c.Days {
		if d < 1 || d > 25 {
			return errors.Wrapf(ErrInvalid, "day %d outside 1..25", d)
		}
	}

	return nil
}

// InputPath returns <input_dir>/<day>/<input_name>.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, strconv.Itoa(day), c.InputName)
}
