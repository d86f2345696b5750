// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphcheck/checker"
)

// Prefix is prepended to every environment variable name.
const Prefix = "GRAPHCHECK"

type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	ReferenceDir   string        `envconfig:"REFERENCE_DIR" default:"./data/questions"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	Parallel       bool          `envconfig:"PARALLEL" default:"false"`
	TolerancesFile string        `envconfig:"TOLERANCES"`
	MaxBody        int64         `envconfig:"MAX_BODY" default:"1048576"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if cfg.MaxBody <= 0 {
		return nil, fmt.Errorf("config: %s_MAX_BODY must be positive, got %d", Prefix, cfg.MaxBody)
	}

	return &cfg, nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: %s_LOG_LEVEL: %w", Prefix, err)
	}

	return l, nil
}

// Tolerances returns the checker thresholds: the defaults, overlaid with
// TolerancesFile when it is set.
func (c *Config) Tolerances() (checker.Tolerances, error) {
	if c.TolerancesFile == "" {
		return checker.DefaultTolerances(), nil
	}

	return LoadTolerances(c.TolerancesFile)
}

// LoadTolerances reads a YAML tolerance profile. Keys left out keep their
// checker.DefaultTolerances value; unknown keys are rejected.
//
//	shape_interior: 0.15
//	position: 40
func LoadTolerances(path string) (checker.Tolerances, error) {
	t := checker.DefaultTolerances()

	f, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("config: tolerances: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return t, fmt.Errorf("config: tolerances %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("config: tolerances %s: %w", path, err)
	}

	return t, nil
}
