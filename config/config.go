// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads playerdist configuration from an optional
// YAML file and PLAYERDIST_* environment variables.
package config // import "github.com/statline/playerdist/config"

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/statline/playerdist/fit"
	"github.com/statline/playerdist/gamelog"
	"github.com/statline/playerdist/logging"
)

// EnvPrefix prefixes the environment variables that override
// configuration keys: input.logs is PLAYERDIST_INPUT_LOGS.
const EnvPrefix = "PLAYERDIST"

// Config is the complete configuration of a batch run.
type Config struct {
	Input   InputConfig    `mapstructure:"input" yaml:"input"`
	Model   ModelConfig    `mapstructure:"model" yaml:"model"`
	Output  OutputConfig   `mapstructure:"output" yaml:"output"`
	Metrics MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
	Logging logging.Config `mapstructure:"logging" yaml:"logging"`
}

// InputConfig locates the roster and the game logs.
type InputConfig struct {
	Roster       string          `mapstructure:"roster" yaml:"roster" validate:"required"`
	RosterColumn string          `mapstructure:"roster_column" yaml:"roster_column" default:"Player" validate:"required"`
	Logs         string          `mapstructure:"logs" yaml:"logs" validate:"required"`
	LogsFormat   string          `mapstructure:"logs_format" yaml:"logs_format" default:"csv" validate:"oneof=csv sqlite"`
	LogsTable    string          `mapstructure:"logs_table" yaml:"logs_table" default:"game_logs"`
	Columns      gamelog.Columns `mapstructure:"columns" yaml:"columns"`
}

// ModelConfig controls summaries and distribution selection.
type ModelConfig struct {
	DecayRate float64  `mapstructure:"decay_rate" yaml:"decay_rate" default:"0.05" validate:"gte=0"`
	Window    int      `mapstructure:"window" yaml:"window" default:"50" validate:"gte=1"`
	Families  []string `mapstructure:"families" yaml:"families"`
}

// OutputConfig names the output files.
type OutputConfig struct {
	Table        string `mapstructure:"table" yaml:"table" default:"player_distributions.csv" validate:"required"`
	Params       string `mapstructure:"params" yaml:"params"`
	ParamsFormat string `mapstructure:"params_format" yaml:"params_format" default:"json" validate:"oneof=json yaml"`
}

// MetricsConfig enables the Prometheus textfile.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// keys lists every configuration key that can be set from the
// environment.
var keys = []string{
	"input.roster",
	"input.roster_column",
	"input.logs",
	"input.logs_format",
	"input.logs_table",
	"input.columns.player",
	"input.columns.date",
	"input.columns.points",
	"input.columns.rebounds",
	"input.columns.assists",
	"model.decay_rate",
	"model.window",
	"model.families",
	"output.table",
	"output.params",
	"output.params_format",
	"metrics.textfile",
	"logging.level",
	"logging.format",
	"logging.output",
}

// Default returns the configuration with every default applied.
func Default() (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return &cfg, nil
}

// Load returns the defaults overridden by the YAML file at path, if
// path is not empty, and then by the environment. It does not
// validate the result; see Validate.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks c for missing or out-of-range values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := fit.Subset(c.Model.Families); err != nil {
		return fmt.Errorf("invalid configuration: model.families: %w", err)
	}
	return nil
}

// Candidates returns the catalog families selected by
// c.Model.Families.
func (c *Config) Candidates() ([]fit.Candidate, error) {
	return fit.Subset(c.Model.Families)
}
