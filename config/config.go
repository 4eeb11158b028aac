// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/api"
	"github.com/katalvlaran/linsys/chart"
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/solver"
)

// EnvPrefix prefixes environment overrides, e.g. LINSYS_SERVER_ADDR.
const EnvPrefix = "LINSYS"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Solver    SolverConfig    `mapstructure:"solver" yaml:"solver"`
	Iterative IterativeConfig `mapstructure:"iterative" yaml:"iterative"`
	Batch     BatchConfig     `mapstructure:"batch" yaml:"batch"`
	Chart     ChartConfig     `mapstructure:"chart" yaml:"chart"`
}

// ServerConfig holds the HTTP listen address.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// LogConfig holds the logrus level name.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// SolverConfig holds the defaults for the exact solvers.
type SolverConfig struct {
	Pivoting        bool  `mapstructure:"pivoting" yaml:"pivoting"`
	SqrtDenominator int64 `mapstructure:"sqrt_denominator" yaml:"sqrt_denominator"`
}

// IterativeConfig holds the Jacobi and Gauss-Seidel stopping rules and
// the number of decimals kept per iterate.
type IterativeConfig struct {
	Tolerance     float64 `mapstructure:"tolerance" yaml:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations" yaml:"max_iterations"`
	Precision     int     `mapstructure:"precision" yaml:"precision"`
}

// BatchConfig sizes the worker pool used by batch solves.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// ChartConfig holds the PNG chart size in inches.
type ChartConfig struct {
	WidthIn  float64 `mapstructure:"width_in" yaml:"width_in"`
	HeightIn float64 `mapstructure:"height_in" yaml:"height_in"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("log.level", "info")

	v.SetDefault("solver.pivoting", solver.DefaultPivoting)
	v.SetDefault("solver.sqrt_denominator", solver.DefaultSqrtDenominator)

	v.SetDefault("iterative.tolerance", iterative.DefaultTolerance)
	v.SetDefault("iterative.max_iterations", iterative.DefaultMaxIterations)
	v.SetDefault("iterative.precision", iterative.DefaultPrecision)

	v.SetDefault("batch.workers", 4)

	v.SetDefault("chart.width_in", chart.DefaultWidth)
	v.SetDefault("chart.height_in", chart.DefaultHeight)
}

// New returns a viper instance with every default registered and environment
// overrides enabled. Callers may bind CLI flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (YAML) when non-empty over the defaults of v, applies
// environment overrides and validates the result. A nil v uses New().
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// Validate checks ranges.
func (c *Config) Validate() error {
	switch {
	case c.Solver.SqrtDenominator < 1:
		return fmt.Errorf("%w: solver.sqrt_denominator must be >= 1", ErrInvalid)
	case !(c.Iterative.Tolerance > 0):
		return fmt.Errorf("%w: iterative.tolerance must be > 0", ErrInvalid)
	case c.Iterative.MaxIterations < 1:
		return fmt.Errorf("%w: iterative.max_iterations must be >= 1", ErrInvalid)
	case c.Iterative.Precision < 0 || c.Iterative.Precision > 15:
		return fmt.Errorf("%w: iterative.precision must be in [0, 15]", ErrInvalid)
	case c.Batch.Workers < 1:
		return fmt.Errorf("%w: batch.workers must be >= 1", ErrInvalid)
	case !(c.Chart.WidthIn > 0) || !(c.Chart.HeightIn > 0):
		return fmt.Errorf("%w: chart size must be > 0", ErrInvalid)
	}

	return nil
}

// Defaults converts the solver sections into api.Defaults.
func (c *Config) Defaults() api.Defaults {
	return api.Defaults{
		Pivoting:        c.Solver.Pivoting,
		SqrtDenominator: c.Solver.SqrtDenominator,
		Tolerance:       c.Iterative.Tolerance,
		MaxIterations:   c.Iterative.MaxIterations,
		Precision:       c.Iterative.Precision,
	}
}

// ChartOptions converts the chart section into chart options.
func (c *Config) ChartOptions() []chart.Option {
	return []chart.Option{chart.WithSize(c.Chart.WidthIn, c.Chart.HeightIn)}
}

// Write encodes c as YAML, suitable as a starting config file.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
