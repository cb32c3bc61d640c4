// Package config loads the lvpal configuration.
//
// Precedence, highest first:
//  1. Environment variables with the LVPAL_ prefix
//  2. The YAML file passed to Load
//  3. Built-in defaults
//
// Environment variables map onto keys by dropping the prefix, lowercasing and
// splitting on the first underscore:
//
//	LVPAL_SERVER_PORT             -> server.port
//	LVPAL_LIMITS_QUADRATIC_MAX    -> limits.quadratic_max
//	LVPAL_BENCHMARK_SKIP_BRUTE_FORCE -> benchmark.skip.brute_force
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/katalvlaran/lvpal/benchmark"
	"github.com/katalvlaran/lvpal/internal/logging"
	"github.com/katalvlaran/lvpal/lps"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server" yaml:"server"`
	Limits    LimitsConfig    `koanf:"limits" yaml:"limits"`
	Benchmark BenchmarkConfig `koanf:"benchmark" yaml:"benchmark"`
	Log       logging.Config  `koanf:"log" yaml:"log"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Host            string   `koanf:"host" yaml:"host"`
	Port            int      `koanf:"port" yaml:"port"`
	CORSOrigins     []string `koanf:"cors_origins" yaml:"cors_origins"`
	RateLimit       float64  `koanf:"rate_limit" yaml:"rate_limit"`
	RateBurst       int      `koanf:"rate_burst" yaml:"rate_burst"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LimitsConfig caps the input length the HTTP layer accepts per algorithm.
type LimitsConfig struct {
	// QuadraticMax applies to brute_force and dynamic_programming.
	QuadraticMax int `koanf:"quadratic_max" yaml:"quadratic_max"`

	// LinearMax applies to expand_center and manacher.
	LinearMax int `koanf:"linear_max" yaml:"linear_max"`

	// TraceEvents caps the events of one traced run.
	TraceEvents int `koanf:"trace_events" yaml:"trace_events"`
}

// Policy returns the per-algorithm length ceilings.
func (l LimitsConfig) Policy() benchmark.Policy {
	return benchmark.Policy{
		lps.BruteForce:         l.QuadraticMax,
		lps.DynamicProgramming: l.QuadraticMax,
		lps.ExpandCenter:       l.LinearMax,
		lps.Manacher:           l.LinearMax,
	}
}

// BenchmarkConfig configures the benchmark matrix.
type BenchmarkConfig struct {
	Lengths     []int          `koanf:"lengths" yaml:"lengths"`
	Alphabet    string         `koanf:"alphabet" yaml:"alphabet"`
	Seed        int64          `koanf:"seed" yaml:"seed"`
	Parallelism int            `koanf:"parallelism" yaml:"parallelism"`
	Skip        map[string]int `koanf:"skip" yaml:"skip"`
}

// Policy returns the skip policy of the matrix.
func (b BenchmarkConfig) Policy() benchmark.Policy {
	p := make(benchmark.Policy, len(b.Skip))
	for id, limit := range b.Skip {
		p[lps.ID(id)] = limit
	}

	return p
}

// Options returns the harness options for this configuration.
func (b BenchmarkConfig) Options() []benchmark.Option {
	return []benchmark.Option{
		benchmark.WithLengths(b.Lengths...),
		benchmark.WithAlphabet(b.Alphabet),
		benchmark.WithSeed(b.Seed),
		benchmark.WithParallelism(b.Parallelism),
		benchmark.WithPolicy(b.Policy()),
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			CORSOrigins:     []string{"*"},
			RateLimit:       20,
			RateBurst:       40,
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Limits: LimitsConfig{
			QuadraticMax: 100,
			LinearMax:    1000,
			TraceEvents:  1_000_000,
		},
		Benchmark: BenchmarkConfig{
			Lengths:     benchmark.DefaultLengths(),
			Alphabet:    benchmark.DefaultAlphabet,
			Seed:        benchmark.DefaultSeed,
			Parallelism: 1,
			Skip:        map[string]int{string(lps.BruteForce): benchmark.DefaultBruteForceMax},
		},
		Log: logging.NewDefaultConfig(),
	}
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit must not be negative"))
	}
	if c.Limits.QuadraticMax <= 0 {
		errs = append(errs, fmt.Errorf("limits.quadratic_max must be positive"))
	}
	if c.Limits.LinearMax <= 0 {
		errs = append(errs, fmt.Errorf("limits.linear_max must be positive"))
	}
	if c.Limits.TraceEvents < 0 {
		errs = append(errs, fmt.Errorf("limits.trace_events must not be negative"))
	}
	if len(c.Benchmark.Lengths) == 0 {
		errs = append(errs, fmt.Errorf("benchmark.lengths must not be empty"))
	}
	for _, n := range c.Benchmark.Lengths {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("benchmark.lengths: %d is not positive", n))
		}
	}
	if c.Benchmark.Alphabet == "" {
		errs = append(errs, fmt.Errorf("benchmark.alphabet must not be empty"))
	}
	if c.Benchmark.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("benchmark.parallelism must be at least 1"))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
