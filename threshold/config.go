package threshold

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CodeFamily names a surface-code construction Run knows how to build
// (spec.md §6 "make_toric(W, L)", "make_rotated_planar(D)").
type CodeFamily string

const (
	// Toric builds a square W=L=distance toric code per point.
	Toric CodeFamily = "toric"
	// RotatedPlanar builds a dimension-D rotated planar code per point.
	RotatedPlanar CodeFamily = "rotated_planar"
)

// Config enumerates a threshold-estimation run (spec.md §6 "CLI /
// environment"): distances, error rates, trial count, seed, output path.
// The yaml tags name the keys LoadConfig reads.
type Config struct {
	Family         CodeFamily `yaml:"family"`
	Distances      []int      `yaml:"distances"`
	ErrorRates     []float64  `yaml:"error_rates"`
	TrialsPerPoint int        `yaml:"trials_per_point"`
	Seed           int64      `yaml:"seed"`
	OutputPath     string     `yaml:"output_path"`
}

// Option customizes a Config. As a rule, option constructors never panic
// and ignore zero-value inputs that would otherwise clear a setting
// (builder.BuilderOption's convention). WithSeed is the exception: it
// applies every value, 0 included.
type Option func(cfg *Config)

// defaultConfig returns the baseline NewConfig and LoadConfig start from
// before any Option or config file override.
func defaultConfig() Config {
	return Config{
		Family:         Toric,
		Distances:      []int{3, 5, 7},
		ErrorRates:     []float64{0.01, 0.05, 0.1, 0.15, 0.2},
		TrialsPerPoint: 1000,
		Seed:           1,
		OutputPath:     "threshold.json",
	}
}

// NewConfig applies opts over defaultConfig in order; later options
// override earlier ones.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// LoadConfig reads a YAML document at path into a Config seeded with
// defaultConfig, then applies opts over the result.
func LoadConfig(path string, opts ...Option) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "LoadConfig(%q)", path)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "LoadConfig(%q): parse YAML", path)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

// WithFamily selects the code family a Run builds per distance.
func WithFamily(family CodeFamily) Option {
	return func(cfg *Config) {
		if family != "" {
			cfg.Family = family
		}
	}
}

// WithDistances sets the distance grid. A nil or empty list is a no-op.
func WithDistances(distances ...int) Option {
	return func(cfg *Config) {
		if len(distances) > 0 {
			cfg.Distances = distances
		}
	}
}

// WithErrorRates sets the physical error rate grid. A nil or empty list is
// a no-op.
func WithErrorRates(rates ...float64) Option {
	return func(cfg *Config) {
		if len(rates) > 0 {
			cfg.ErrorRates = rates
		}
	}
}

// WithTrialsPerPoint sets the number of counted trials per grid point. A
// non-positive value is a no-op.
func WithTrialsPerPoint(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.TrialsPerPoint = n
		}
	}
}

// WithSeed sets the deterministic RNG seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithOutputPath sets the report destination. An empty path is a no-op.
func WithOutputPath(path string) Option {
	return func(cfg *Config) {
		if path != "" {
			cfg.OutputPath = path
		}
	}
}

// Validate reports one of this package's sentinel errors if cfg cannot
// drive a Run; Run wraps that error as a surface.KindConfiguration error.
// The order of ErrorRates is not checked.
func (cfg Config) Validate() error {
	if len(cfg.Distances) == 0 {
		return ErrNoDistances
	}
	if len(cfg.ErrorRates) == 0 {
		return ErrNoErrorRates
	}
	if cfg.TrialsPerPoint <= 0 {
		return ErrTooFewTrials
	}
	if cfg.Family != Toric && cfg.Family != RotatedPlanar {
		return errors.Wrapf(ErrUnknownFamily, "%q", cfg.Family)
	}

	return nil
}
