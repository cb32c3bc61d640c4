package benchmark

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/lvpal/step"
	"go.uber.org/zap"
)

// ErrInvalidConfig indicates a run configuration that cannot be executed.
var ErrInvalidConfig = errors.New("benchmark: invalid configuration")

// Default matrix parameters.
const (
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"
	DefaultSeed     = 42
)

// DefaultLengths are the input sizes of a default run.
func DefaultLengths() []int { return []int{100, 500, 1000, 2000} }

// Option configures a Run.
type Option func(*Options)

// Options holds the resolved settings of a Run.
type Options struct {
	Lengths     []int
	Alphabet    string
	Seed        int64
	Parallelism int
	Policy      Policy
	Logger      *zap.Logger
	Clock       step.Clock
}

// DefaultOptions returns the default matrix, run sequentially and silently.
func DefaultOptions() Options {
	return Options{
		Lengths:     DefaultLengths(),
		Alphabet:    DefaultAlphabet,
		Seed:        DefaultSeed,
		Parallelism: 1,
		Policy:      DefaultPolicy(),
		Logger:      zap.NewNop(),
		Clock:       step.SystemClock{},
	}
}

// WithLengths sets the input sizes.
func WithLengths(lengths ...int) Option {
	return func(o *Options) { o.Lengths = append([]int(nil), lengths...) }
}

// WithAlphabet sets the characters texts are drawn from.
func WithAlphabet(alphabet string) Option {
	return func(o *Options) { o.Alphabet = alphabet }
}

// WithSeed sets the text generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithParallelism runs up to k cells at once. k < 1 is treated as 1.
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k < 1 {
			k = 1
		}
		o.Parallelism = k
	}
}

// WithPolicy replaces the skip policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p.Clone() }
}

// WithLogger sets the logger for run progress, skipped and failed cells.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock injects the time source used for cell timing.
func WithClock(c step.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

func (o Options) validate() error {
	if len(o.Lengths) == 0 {
		return fmt.Errorf("%w: no lengths", ErrInvalidConfig)
	}
	for _, n := range o.Lengths {
		if n < 0 {
			return fmt.Errorf("%w: negative length %d", ErrInvalidConfig, n)
		}
	}
	if o.Alphabet == "" || !utf8.ValidString(o.Alphabet) {
		return fmt.Errorf("%w: alphabet must be non-empty UTF-8", ErrInvalidConfig)
	}

	return nil
}
