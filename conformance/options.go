package conformance

import (
	"go.uber.org/zap"

	"github.com/wippyai/wasm-nosandbox/errors"
)

const (
	DefaultSeed          uint64 = 0x5eed
	DefaultIterations           = 2000
	DefaultPages         uint32 = 1
	DefaultMaxMismatches        = 8

	maxPages = 1 << 16
)

type config struct {
	log           *zap.Logger
	only          []string
	seed          uint64
	iterations    int
	pages         uint32
	maxMismatches int
}

func defaultConfig() config {
	return config{
		log:           zap.NewNop(),
		seed:          DefaultSeed,
		iterations:    DefaultIterations,
		pages:         DefaultPages,
		maxMismatches: DefaultMaxMismatches,
	}
}

func (c *config) validate() error {
	if c.pages == 0 || c.pages > maxPages {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.pages).
			Detail("pages must be in [1, %d]", maxPages).
			Build()
	}
	if c.iterations < 0 {
		return errors.InvalidInput(errors.PhaseConfig, "iterations must not be negative")
	}
	if c.maxMismatches < 1 {
		return errors.InvalidInput(errors.PhaseConfig, "max mismatches must be positive")
	}
	if c.log == nil {
		return errors.NilPointer(errors.PhaseConfig, "logger")
	}
	return nil
}

// Option configures a Checker.
type Option func(*config)

// WithSeed sets the seed for random operands.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIterations sets how many random operand sets each intrinsic gets on
// top of the fixed edge cases.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}

// WithPages sets the size of the shared linear memory in 64KiB pages.
func WithPages(n uint32) Option {
	return func(c *config) { c.pages = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithIntrinsics restricts the checker to the named wasm mnemonics.
func WithIntrinsics(names ...string) Option {
	return func(c *config) { c.only = names }
}

// WithMaxMismatches caps the mismatches kept per intrinsic.
func WithMaxMismatches(n int) Option {
	return func(c *config) { c.maxMismatches = n }
}
