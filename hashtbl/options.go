package hashtbl

import (
	"go.uber.org/zap"
)

const (
	// DefaultSize is the bucket count of a table built without WithSize.
	DefaultSize = 11
	// DefaultMaxLoadFactor is used when no load factor is configured.
	DefaultMaxLoadFactor = 1.0
)

type config struct {
	size          int
	maxLoadFactor float64
	logger        *zap.Logger
}

// Option configures a Table at construction.
type Option func(*config)

// WithSize sets the initial bucket count. It is rounded up to the next prime
// if it is not prime already.
func WithSize(n int) Option {
	return func(c *config) {
		c.size = n
	}
}

// WithMaxLoadFactor sets the load factor above which an insert grows the
// table. Zero is allowed and grows the table on nearly every insert.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		c.maxLoadFactor = f
	}
}

// WithLogger sets the logger used for rehash and configuration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	c := config{
		size:          DefaultSize,
		maxLoadFactor: DefaultMaxLoadFactor,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.size < 0 {
		c.logger.Warn("negative table size, using default",
			zap.Int("size", c.size), zap.Int("default", DefaultSize))
		c.size = DefaultSize
	}
	if !validLoadFactor(c.maxLoadFactor) {
		c.logger.Warn("invalid max load factor, using default",
			zap.Float64("max_load_factor", c.maxLoadFactor),
			zap.Float64("default", DefaultMaxLoadFactor))
		c.maxLoadFactor = DefaultMaxLoadFactor
	}
	return c
}

func validLoadFactor(f float64) bool {
	// written so that NaN fails too
	return f >= 0
}
