package randomtext

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// Rand is the source of randomness used for seeding and sampling. It is
// satisfied by *math/rand/v2.Rand, so callers can inject a seeded source for
// reproducible runs, or a scripted one in tests.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the shared math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Generator is the entry point for building models and generating text from
// them. The zero value is not usable; create one with NewGenerator.
type Generator struct {
	rng    Rand
	logger *slog.Logger
}

// NewGenerator returns a Generator that samples from the shared math/rand/v2
// source. Logging is discarded until a logger is set with SetLogger.
func NewGenerator() *Generator {
	return &Generator{
		rng:    globalRand{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetRand replaces the Generator's default random source. Per-call sources
// can instead be supplied with the WithRand option.
func (g *Generator) SetRand(rng Rand) {
	if rng != nil {
		g.rng = rng
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}
