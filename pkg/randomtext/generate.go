package randomtext

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	rng        Rand
	seedPrefix string
}

// GenerateOption is a function that configures generation parameters. It's
// used as a variadic argument in Generate and GenerateTo.
type GenerateOption func(*generateOptions)

// WithRand sets the random source for a single generation run, overriding
// the Generator's default. Supplying a seeded source makes the output fully
// deterministic.
func WithRand(rng Rand) GenerateOption {
	return func(o *generateOptions) { o.rng = rng }
}

// WithSeedPrefix starts generation from the given prefix instead of one
// chosen at random. The prefix must be a key of the model; if it is not,
// generation fails with ErrUnknownSeed before any output is produced.
func WithSeedPrefix(prefix string) GenerateOption {
	return func(o *generateOptions) { o.seedPrefix = prefix }
}

// Generate synthesizes exactly length characters from the model and returns
// them as a single string. It is a buffered convenience wrapper around
// GenerateTo.
func (g *Generator) Generate(ctx context.Context, model *Model, length int, opts ...GenerateOption) (string, error) {
	var sb strings.Builder
	if _, err := g.GenerateTo(ctx, model, length, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GenerateTo synthesizes exactly length characters from the model, writing
// each one to w as it is produced so a consumer observes output
// incrementally. The first Order() characters are a prefix chosen uniformly
// at random over the model's distinct keys (or the WithSeedPrefix option);
// every further character is sampled uniformly over the successor
// occurrences recorded for the current window, which then slides forward.
//
// It returns the number of characters written. If the window drifts to a
// prefix never observed in the corpus, generation halts with an error
// unwrapping to ErrGenerationGap; characters already written stay written.
func (g *Generator) GenerateTo(ctx context.Context, model *Model, length int, w io.Writer, opts ...GenerateOption) (int, error) {
	options := &generateOptions{rng: g.rng}
	for _, opt := range opts {
		opt(options)
	}

	if model == nil || model.Len() == 0 {
		return 0, ErrEmptyModel
	}

	order := model.Order()
	if length < order {
		return 0, fmt.Errorf("length %d with prefix length %d: %w", length, order, ErrInvalidLength)
	}

	seed := options.seedPrefix
	if seed == "" {
		seed = model.randomKey(options.rng)
	} else if !model.Contains(seed) {
		return 0, fmt.Errorf("%q: %w", seed, ErrUnknownSeed)
	}

	if _, err := io.WriteString(w, seed); err != nil {
		return 0, fmt.Errorf("write seed: %w", err)
	}

	window := []rune(seed)
	emitted := order

	for emitted < length {
		if err := ctx.Err(); err != nil {
			return emitted, err
		}

		succ := model.Successors(string(window))
		if len(succ) == 0 { // Dead end in chain
			g.logger.DebugContext(ctx, "Generation halted at unseen prefix",
				slog.String("window", string(window)),
				slog.Int("emitted", emitted),
			)
			return emitted, &GapError{Prefix: string(window), Emitted: emitted}
		}

		next := succ[options.rng.IntN(len(succ))]
		if _, err := io.WriteString(w, string(next)); err != nil {
			return emitted, fmt.Errorf("write character: %w", err)
		}

		copy(window, window[1:])
		window[order-1] = next
		emitted++
	}

	g.logger.DebugContext(ctx, "Generation completed",
		slog.Int("length", emitted),
		slog.String("seed", seed),
	)

	return emitted, nil
}
