package randomtext

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Build constructs a Markov model of the given prefix length from one or
// more character sources, consumed strictly in order. Every source must hold
// at least order characters; if any falls short, the whole build fails with
// an error unwrapping to ErrCorpusTooShort and no model is returned.
//
// Build reads the sources but does not own them: opening and closing is the
// caller's responsibility. The context is checked between sources.
func (g *Generator) Build(ctx context.Context, order int, sources ...io.Reader) (*Model, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	model, err := NewModel(order)
	if err != nil {
		return nil, err
	}

	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		read, err := g.trainSource(model, src, i)
		if err != nil {
			return nil, err
		}
		g.logger.DebugContext(ctx, "Source consumed",
			slog.Int("source", i),
			slog.Int("chars_read", read),
		)
	}

	g.logger.InfoContext(ctx, "Model built",
		slog.Int("order", order),
		slog.Int("sources", len(sources)),
		slog.Int("prefixes", model.Len()),
	)

	return model, nil
}

// trainSource feeds one source into the model: the first order runes form
// the initial prefix, then every further rune is recorded as a successor of
// the current window before the window slides over it. Returns the number of
// runes consumed.
func (g *Generator) trainSource(model *Model, src io.Reader, index int) (int, error) {
	br := bufio.NewReader(src)
	order := model.Order()
	window := make([]rune, 0, order)

	for len(window) < order {
		r, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return len(window), &CorpusError{Source: index, Read: len(window), Need: order}
			}
			return len(window), fmt.Errorf("read from source %d: %w", index, err)
		}
		window = append(window, r)
	}

	read := order
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return read, nil
			}
			return read, fmt.Errorf("read from source %d: %w", index, err)
		}
		model.Add(string(window), r)
		// Slide the window: drop the oldest rune, append the one just read.
		copy(window, window[1:])
		window[order-1] = r
		read++
	}
}
