package randomtext

import (
	"context"
	"io"
	"strings"
	"testing"
)

// scriptRand returns a fixed sequence of draws, reduced modulo n so a script
// can never index out of range. It lets tests pin both the seeding draw and
// every sampling draw.
type scriptRand struct {
	draws []int
	pos   int
}

func (s *scriptRand) IntN(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	d := s.draws[s.pos%len(s.draws)]
	s.pos++
	return d % n
}

// buildModel trains a model from the given texts, failing the test on any error.
func buildModel(t *testing.T, order int, texts ...string) *Model {
	t.Helper()
	sources := make([]io.Reader, len(texts))
	for i, text := range texts {
		sources[i] = strings.NewReader(text)
	}
	model, err := NewGenerator().Build(context.Background(), order, sources...)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return model
}
