package randomtext

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	model := buildModel(t, 2, "ababab")

	if model.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", model.Len())
	}
	// Every window's successor is recorded once per occurrence.
	if got := string(model.Successors("ab")); got != "aa" {
		t.Errorf("Successors(ab) = %q, want %q", got, "aa")
	}
	if got := string(model.Successors("ba")); got != "bb" {
		t.Errorf("Successors(ba) = %q, want %q", got, "bb")
	}
}

func TestBuildErrors(t *testing.T) {
	g := NewGenerator()
	ctx := context.Background()

	testCases := []struct {
		name    string
		order   int
		texts   []string
		wantErr error
	}{
		{name: "source shorter than order", order: 2, texts: []string{"a"}, wantErr: ErrCorpusTooShort},
		{name: "empty source", order: 1, texts: []string{""}, wantErr: ErrCorpusTooShort},
		{name: "short source among long ones", order: 3, texts: []string{"abcdefgh", "ab", "ijklmnop"}, wantErr: ErrCorpusTooShort},
		{name: "no sources", order: 2, texts: nil, wantErr: ErrNoSources},
		{name: "invalid order", order: 0, texts: []string{"abc"}, wantErr: ErrInvalidOrder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sources := make([]io.Reader, len(tc.texts))
			for i, text := range tc.texts {
				sources[i] = strings.NewReader(text)
			}
			model, err := g.Build(ctx, tc.order, sources...)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tc.wantErr)
			}
			if model != nil {
				t.Error("Build() returned a partial model alongside an error")
			}
		})
	}
}

func TestBuildCorpusErrorDetail(t *testing.T) {
	g := NewGenerator()
	_, err := g.Build(context.Background(), 3, strings.NewReader("abcd"), strings.NewReader("xy"))

	var ce *CorpusError
	if !errors.As(err, &ce) {
		t.Fatalf("Build() error = %v, want a *CorpusError", err)
	}
	if ce.Source != 1 || ce.Read != 2 || ce.Need != 3 {
		t.Errorf("CorpusError = %+v, want {Source:1 Read:2 Need:3}", ce)
	}
}

// TestBuildMultipleSources checks that sources accumulate into one shared
// model and that the key set and per-key successor multisets do not depend
// on source order.
func TestBuildMultipleSources(t *testing.T) {
	forward := buildModel(t, 2, "abcab", "bcabc")
	reversed := buildModel(t, 2, "bcabc", "abcab")

	if forward.Len() != reversed.Len() {
		t.Fatalf("key counts differ: %d vs %d", forward.Len(), reversed.Len())
	}
	for _, key := range forward.Keys() {
		a := append([]rune(nil), forward.Successors(key)...)
		b := append([]rune(nil), reversed.Successors(key)...)
		if len(a) != len(b) {
			t.Fatalf("key %q: successor counts differ: %d vs %d", key, len(a), len(b))
		}
		sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
		sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
		if string(a) != string(b) {
			t.Errorf("key %q: successor multisets differ: %q vs %q", key, string(a), string(b))
		}
	}
}

// TestBuildDeterministic checks that repeated builds over identical inputs
// produce identical models.
func TestBuildDeterministic(t *testing.T) {
	first := buildModel(t, 2, "one fish two fish", "red fish blue fish")
	second := buildModel(t, 2, "one fish two fish", "red fish blue fish")

	if first.Len() != second.Len() {
		t.Fatalf("key counts differ: %d vs %d", first.Len(), second.Len())
	}
	for _, key := range first.Keys() {
		if string(first.Successors(key)) != string(second.Successors(key)) {
			t.Errorf("key %q: successors differ: %q vs %q",
				key, string(first.Successors(key)), string(second.Successors(key)))
		}
	}
}

// TestBuildExactOrderSource checks that a source of exactly order characters
// passes the length check but contributes no keys: its only window is the
// trailing prefix, which has no successor.
func TestBuildExactOrderSource(t *testing.T) {
	model := buildModel(t, 3, "abc")
	if model.Len() != 0 {
		t.Errorf("Len() = %d, want 0", model.Len())
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Build(ctx, 2, strings.NewReader("abcdef"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

func TestBuildMultibyte(t *testing.T) {
	model := buildModel(t, 2, "ααβαα")

	if got := string(model.Successors("αα")); got != "β" {
		t.Errorf("Successors(αα) = %q, want %q", got, "β")
	}
	if got := string(model.Successors("αβ")); got != "α" {
		t.Errorf("Successors(αβ) = %q, want %q", got, "α")
	}
	if got := string(model.Successors("βα")); got != "α" {
		t.Errorf("Successors(βα) = %q, want %q", got, "α")
	}
}

func BenchmarkBuild(b *testing.B) {
	corpus := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)
	g := NewGenerator()
	ctx := context.Background()

	b.SetBytes(int64(len(corpus)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := g.Build(ctx, 4, strings.NewReader(corpus)); err != nil {
			b.Fatalf("Build() failed: %v", err)
		}
	}
}
