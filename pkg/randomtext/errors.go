package randomtext

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrder is returned when a model is requested with a prefix
	// length below one.
	ErrInvalidOrder = errors.New("prefix length must be at least 1")

	// ErrInvalidLength is returned when the requested output length cannot
	// accommodate even the initial seed prefix.
	ErrInvalidLength = errors.New("output length must be at least the prefix length")

	// ErrNoSources is returned when a build is attempted with no input sources.
	ErrNoSources = errors.New("no input sources given")

	// ErrEmptyModel is returned when generation is attempted against a model
	// with no prefixes. A model produced by Build always has at least one key,
	// so this only fires on a model that was never trained.
	ErrEmptyModel = errors.New("model has no prefixes")

	// ErrUnknownSeed is returned when a caller-supplied seed prefix is not a
	// key of the model.
	ErrUnknownSeed = errors.New("seed prefix not present in model")

	// ErrCorpusTooShort is returned by Build when any single source holds
	// fewer characters than the prefix length. The whole build fails; a
	// partial model is never returned.
	ErrCorpusTooShort = errors.New("source too short for prefix length")

	// ErrGenerationGap is returned when the sliding window reaches a prefix
	// that was never observed in the corpus. Characters emitted before the
	// gap stay emitted; no further output is produced.
	ErrGenerationGap = errors.New("prefix never observed in corpus")
)

// CorpusError describes which source failed the minimum-length check during a
// build and how far it got. It unwraps to ErrCorpusTooShort.
type CorpusError struct {
	Source int // zero-based index into the Build source list
	Read   int // characters the source actually held
	Need   int // the prefix length
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("source %d: %d character(s) read, need %d: %s", e.Source, e.Read, e.Need, ErrCorpusTooShort)
}

func (e *CorpusError) Unwrap() error { return ErrCorpusTooShort }

// GapError describes where generation hit an unseen prefix. It unwraps to
// ErrGenerationGap.
type GapError struct {
	Prefix  string // the window contents that were never a model key
	Emitted int    // characters already written before the gap
}

func (e *GapError) Error() string {
	return fmt.Sprintf("after %d character(s), window %q: %s", e.Emitted, e.Prefix, ErrGenerationGap)
}

func (e *GapError) Unwrap() error { return ErrGenerationGap }
