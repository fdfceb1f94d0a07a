package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/HarryZ10/randomwriter/pkg/randomtext"
	"github.com/joho/godotenv"
)

// Exit codes, fixed for scripting:
//
//	0 - success
//	1 - invalid arguments
//	2 - insufficient text to satisfy k or n (a too-short source, or a
//	    generation-time window never seen in the corpus)
const (
	exitSuccess           = 0
	exitInvalidArguments  = 1
	exitInsufficientChars = 2
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(fs *flag.FlagSet, stderr io.Writer) {
	fmt.Fprintf(stderr, "Usage: randomwriter [flags] <k> <n> <file> [file...]\n\n")
	fmt.Fprintf(stderr, "Builds an order-k character Markov model from the input files and\n")
	fmt.Fprintf(stderr, "writes n generated characters to stdout.\n\nFlags:\n")
	fs.PrintDefaults()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	defaultConfigPath := "./config.json"
	if env := os.Getenv("RANDOMWRITER_CONFIG"); env != "" {
		defaultConfigPath = env
	}

	fs := flag.NewFlagSet("randomwriter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", defaultConfigPath, "path to the JSON config file")
	seed := fs.Uint64("seed", 0, "fixed random seed (0 picks one automatically)")
	start := fs.String("start", "", "prefix to start generation from instead of a random one")
	logLevel := fs.String("log-level", "", "override the configured log level (debug|info|warn|error)")
	showVersion := fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return exitInvalidArguments
	}

	if *showVersion {
		fmt.Fprintf(stdout, "randomwriter %s (%s, built %s)\n", Version, Commit, BuildDate)
		return exitSuccess
	}

	rest := fs.Args()
	if len(rest) < 3 {
		fs.Usage()
		return exitInvalidArguments
	}

	order, err := strconv.Atoi(rest[0])
	if err != nil || order < 1 {
		fmt.Fprintf(stderr, "randomwriter: invalid prefix length %q\n", rest[0])
		return exitInvalidArguments
	}
	length, err := strconv.Atoi(rest[1])
	if err != nil || length < 0 {
		fmt.Fprintf(stderr, "randomwriter: invalid output length %q\n", rest[1])
		return exitInvalidArguments
	}
	if length < order {
		fmt.Fprintf(stderr, "randomwriter: output length %d is shorter than prefix length %d\n", length, order)
		return exitInvalidArguments
	}
	files := rest[2:]

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "randomwriter: %v\n", err)
		return exitInvalidArguments
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))

	g := randomtext.NewGenerator()
	g.SetLogger(logger)
	if *seed != 0 {
		g.SetRand(rand.New(rand.NewPCG(*seed, 0)))
	}

	started := time.Now()
	rec := runRecord{
		startedAt: started,
		order:     order,
		length:    length,
		sources:   files,
	}

	model, err := buildFromFiles(ctx, g, order, files)
	if err != nil {
		logger.Error("Model build failed", "error", err)
		code := classify(err)
		if config.HistoryPath != "" {
			rec.outcome = outcomeName(code)
			rec.duration = time.Since(started)
			recordRun(config.HistoryPath, rec, logger)
		}
		return code
	}

	stats := model.Stats()
	logger.Debug("Model built",
		"order", order,
		"prefixes", stats.Prefixes,
		"transitions", stats.Transitions,
		"alphabet", stats.Alphabet,
		"max_fanout", stats.MaxFanout,
	)

	out := bufio.NewWriter(stdout)
	var opts []randomtext.GenerateOption
	if *start != "" {
		opts = append(opts, randomtext.WithSeedPrefix(*start))
	}

	emitted, genErr := g.GenerateTo(ctx, model, length, out, opts...)
	if err := out.Flush(); err != nil && genErr == nil {
		genErr = err
	}

	code := exitSuccess
	if genErr != nil {
		logger.Error("Generation failed", "emitted", emitted, "error", genErr)
		code = classify(genErr)
	} else {
		// Trailing newline after a complete run, like any well-behaved filter.
		fmt.Fprintln(stdout)
	}

	rec.emitted = emitted
	rec.outcome = outcomeName(code)
	rec.duration = time.Since(started)
	if config.HistoryPath != "" {
		recordRun(config.HistoryPath, rec, logger)
	}

	return code
}

// buildFromFiles opens every named file, builds the model, and guarantees
// the files are closed even when the build fails partway through a source.
func buildFromFiles(ctx context.Context, g *randomtext.Generator, order int, paths []string) (*randomtext.Model, error) {
	sources := make([]io.Reader, 0, len(paths))
	defer func() {
		for _, src := range sources {
			_ = src.(*os.File).Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		sources = append(sources, f)
	}

	return g.Build(ctx, order, sources...)
}

// classify maps an error from the core library onto the fixed exit codes.
// Corpus-insufficiency and generation-gap failures are distinct causes
// internally but share one externally visible code.
func classify(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, randomtext.ErrCorpusTooShort),
		errors.Is(err, randomtext.ErrGenerationGap),
		errors.Is(err, randomtext.ErrEmptyModel):
		return exitInsufficientChars
	default:
		return exitInvalidArguments
	}
}

func outcomeName(code int) string {
	switch code {
	case exitSuccess:
		return "success"
	case exitInsufficientChars:
		return "insufficient_characters"
	default:
		return "invalid_arguments"
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
