package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/crimson-sun/debuglog/internal/config"
	"github.com/crimson-sun/debuglog/internal/demo"
	"github.com/crimson-sun/debuglog/internal/logging"
	"github.com/crimson-sun/debuglog/internal/output"
	"github.com/crimson-sun/debuglog/internal/output/file"
	"github.com/crimson-sun/debuglog/internal/output/multi"
	"github.com/crimson-sun/debuglog/internal/output/stream"
	"github.com/crimson-sun/debuglog/pkg/debuglog"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.HasSink(config.SinkStderr), logging.ParseLevel(cfg.LogLevel))

	log := slog.With("run_id", uuid.NewString())
	log.Info("debuglog-demo: starting", "version", config.Version)

	// The demonstration always completes; bad settings fall back to defaults.
	if err := cfg.Validate(); err != nil {
		log.Warn("invalid configuration, using defaults where needed", "error", err)
	}

	out := buildOutput(cfg, log)
	l, err := debuglog.New(
		debuglog.WithSink(out),
		debuglog.WithNormalization(cfg.Render.Normalization),
	)
	if err != nil {
		log.Warn("falling back to unnormalized output", "error", err)
		l, _ = debuglog.New(debuglog.WithSink(out))
	}
	debuglog.SetDefault(l)
	defer func() {
		if err := l.Close(); err != nil {
			log.Warn("closing debug output", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, stopping...\n", sig)
		cancel()
	}()

	if err := demo.New(l, demo.Sequence()).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("demonstration stopped", "error", err)
	}
	log.Info("debuglog-demo: done")
}

// buildOutput assembles the configured sinks. Sinks that cannot be opened
// or are unknown are skipped with a warning; if none remain, stderr is used.
func buildOutput(cfg config.Config, log *slog.Logger) output.Output {
	settings := output.Settings{
		FilePath:    cfg.Output.FilePath,
		FileMaxSize: cfg.Output.FileMaxSize,
	}

	var outs []output.Output
	seen := map[string]bool{}
	for _, name := range cfg.Output.Sinks {
		if seen[name] {
			continue
		}
		seen[name] = true

		ctor, err := output.Get(name)
		if err != nil {
			log.Warn("skipping unknown sink", "sink", name, "registered", output.Sinks())
			continue
		}
		out, err := ctor(settings)
		if err != nil {
			log.Warn("skipping "+name+" sink", "error", err)
			continue
		}
		if f, ok := out.(*file.Output); ok {
			log.Debug("file sink opened", "path", cfg.Output.FilePath, "compressed", f.Compressed())
		}
		outs = append(outs, out)
	}

	switch len(outs) {
	case 0:
		return stream.Stderr()
	case 1:
		return outs[0]
	default:
		return multi.New(outs...)
	}
}
