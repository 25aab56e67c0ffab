package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/iedon/sitespec/config"
	"github.com/iedon/sitespec/site"
	"github.com/iedon/sitespec/spec"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) && usageErr.Reported {
			return exitUsage
		}
		fmt.Fprintln(stderr, config.UsageLine)
		fmt.Fprintf(stderr, "%s: error: %v\n", APP_NAME, err)
		return exitUsage
	}

	if cfg.Version {
		fmt.Fprintln(stdout, APP_SIGNATURE)
		return exitOK
	}

	logger := newLogger(cfg.LogLevel, stderr)
	logger.Debug("starting", "spec", cfg.SpecPath, "output", cfg.OutputDir)

	siteSpec, err := spec.Load(cfg.SpecPath)
	if err != nil {
		usageError(stderr, logger, err)
		return exitUsage
	}
	if cfg.Normalize {
		siteSpec = spec.NormalizeNFC(siteSpec)
	}
	logger.Debug("spec loaded", "title", siteSpec.Title, "sections", len(siteSpec.Sections), "normalized", cfg.Normalize)

	r, err := site.NewRenderer(site.Options{
		Markdown: cfg.Markdown,
		Minify:   cfg.Minify,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", APP_NAME, err)
		return exitFailed
	}

	outputPath, err := r.Generate(siteSpec, cfg.OutputDir)
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", APP_NAME, err)
		return exitFailed
	}

	fmt.Fprintf(stdout, "Site generated at %s\n", outputPath)
	return exitOK
}

// usageError reports a bad spec the way a rejected command line is reported.
func usageError(w io.Writer, logger *slog.Logger, err error) {
	var specErr *spec.Error
	if errors.As(err, &specErr) {
		logger.Debug("spec rejected", "field", specErr.Field, "index", specErr.Index)
	}
	fmt.Fprintln(w, config.UsageLine)
	fmt.Fprintf(w, "%s: error: %v\n", APP_NAME, err)
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
