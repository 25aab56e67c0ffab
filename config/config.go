package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultOutputDir is used when --output is not given.
	DefaultOutputDir = "dist"

	UsageLine = "usage: sitespec --spec <path> [--output <dir>] [--markdown] [--minify] [--normalize]"
)

// ErrUsage marks errors caused by invalid command-line input.
var ErrUsage = errors.New("invalid command line")

// UsageError describes a rejected command line. It matches ErrUsage.
type UsageError struct {
	Msg string
	// Reported is set when the flag package already printed the problem and usage.
	Reported bool
}

func (e *UsageError) Error() string { return e.Msg }

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Config holds the options of a single generator run.
type Config struct {
	SpecPath  string
	OutputDir string
	Markdown  bool
	Minify    bool
	Normalize bool
	LogLevel  string
	Version   bool
}

// Parse reads options from args. Usage text goes to output. -h/--help yields
// flag.ErrHelp; any other problem is a *UsageError.
func Parse(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := NewFlagSet(cfg, output)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &UsageError{Msg: err.Error(), Reported: true}
	}
	if fs.NArg() > 0 {
		return nil, usageErrorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewFlagSet binds the command-line flags to cfg.
func NewFlagSet(cfg *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("sitespec", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.SpecPath, "spec", "", "path to the JSON specification file (required)")
	fs.StringVar(&cfg.OutputDir, "output", DefaultOutputDir, "directory to write the generated site")
	fs.BoolVar(&cfg.Markdown, "markdown", false, "render section content as Markdown")
	fs.BoolVar(&cfg.Minify, "minify", false, "minify the generated HTML")
	fs.BoolVar(&cfg.Normalize, "normalize", false, "convert all text to Unicode normalization form C")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), UsageLine)
		fmt.Fprintln(fs.Output(), "\nGenerate a static website from a JSON specification.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}
	return fs
}

func (c *Config) applyDefaults() {
	c.SpecPath = strings.TrimSpace(c.SpecPath)
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = DefaultOutputDir
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return usageErrorf("unknown log level %q", c.LogLevel)
	}
	if c.Version {
		return nil
	}
	if c.SpecPath == "" {
		return usageErrorf("--spec is required")
	}
	return nil
}
