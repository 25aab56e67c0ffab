package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]string{"--spec", "site.json"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "site.json", cfg.SpecPath)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Markdown)
	assert.False(t, cfg.Minify)
	assert.False(t, cfg.Normalize)
}

func TestParse_AllFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-spec=site.json", "--output", "out/", "--markdown", "--minify", "--normalize", "--log-level", " DEBUG ",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "out/", cfg.OutputDir)
	assert.True(t, cfg.Markdown)
	assert.True(t, cfg.Minify)
	assert.True(t, cfg.Normalize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_BlankOutputFallsBack(t *testing.T) {
	cfg, err := Parse([]string{"--spec", "s.json", "--output", "  "}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestParse_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"missing spec":   {},
		"blank spec":     {"--spec", " "},
		"unknown flag":   {"--spec", "s.json", "--theme", "dark"},
		"positional arg": {"--spec", "s.json", "extra"},
		"bad log level":  {"--spec", "s.json", "--log-level", "loud"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(args, &bytes.Buffer{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage))
		})
	}
}

func TestParse_UsageErrorReporting(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"--output", "out"}, &out)

	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "--spec is required", usageErr.Error())
	assert.False(t, usageErr.Reported)
	assert.Empty(t, out.String())

	out.Reset()
	_, err = Parse([]string{"--theme", "dark"}, &out)
	require.True(t, errors.As(err, &usageErr))
	assert.True(t, usageErr.Reported)
	assert.Contains(t, out.String(), UsageLine)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "--spec <path>")
}

func TestParse_VersionWithoutSpec(t *testing.T) {
	cfg, err := Parse([]string{"--version"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, cfg.Version)
}
