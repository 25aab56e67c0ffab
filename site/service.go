package site

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/iedon/sitespec/fsutil"
	"github.com/iedon/sitespec/renderer"
	"github.com/iedon/sitespec/spec"
	"github.com/iedon/sitespec/templatex"
)

// OutputFile is the name of the page written into the output directory.
const OutputFile = "index.html"

// Options configures a Renderer.
type Options struct {
	// Templates defaults to the embedded page template when nil.
	Templates *templatex.Engine
	// Markdown renders section content as Markdown instead of literal text.
	Markdown bool
	// Minify compacts the finished document.
	Minify bool
	Logger *slog.Logger
}

// Renderer turns a validated spec into the final page and persists it.
type Renderer struct {
	templates *templatex.Engine
	content   *renderer.Renderer
	markdown  bool
	minify    bool
	logger    *slog.Logger
}

// NewRenderer constructs a Renderer instance.
func NewRenderer(opts Options) (*Renderer, error) {
	templates := opts.Templates
	if templates == nil {
		var err error
		templates, err = templatex.Default()
		if err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{
		templates: templates,
		content:   renderer.New(),
		markdown:  opts.Markdown,
		minify:    opts.Minify,
		logger:    logger,
	}, nil
}

// Generate writes index.html for site into outputDir, creating the directory
// when needed and replacing any previous page. The returned path is
// outputDir with the file name appended, not cleaned. The page is rendered
// completely before anything touches disk, so a failure leaves no partial output.
func (r *Renderer) Generate(site *spec.SiteSpec, outputDir string) (string, error) {
	page, err := r.RenderPage(site)
	if err != nil {
		return "", err
	}

	if err := fsutil.EnsureDir(outputDir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	target := outputPath(outputDir)
	if err := fsutil.WriteFileAtomic(target, page, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	r.logger.Debug("page written", "path", target, "bytes", len(page))
	return target, nil
}

// outputPath appends OutputFile to dir without cleaning it, so the caller
// gets back the path as they spelled it.
func outputPath(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + OutputFile
	}
	return dir + string(filepath.Separator) + OutputFile
}
