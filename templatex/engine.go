package templatex

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"text/template"
)

const (
	// DefaultTemplate is the embedded page skeleton.
	DefaultTemplate = "templates/base.html"

	titleKey    = "title"
	taglineKey  = "tagline"
	sectionsKey = "sections"
)

//go:embed templates/*.html
var embedded embed.FS

// Engine fills the named placeholders of a single page template. Values are
// substituted verbatim; nothing is escaped.
type Engine struct {
	name      string
	templates *template.Template
}

// PageData carries the three values a page template may reference.
type PageData struct {
	Title    string
	Tagline  string
	Sections string
}

func (d PageData) values() map[string]string {
	return map[string]string{
		titleKey:    d.Title,
		taglineKey:  d.Tagline,
		sectionsKey: d.Sections,
	}
}

// Default returns an engine for the template compiled into the binary.
func Default() (*Engine, error) {
	return Load(embedded, DefaultTemplate)
}

// Load reads name from fsys and parses it.
func Load(fsys fs.FS, name string) (*Engine, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	return Parse(name, string(raw))
}

// Parse builds an engine from template text. Malformed placeholder syntax is
// reported here rather than at render time.
func Parse(name, text string) (*Engine, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return &Engine{name: name, templates: tpl}, nil
}

// Name reports the template the engine was built from.
func (e *Engine) Name() string {
	return e.name
}

// Render substitutes data into the template and writes the result to w.
// A placeholder that does not name one of the PageData values is an error,
// and in that case nothing is written.
func (e *Engine) Render(w io.Writer, data PageData) error {
	if e == nil || e.templates == nil {
		return fmt.Errorf("template engine not initialized")
	}
	var buf bytes.Buffer
	if err := e.templates.Execute(&buf, data.values()); err != nil {
		return fmt.Errorf("render template %s: %w", e.name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
