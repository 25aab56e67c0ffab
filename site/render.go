package site

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iedon/sitespec/spec"
	"github.com/iedon/sitespec/templatex"
)

const emptySectionsMarkup = `<section class="section"><p>Add your first section in the JSON spec.</p></section>`

// RenderPage produces the complete HTML document for site.
func (r *Renderer) RenderPage(site *spec.SiteSpec) ([]byte, error) {
	if site == nil {
		return nil, ErrNilSpec
	}

	sections, err := r.RenderSections(site.Sections)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	data := templatex.PageData{
		Title:    site.Title,
		Tagline:  site.Tagline,
		Sections: sections,
	}
	if err := r.templates.Render(&buf, data); err != nil {
		return nil, err
	}
	r.logger.Debug("page rendered", "template", r.templates.Name(), "sections", len(site.Sections))

	if !r.minify {
		return buf.Bytes(), nil
	}
	return r.content.MinifyHTML(buf.Bytes())
}

// RenderSections builds the markup for the sections list. Heading and content
// are inserted as-is without HTML escaping. An empty list yields a single
// placeholder block.
func (r *Renderer) RenderSections(sections []spec.Section) (string, error) {
	if len(sections) == 0 {
		return emptySectionsMarkup, nil
	}

	blocks := make([]string, 0, len(sections))
	for i, section := range sections {
		body, err := r.sectionBody(section.Content)
		if err != nil {
			return "", fmt.Errorf("section %d: %w", i+1, err)
		}
		blocks = append(blocks, strings.Join([]string{
			`<section class="section">`,
			"  <h2>" + section.Heading + "</h2>",
			"  " + body,
			"</section>",
		}, "\n"))
	}
	return strings.Join(blocks, "\n"), nil
}

func (r *Renderer) sectionBody(content string) (string, error) {
	if !r.markdown {
		return "<p>" + content + "</p>", nil
	}
	html, err := r.content.Render([]byte(content))
	if err != nil {
		return "", err
	}
	return string(html), nil
}
