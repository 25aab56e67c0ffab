package templatex

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FillsAllPlaceholders(t *testing.T) {
	engine, err := Default()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, engine.Name())

	var buf bytes.Buffer
	err = engine.Render(&buf, PageData{
		Title:    "My Site",
		Tagline:  "Hello world",
		Sections: `<section class="section">body</section>`,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>My Site</title>")
	assert.Contains(t, out, "<p>Hello world</p>")
	assert.Contains(t, out, `<section class="section">body</section>`)
	assert.NotContains(t, out, "{{")
}

func TestRender_DoesNotEscape(t *testing.T) {
	engine, err := Parse("inline", "{{.title}}|{{.tagline}}|{{.sections}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, PageData{Title: "<b>T</b>", Tagline: "a & b", Sections: "<hr>"}))

	assert.Equal(t, "<b>T</b>|a & b|<hr>", buf.String())
}

func TestRender_UnknownPlaceholderFails(t *testing.T) {
	engine, err := Parse("inline", "<h1>{{.title}}</h1>{{.footer}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = engine.Render(&buf, PageData{Title: "T", Tagline: "G"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "footer")
	assert.Zero(t, buf.Len())
}

func TestParse_MalformedTemplateFails(t *testing.T) {
	_, err := Parse("broken", "<h1>{{.title</h1>")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse template broken"))
}

func TestLoad_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"page.html": {Data: []byte("{{.title}} - {{.tagline}}")},
	}
	engine, err := Load(fsys, "page.html")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, PageData{Title: "A", Tagline: "B"}))
	assert.Equal(t, "A - B", buf.String())

	_, err = Load(fsys, "missing.html")
	assert.Error(t, err)
}
