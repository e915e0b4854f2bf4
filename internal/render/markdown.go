package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/markz-studio/markz/internal/content"
	"github.com/markz-studio/markz/internal/sanitize"
)

// ProseRenderer renders edition copy (markdown) to sanitized HTML.
type ProseRenderer struct {
	md goldmark.Markdown
}

// NewProseRenderer creates a renderer with typographic quotes and dashes
// and bare-URL autolinking. Raw HTML in the source is dropped.
func NewProseRenderer() *ProseRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Typographer,
			extension.Linkify,
			extension.Strikethrough,
		),
	)
	return &ProseRenderer{md: md}
}

// Render converts markdown source to HTML safe to embed in the page.
func (r *ProseRenderer) Render(source string) (htmltemplate.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(strings.TrimSpace(source)), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return htmltemplate.HTML(sanitize.HTML(buf.Bytes())), nil
}

// Prose holds the rendered copy blocks of one edition.
type Prose struct {
	Manifesto htmltemplate.HTML
	About     htmltemplate.HTML
	Inquiry   htmltemplate.HTML
}

// RenderEdition renders every markdown block of ed.
func (r *ProseRenderer) RenderEdition(ed content.Edition) (Prose, error) {
	var p Prose
	blocks := []struct {
		name string
		src  string
		dst  *htmltemplate.HTML
	}{
		{"manifesto", ed.Manifesto, &p.Manifesto},
		{"about", ed.About, &p.About},
		{"inquiry", ed.Inquiry.Body, &p.Inquiry},
	}
	for _, b := range blocks {
		html, err := r.Render(b.src)
		if err != nil {
			return Prose{}, fmt.Errorf("edition %s %s: %w", ed.Name, b.name, err)
		}
		*b.dst = html
	}
	return p, nil
}
