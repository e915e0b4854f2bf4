// Package site assembles full pages from an edition, the accordion state
// and the clock. The HTTP server and the static export both render through it.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"time"

	g "maragu.dev/gomponents"

	"github.com/markz-studio/markz/internal/accordion"
	"github.com/markz-studio/markz/internal/cache"
	"github.com/markz-studio/markz/internal/content"
	"github.com/markz-studio/markz/internal/display"
	"github.com/markz-studio/markz/internal/render"
	markztemplate "github.com/markz-studio/markz/internal/template"
	"github.com/markz-studio/markz/internal/ui"
)

// ErrUnknownEdition is returned for edition names not in the catalog.
var ErrUnknownEdition = errors.New("unknown edition")

// Options configure a Site. Zero values select defaults.
type Options struct {
	Version   string
	Formatter *display.Formatter
	// Cache holds content fragments. Nil disables caching.
	Cache    *cache.Cache
	Renderer *markztemplate.Renderer
}

// Site renders pages for every edition of a catalog.
type Site struct {
	catalog *content.Catalog
	prose   map[string]render.Prose
	opts    Options
}

// Page is one rendered document.
type Page struct {
	HTML     []byte
	Edition  string
	Cache    cache.Status
	Expanded []string
	Duration time.Duration
}

// New renders the prose of every edition up front so markdown errors
// surface at startup rather than on the first request.
func New(catalog *content.Catalog, opts Options) (*Site, error) {
	if opts.Formatter == nil {
		opts.Formatter = display.NewFormatter(nil)
	}
	if opts.Renderer == nil {
		opts.Renderer = markztemplate.NewRenderer()
	}

	pr := render.NewProseRenderer()
	prose := make(map[string]render.Prose)
	for _, name := range catalog.Names() {
		ed, _ := catalog.Edition(name)
		p, err := pr.RenderEdition(ed)
		if err != nil {
			return nil, err
		}
		prose[name] = p
	}

	return &Site{catalog: catalog, prose: prose, opts: opts}, nil
}

// Catalog returns the catalog the site renders.
func (s *Site) Catalog() *content.Catalog {
	return s.catalog
}

// Render builds the page of edition name with the accordion state read from
// q. basePath is the path the toggle links point at. The clock is read
// exactly once so the printed date and year always agree.
func (s *Site) Render(name string, q url.Values, basePath string) (*Page, error) {
	start := time.Now()

	ed, ok := s.catalog.Edition(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEdition, name)
	}
	state := accordion.ParseState(q, ed.ServiceKeys())

	model := ui.PageModel{
		Edition:  ed,
		Prose:    s.prose[name],
		State:    state,
		BasePath: basePath,
	}

	fragment, status, err := s.fragment(model)
	if err != nil {
		return nil, err
	}

	model.Values = s.opts.Formatter.Current()

	html, err := s.opts.Renderer.RenderPage(markztemplate.PageData{
		Version: s.opts.Version,
		Edition: ed,
		State:   state.Query(),
		Body:    ui.Page(model, g.Raw(string(fragment))),
	})
	if err != nil {
		return nil, fmt.Errorf("edition %s: %w", name, err)
	}

	return &Page{
		HTML:     html,
		Edition:  name,
		Cache:    status,
		Expanded: state.Keys(),
		Duration: time.Since(start),
	}, nil
}

// fragment returns the clock-independent content block, from the cache
// when possible.
func (s *Site) fragment(m ui.PageModel) ([]byte, cache.Status, error) {
	if s.opts.Cache == nil {
		b, err := renderFragment(m)
		return b, cache.StatusBypass, err
	}

	key := cache.Key(m.Edition.Name, m.BasePath, m.State.CacheKey())
	entry, status := s.opts.Cache.Get(key)
	if status == cache.StatusHit {
		return entry.HTML, status, nil
	}

	b, err := renderFragment(m)
	if err != nil {
		return nil, status, err
	}
	s.opts.Cache.Put(key, cache.Entry{HTML: b})
	return b, status, nil
}

func renderFragment(m ui.PageModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := ui.Content(m).Render(&buf); err != nil {
		return nil, fmt.Errorf("edition %s: render content: %w", m.Edition.Name, err)
	}
	return buf.Bytes(), nil
}

// Editions lists every edition for the index page. The default edition
// links to "/"; the rest to "<base>/<name>".
func (s *Site) Editions(base string) []markztemplate.EditionLink {
	names := s.catalog.Names()
	links := make([]markztemplate.EditionLink, 0, len(names))
	for _, name := range names {
		ed, _ := s.catalog.Edition(name)
		link := markztemplate.EditionLink{
			Name:      name,
			Reference: ed.Reference,
			Href:      base + "/" + name,
		}
		if name == s.catalog.DefaultName() {
			link.Default = true
			link.Href = "/"
		}
		links = append(links, link)
	}
	return links
}

// Version is the build version stamped into every document.
func (s *Site) Version() string {
	return s.opts.Version
}

// Renderer returns the document renderer, for error pages.
func (s *Site) Renderer() *markztemplate.Renderer {
	return s.opts.Renderer
}
