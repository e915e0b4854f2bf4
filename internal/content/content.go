package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEdition is returned when an edition file fails validation.
var ErrInvalidEdition = errors.New("invalid edition")

// ServiceCount is the number of service offerings every edition advertises.
const ServiceCount = 4

// IconSet selects how social links are drawn.
type IconSet string

const (
	IconsSVG  IconSet = "svg"
	IconsText IconSet = "text"
)

// ServiceOffering is one category of work shown as an accordion.
type ServiceOffering struct {
	Key           string   `yaml:"key"`
	SequenceLabel string   `yaml:"label"`
	Title         string   `yaml:"title"`
	Features      []string `yaml:"features"`
}

// PortfolioProject is an entry in the archive list.
type PortfolioProject struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// FeaturedProject is the archive entry that links out instead of carrying a category.
type FeaturedProject struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	LinkLabel   string `yaml:"link_label"`
	Description string `yaml:"description"`
}

// PersonnelEntry is one team member. Empty XURL or InstagramURL means absent.
type PersonnelEntry struct {
	Name         string `yaml:"name"`
	LinkedInURL  string `yaml:"linkedin"`
	XURL         string `yaml:"x,omitempty"`
	InstagramURL string `yaml:"instagram,omitempty"`
}

// HasX reports whether the entry links an X profile.
func (p PersonnelEntry) HasX() bool { return p.XURL != "" }

// HasInstagram reports whether the entry links an Instagram profile.
func (p PersonnelEntry) HasInstagram() bool { return p.InstagramURL != "" }

type Logo struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

type Archive struct {
	Heading  string             `yaml:"heading"`
	Featured FeaturedProject    `yaml:"featured"`
	Projects []PortfolioProject `yaml:"projects"`
}

type Inquiry struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Email   string `yaml:"email"`
}

type Colophon struct {
	Studio string   `yaml:"studio"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
}

// Edition is one presentation of the page. Manifesto, About and
// Inquiry.Body are markdown.
type Edition struct {
	Name        string            `yaml:"name"`
	Default     bool              `yaml:"default"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Reference   string            `yaml:"reference"`
	Brand       string            `yaml:"brand"`
	Tagline     string            `yaml:"tagline"`
	Logo        Logo              `yaml:"logo"`
	Icons       IconSet           `yaml:"icons"`
	Breakpoints []string          `yaml:"breakpoints"`
	Manifesto   string            `yaml:"manifesto"`
	Services    []ServiceOffering `yaml:"services"`
	Archive     Archive           `yaml:"archive"`
	About       string            `yaml:"about"`
	Personnel   []PersonnelEntry  `yaml:"personnel"`
	Inquiry     Inquiry           `yaml:"inquiry"`
	Colophon    Colophon          `yaml:"colophon"`
	Watermark   string            `yaml:"watermark"`
}

// MailtoURL returns the contact link for the inquiry block.
func (e Edition) MailtoURL() string {
	return "mailto:" + e.Inquiry.Email
}

// Service returns the offering with the given key.
func (e Edition) Service(key string) (ServiceOffering, bool) {
	for _, s := range e.Services {
		if s.Key == key {
			return s.clone(), true
		}
	}
	return ServiceOffering{}, false
}

// ServiceKeys returns the offering keys in page order.
func (e Edition) ServiceKeys() []string {
	keys := make([]string, len(e.Services))
	for i, s := range e.Services {
		keys[i] = s.Key
	}
	return keys
}

func (s ServiceOffering) clone() ServiceOffering {
	s.Features = slices.Clone(s.Features)
	return s
}

// Clone returns a deep copy so callers cannot reach the catalog's slices.
func (e Edition) Clone() Edition {
	out := e
	out.Breakpoints = slices.Clone(e.Breakpoints)
	out.Services = make([]ServiceOffering, len(e.Services))
	for i, s := range e.Services {
		out.Services[i] = s.clone()
	}
	out.Archive.Projects = slices.Clone(e.Archive.Projects)
	out.Personnel = slices.Clone(e.Personnel)
	out.Colophon.Left = slices.Clone(e.Colophon.Left)
	out.Colophon.Right = slices.Clone(e.Colophon.Right)
	return out
}

// Catalog holds every edition loaded at startup. It is never mutated after Load.
type Catalog struct {
	editions    map[string]Edition
	defaultName string
}

// Load decodes and validates every content/*.yaml file in fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "content/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob content: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no edition files found under content/")
	}

	c := &Catalog{editions: make(map[string]Edition, len(files))}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		ed, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if _, dup := c.editions[ed.Name]; dup {
			return nil, fmt.Errorf("%s: %w: duplicate edition name %q", path.Base(name), ErrInvalidEdition, ed.Name)
		}
		if ed.Default {
			if c.defaultName != "" {
				return nil, fmt.Errorf("%s: %w: %q and %q both marked default", path.Base(name), ErrInvalidEdition, c.defaultName, ed.Name)
			}
			c.defaultName = ed.Name
		}
		c.editions[ed.Name] = ed
	}

	if c.defaultName == "" {
		c.defaultName = c.Names()[0]
	}
	return c, nil
}

// Parse decodes a single edition document and validates it.
func Parse(data []byte) (Edition, error) {
	var ed Edition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ed); err != nil {
		return Edition{}, fmt.Errorf("decode edition: %w", err)
	}
	if ed.Icons == "" {
		ed.Icons = IconsSVG
	}
	if err := Validate(ed); err != nil {
		return Edition{}, err
	}
	return ed, nil
}

// Validate checks the structural rules every edition must satisfy.
func Validate(ed Edition) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(ed.Name) == "" {
		fail("name is required")
	}
	switch ed.Icons {
	case IconsSVG, IconsText:
	default:
		fail("icons must be %q or %q, got %q", IconsSVG, IconsText, ed.Icons)
	}
	for _, bp := range ed.Breakpoints {
		if !slices.Contains(KnownBreakpoints, bp) {
			fail("unknown breakpoint %q", bp)
		}
	}

	if len(ed.Services) != ServiceCount {
		fail("want %d services, got %d", ServiceCount, len(ed.Services))
	}
	seen := make(map[string]bool, len(ed.Services))
	for i, s := range ed.Services {
		switch {
		case s.Key == "":
			fail("service %d: key is required", i)
		case seen[s.Key]:
			fail("service %d: duplicate key %q", i, s.Key)
		}
		seen[s.Key] = true
		if s.Title == "" {
			fail("service %q: title is required", s.Key)
		}
		if len(s.Features) == 0 {
			fail("service %q: at least one feature is required", s.Key)
		}
	}

	if len(ed.Archive.Projects) == 0 {
		fail("archive: at least one project is required")
	}
	if ed.Archive.Featured.URL != "" && !isHTTPS(ed.Archive.Featured.URL) {
		fail("archive: featured url %q must be an absolute https URL", ed.Archive.Featured.URL)
	}

	for i, p := range ed.Personnel {
		if p.Name == "" {
			fail("personnel %d: name is required", i)
		}
		if !isHTTPS(p.LinkedInURL) {
			fail("personnel %q: linkedin %q must be an absolute https URL", p.Name, p.LinkedInURL)
		}
		if p.HasX() && !isHTTPS(p.XURL) {
			fail("personnel %q: x %q must be an absolute https URL", p.Name, p.XURL)
		}
		if p.HasInstagram() && !isHTTPS(p.InstagramURL) {
			fail("personnel %q: instagram %q must be an absolute https URL", p.Name, p.InstagramURL)
		}
	}

	if ed.Inquiry.Email == "" || !strings.Contains(ed.Inquiry.Email, "@") {
		fail("inquiry: email %q is invalid", ed.Inquiry.Email)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidEdition, ed.Name, errors.Join(errs...))
	}
	return nil
}

// KnownBreakpoints lists the responsive steps an edition may enable.
var KnownBreakpoints = []string{"sm", "md", "lg"}

func isHTTPS(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme == "https" && u.Host != ""
}

// Edition returns a copy of the named edition.
func (c *Catalog) Edition(name string) (Edition, bool) {
	ed, ok := c.editions[name]
	if !ok {
		return Edition{}, false
	}
	return ed.Clone(), true
}

// Default returns a copy of the default edition.
func (c *Catalog) Default() Edition {
	return c.editions[c.defaultName].Clone()
}

// DefaultName returns the name of the default edition.
func (c *Catalog) DefaultName() string {
	return c.defaultName
}

// Names returns every edition name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.editions))
	for name := range c.editions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithDefault returns a catalog whose default edition is name.
func (c *Catalog) WithDefault(name string) (*Catalog, error) {
	if _, ok := c.editions[name]; !ok {
		return nil, fmt.Errorf("unknown edition %q (have %s)", name, strings.Join(c.Names(), ", "))
	}
	return &Catalog{editions: c.editions, defaultName: name}, nil
}
