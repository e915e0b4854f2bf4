package site

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	markzembed "github.com/markz-studio/markz/embed"
	"github.com/markz-studio/markz/internal/cache"
	"github.com/markz-studio/markz/internal/content"
	"github.com/markz-studio/markz/internal/display"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestSite(t *testing.T, c *cache.Cache) (*Site, *fakeClock) {
	t.Helper()
	catalog, err := content.Load(markzembed.Assets)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)}
	s, err := New(catalog, Options{
		Version:   "v0.1.0-test",
		Formatter: display.NewFormatter(time.UTC).WithClock(clock.Now),
		Cache:     c,
	})
	require.NoError(t, err)
	return s, clock
}

func TestRender_DefaultEdition(t *testing.T) {
	s, _ := newTestSite(t, cache.New(time.Minute, 1<<20))

	page, err := s.Render("v3", nil, "/")
	require.NoError(t, err)

	html := string(page.HTML)
	assert.Equal(t, "v3", page.Edition)
	assert.Empty(t, page.Expanded)
	assert.Contains(t, html, `data-edition="v3"`)
	assert.Contains(t, html, `<div id="mz-date">October 19, 2026</div>`)
	assert.Contains(t, html, "© 2026 Mark Z Studio")
	assert.NotContains(t, html, "mz-accordion-panel")
	assert.Equal(t, 4, strings.Count(html, `data-expanded="false"`))
}

func TestRender_FragmentCache(t *testing.T) {
	s, _ := newTestSite(t, cache.New(time.Minute, 1<<20))

	first, err := s.Render("v3", nil, "/")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusMiss, first.Cache)

	second, err := s.Render("v3", nil, "/")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusHit, second.Cache)
	assert.Equal(t, string(first.HTML), string(second.HTML))

	other, err := s.Render("v3", url.Values{"open": {"01"}}, "/")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusMiss, other.Cache)
}

func TestRender_DateStaysLiveOnCacheHit(t *testing.T) {
	s, clock := newTestSite(t, cache.New(time.Hour, 1<<20))

	clock.now = time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
	before, err := s.Render("v3", nil, "/")
	require.NoError(t, err)
	assert.Contains(t, string(before.HTML), "December 31, 2026")
	assert.Contains(t, string(before.HTML), "© 2026 ")

	clock.now = clock.now.Add(2 * time.Second)
	after, err := s.Render("v3", nil, "/")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusHit, after.Cache)
	assert.Contains(t, string(after.HTML), "January 1, 2027")
	assert.Contains(t, string(after.HTML), "© 2027 ")
}

func TestRender_ExpandedState(t *testing.T) {
	s, _ := newTestSite(t, nil)

	page, err := s.Render("v3", url.Values{"open": {"02", "99"}}, "/")
	require.NoError(t, err)

	assert.Equal(t, cache.StatusBypass, page.Cache)
	assert.Equal(t, []string{"02"}, page.Expanded)

	html := string(page.HTML)
	assert.Equal(t, 1, strings.Count(html, `class="mz-accordion-panel"`))
	assert.Contains(t, html, `id="service-02-features"`)
	assert.Contains(t, html, `data-accordion-state="open=02"`)
}

func TestRender_EditionBasePath(t *testing.T) {
	s, _ := newTestSite(t, nil)

	page, err := s.Render("v2", nil, "/editions/v2")
	require.NoError(t, err)
	assert.Contains(t, string(page.HTML), `href="/editions/v2?open=01#service-01"`)
}

func TestRender_UnknownEdition(t *testing.T) {
	s, _ := newTestSite(t, nil)

	_, err := s.Render("v9", nil, "/")
	require.ErrorIs(t, err, ErrUnknownEdition)
	assert.Contains(t, err.Error(), `"v9"`)
}

func TestEditions(t *testing.T) {
	s, _ := newTestSite(t, nil)

	links := s.Editions("/editions")
	require.Len(t, links, 3)

	assert.Equal(t, "v1", links[0].Name)
	assert.Equal(t, "/editions/v1", links[0].Href)
	assert.False(t, links[0].Default)

	assert.Equal(t, "v3", links[2].Name)
	assert.Equal(t, "/", links[2].Href)
	assert.True(t, links[2].Default)
	assert.NotEmpty(t, links[2].Reference)
}
