package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPageRender(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.RecordPageRender("v3", 2*time.Millisecond)
	m.RecordPageRender("v3", 3*time.Millisecond)
	m.RecordPageRender("v1", time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.pageRenders.WithLabelValues("v3")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.pageRenders.WithLabelValues("v1")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.renderDuration))
}

func TestRecordHTTPRequest(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	testCases := []struct {
		method string
		route  string
		status int
	}{
		{"GET", "page", 200},
		{"GET", "edition", 404},
		{"GET", "healthz", 200},
	}

	for _, tc := range testCases {
		m.RecordHTTPRequest(tc.method, tc.route, tc.status)
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "edition", "404")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.httpRequests))
}

func TestRecordCacheLookup(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.RecordCacheLookup("miss")
	m.RecordCacheLookup("hit")
	m.RecordCacheLookup("hit")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.fragmentCache.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fragmentCache.WithLabelValues("miss")))
}

func TestRecordExpanded(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.RecordExpanded(nil)
	assert.Equal(t, 0, testutil.CollectAndCount(m.accordionExpanded))

	m.RecordExpanded([]string{"01", "03"})
	m.RecordExpanded([]string{"03"})
	assert.Equal(t, float64(1), testutil.ToFloat64(m.accordionExpanded.WithLabelValues("01")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.accordionExpanded.WithLabelValues("03")))
}

func TestInstancesDoNotCollide(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	a.RecordCacheLookup("hit")
	assert.Equal(t, float64(0), testutil.ToFloat64(b.fragmentCache.WithLabelValues("hit")))
}

func TestHandler_Exposition(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.RecordPageRender("v3", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `markz_page_renders_total{edition="v3"} 1`), "missing page render counter")
	assert.Contains(t, text, "markz_render_duration_seconds_bucket")
	assert.Contains(t, text, "go_goroutines")
}
