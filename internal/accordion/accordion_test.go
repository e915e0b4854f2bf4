package accordion

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markz-studio/markz/internal/content"
)

func offering(key string, features ...string) content.ServiceOffering {
	return content.ServiceOffering{Key: key, SequenceLabel: key + " — Label", Title: "Title " + key, Features: features}
}

func TestAccordion_StartsCollapsed(t *testing.T) {
	a := New(offering("01", "A", "B"))

	assert.False(t, a.Expanded())
	assert.Equal(t, GlyphCollapsed, a.Glyph())
	assert.Nil(t, a.Features())
}

func TestAccordion_ToggleCycle(t *testing.T) {
	a := New(offering("01", "A", "B", "C", "D"))

	a.Toggle()
	assert.True(t, a.Expanded())
	assert.Equal(t, "−", a.Glyph())
	assert.Equal(t, []string{"A", "B", "C", "D"}, a.Features())

	a.Toggle()
	assert.False(t, a.Expanded())
	assert.Equal(t, "+", a.Glyph())
	assert.Nil(t, a.Features())
}

func TestAccordion_ParityOfActivations(t *testing.T) {
	for n := 0; n < 9; n++ {
		a := New(offering("01", "A"))
		for i := 0; i < n; i++ {
			a.Toggle()
		}
		assert.Equal(t, n%2 == 1, a.Expanded(), "after %d activations", n)
	}
}

func TestAccordion_Isolation(t *testing.T) {
	a := New(offering("01", "A"))
	b := New(offering("02", "B"))

	a.Toggle()
	assert.True(t, a.Expanded())
	assert.False(t, b.Expanded())

	b.Toggle()
	b.Toggle()
	assert.True(t, a.Expanded())
}

func TestAccordion_FeaturesAreCopies(t *testing.T) {
	a := New(offering("01", "A", "B"))
	a.Toggle()

	f := a.Features()
	f[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, a.Features())
	assert.Equal(t, []string{"A", "B"}, a.AllFeatures())
}

func TestParseState(t *testing.T) {
	known := []string{"01", "02", "03", "04"}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "open=02", []string{"02"}},
		{"repeated", "open=03&open=01", []string{"01", "03"}},
		{"comma list", "open=04,02", []string{"02", "04"}},
		{"unknown dropped", "open=99&open=01", []string{"01"}},
		{"blank dropped", "open=&open=%20", []string{}},
		{"duplicates collapse", "open=01&open=01", []string{"01"}},
		{"other params ignored", "theme=dark&open=02", []string{"02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseState(q, known).Keys())
		})
	}
}

func TestState_ToggledIsolation(t *testing.T) {
	known := []string{"01", "02", "03", "04"}
	q, _ := url.ParseQuery("open=01&open=03")
	s := ParseState(q, known)

	next := s.Toggled("02")
	assert.Equal(t, []string{"01", "02", "03"}, next.Keys())
	// The original state is untouched.
	assert.Equal(t, []string{"01", "03"}, s.Keys())

	closed := next.Toggled("01")
	assert.Equal(t, []string{"02", "03"}, closed.Keys())
	for _, k := range []string{"02", "03"} {
		assert.Equal(t, next.Has(k), closed.Has(k), "key %s changed", k)
	}

	assert.Equal(t, s.Keys(), s.Toggled("04").Toggled("04").Keys())
}

func TestState_Query(t *testing.T) {
	var empty State
	assert.Equal(t, "", empty.Query())
	assert.False(t, empty.Has("01"))
	assert.Equal(t, "01", empty.Toggled("01").Query()[len("open="):])

	s := empty.Toggled("03").Toggled("01")
	assert.Equal(t, "open=01&open=03", s.Query())
	assert.Equal(t, "01,03", s.CacheKey())
}

func TestBuild(t *testing.T) {
	offerings := []content.ServiceOffering{offering("01", "A"), offering("02", "B")}
	var s State
	accs := Build(offerings, s.Toggled("02"))

	require.Len(t, accs, 2)
	assert.False(t, accs[0].Expanded())
	assert.True(t, accs[1].Expanded())
	assert.Equal(t, []string{"B"}, accs[1].Features())
}
