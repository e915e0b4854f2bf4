package template

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type domAccordion struct {
	Key      string   `json:"key"`
	Expanded bool     `json:"expanded"`
	Features []string `json:"features"`
}

type domAction struct {
	Type  string `json:"type"`
	Key   string `json:"key"`
	Press string `json:"press,omitempty"`
}

type domScenario struct {
	URL        string         `json:"url"`
	Accordions []domAccordion `json:"accordions"`
	Actions    []domAction    `json:"actions"`
}

type domAccordionResult struct {
	Key          string   `json:"key"`
	Expanded     bool     `json:"expanded"`
	AriaExpanded string   `json:"ariaExpanded"`
	Glyph        string   `json:"glyph"`
	Href         string   `json:"href"`
	Features     []string `json:"features"`
}

type domResult struct {
	URL        string               `json:"url"`
	State      *string              `json:"state"`
	Accordions []domAccordionResult `json:"accordions"`
}

func (r domResult) accordion(t *testing.T, key string) domAccordionResult {
	t.Helper()
	for _, a := range r.Accordions {
		if a.Key == key {
			return a
		}
	}
	t.Fatalf("no accordion %q in result", key)
	return domAccordionResult{}
}

// runAccordionScript executes the page script under node against a stub DOM
// built from sc and returns the state after the actions ran.
func runAccordionScript(t *testing.T, sc domScenario) domResult {
	t.Helper()

	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node not installed")
	}

	var buf bytes.Buffer
	writeScripts(&buf)
	src := strings.TrimSpace(buf.String())
	src = strings.TrimPrefix(src, "<script>")
	src = strings.TrimSuffix(src, "</script>")

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "page.js")
	if err := os.WriteFile(scriptPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(sc)
	if err != nil {
		t.Fatal(err)
	}
	scenarioPath := filepath.Join(dir, "scenario.json")
	if err := os.WriteFile(scenarioPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(node, filepath.Join("testdata", "accordion_dom.js"), scriptPath, scenarioPath)
	out, err := cmd.Output()
	if err != nil {
		var stderr []byte
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = ee.Stderr
		}
		t.Fatalf("node: %v\n%s", err, stderr)
	}

	var res domResult
	if err := json.Unmarshal(out, &res); err != nil {
		t.Fatalf("decode result: %v\n%s", err, out)
	}
	return res
}

func v3Accordions(expanded ...string) []domAccordion {
	open := make(map[string]bool)
	for _, k := range expanded {
		open[k] = true
	}
	var out []domAccordion
	for _, k := range []string{"01", "02", "03", "04"} {
		out = append(out, domAccordion{
			Key:      k,
			Expanded: open[k],
			Features: []string{"Feature " + k + "a", "Feature " + k + "b"},
		})
	}
	return out
}

func TestAccordionScript_StateFollowsRenderedMarkup(t *testing.T) {
	// A static export ignores the query: everything renders collapsed.
	res := runAccordionScript(t, domScenario{
		URL:        "/?open=01",
		Accordions: v3Accordions(),
		Actions:    []domAction{{Type: "click", Key: "02"}},
	})

	if res.URL != "/?open=02" {
		t.Errorf("url = %q, want /?open=02", res.URL)
	}
	if res.State == nil || *res.State != "open=02" {
		t.Errorf("data-accordion-state = %v, want open=02", res.State)
	}

	first := res.accordion(t, "01")
	if first.Expanded || first.Features != nil {
		t.Error("01 should stay collapsed")
	}
	if first.Href != "/?open=01&open=02#service-01" {
		t.Errorf("01 href = %q, want a link that expands 01", first.Href)
	}

	second := res.accordion(t, "02")
	if !second.Expanded || second.AriaExpanded != "true" || second.Glyph != "−" {
		t.Errorf("02 = %+v, want expanded", second)
	}
	if len(second.Features) != 2 || second.Features[0] != "Feature 02a" {
		t.Errorf("02 features = %v", second.Features)
	}
	if second.Href != "/#service-02" {
		t.Errorf("02 href = %q, want /#service-02", second.Href)
	}
}

func TestAccordionScript_UnknownKeysIgnored(t *testing.T) {
	res := runAccordionScript(t, domScenario{
		URL:        "/?open=99",
		Accordions: v3Accordions(),
	})

	for _, a := range res.Accordions {
		want := "/?open=" + a.Key + "#service-" + a.Key
		if a.Href != want {
			t.Errorf("%s href = %q, want %q", a.Key, a.Href, want)
		}
	}
}

func TestAccordionScript_CollapseExpanded(t *testing.T) {
	res := runAccordionScript(t, domScenario{
		URL:        "/editions/v2?open=01&open=03",
		Accordions: v3Accordions("01", "03"),
		Actions:    []domAction{{Type: "click", Key: "01"}},
	})

	if res.URL != "/editions/v2?open=03" {
		t.Errorf("url = %q, want /editions/v2?open=03", res.URL)
	}
	first := res.accordion(t, "01")
	if first.Expanded || first.Features != nil || first.Glyph != "+" || first.AriaExpanded != "false" {
		t.Errorf("01 = %+v, want collapsed with its list removed", first)
	}
	if !res.accordion(t, "03").Expanded {
		t.Error("03 should be unaffected")
	}
	if got := res.accordion(t, "04").Href; got != "/editions/v2?open=03&open=04#service-04" {
		t.Errorf("04 href = %q", got)
	}
}

func TestAccordionScript_Keyboard(t *testing.T) {
	res := runAccordionScript(t, domScenario{
		URL:        "/",
		Accordions: v3Accordions(),
		Actions: []domAction{
			{Type: "keydown", Key: "03", Press: " "},
			{Type: "keydown", Key: "04", Press: "a"},
		},
	})

	if !res.accordion(t, "03").Expanded {
		t.Error("space should expand 03")
	}
	if res.accordion(t, "04").Expanded {
		t.Error("other keys should not toggle")
	}
	if res.URL != "/?open=03" {
		t.Errorf("url = %q, want /?open=03", res.URL)
	}
}
