package ui

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/markz-studio/markz/internal/accordion"
)

// AccordionID is the element id of the accordion for key.
func AccordionID(key string) string { return "service-" + key }

func panelID(key string) string { return AccordionID(key) + "-features" }

// ServiceAccordion renders one accordion. The header is a link to toggleHref
// so it works without scripts; the feature list is only emitted while expanded.
// data-features carries the list for the in-place toggle script.
func ServiceAccordion(a *accordion.Accordion, toggleHref string) g.Node {
	expanded := "false"
	if a.Expanded() {
		expanded = "true"
	}

	return Div(
		Class("mz-accordion"),
		ID(AccordionID(a.Key())),
		g.Attr("data-key", a.Key()),
		g.Attr("data-expanded", expanded),
		g.Attr("data-features", featuresJSON(a.AllFeatures())),
		A(
			Class("mz-accordion-header"),
			Href(toggleHref),
			Role("button"),
			Aria("expanded", expanded),
			Aria("controls", panelID(a.Key())),
			Span(
				Class("mz-accordion-titles"),
				Span(Class("mz-accordion-seq"), g.Text(a.SequenceLabel())),
				Span(Class("mz-accordion-title"), Role("heading"), Aria("level", "4"), g.Text(a.Title())),
			),
			Span(Class("mz-accordion-glyph"), Aria("hidden", "true"), g.Text(a.Glyph())),
		),
		g.If(a.Expanded(), featurePanel(a.Key(), a.Features())),
	)
}

func featurePanel(key string, features []string) g.Node {
	return Div(
		Class("mz-accordion-panel"),
		ID(panelID(key)),
		Ul(
			Class("mz-features"),
			g.Map(features, func(f string) g.Node {
				return Li(
					Span(Class("mz-feature-dash"), Aria("hidden", "true"), g.Text("—")),
					Span(g.Text(f)),
				)
			}),
		),
	)
}

func featuresJSON(features []string) string {
	b, err := json.Marshal(features)
	if err != nil {
		return "[]"
	}
	return string(b)
}
