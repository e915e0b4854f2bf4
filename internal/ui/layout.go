package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Divider is a horizontal rule between sections.
func Divider(double bool) g.Node {
	if double {
		return Div(Class("mz-divider mz-divider-double"), Role("separator"))
	}
	return Div(Class("mz-divider"), Role("separator"))
}

// LabeledSection wraps children in a section with optional [Label] marginalia.
func LabeledSection(label string, children ...g.Node) g.Node {
	return Section(
		Class("mz-section"),
		g.If(label != "", Div(Class("mz-marginalia"), g.Textf("[%s]", label))),
		Div(Class("mz-section-body"), g.Group(children)),
	)
}

// externalLink opens href in a new viewing context.
func externalLink(href string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		g.Group(children),
	)
}
