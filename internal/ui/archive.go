package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/markz-studio/markz/internal/content"
)

// ArchiveList renders the featured entry followed by the project list.
func ArchiveList(a content.Archive) g.Node {
	return g.Group([]g.Node{
		H3(Class("mz-archive-heading"), g.Text(a.Heading)),
		Div(
			Class("mz-archive"),
			g.If(a.Featured.Title != "", featuredProject(a.Featured)),
			g.Map(a.Projects, projectEntry),
		),
	})
}

func featuredProject(f content.FeaturedProject) g.Node {
	return Div(
		Class("mz-project mz-project-featured"),
		Div(
			Class("mz-project-head"),
			H4(Class("mz-project-name"), g.Text(f.Title)),
			g.If(f.URL != "", externalLink(f.URL, Class("mz-project-link"), g.Text(f.LinkLabel))),
		),
		P(Class("mz-project-desc"), g.Text(f.Description)),
	)
}

func projectEntry(p content.PortfolioProject) g.Node {
	return Div(
		Class("mz-project"),
		Div(
			Class("mz-project-head"),
			H4(Class("mz-project-name"), g.Text(p.Name)),
			Span(Class("mz-project-tag"), g.Text(p.Category)),
		),
		P(Class("mz-project-desc"), g.Text(p.Description)),
	)
}
