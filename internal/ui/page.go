package ui

import (
	"fmt"
	htmltemplate "html/template"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/markz-studio/markz/internal/accordion"
	"github.com/markz-studio/markz/internal/content"
	"github.com/markz-studio/markz/internal/display"
	"github.com/markz-studio/markz/internal/render"
)

// PageModel is everything the root component needs for one render.
type PageModel struct {
	Edition  content.Edition
	Prose    render.Prose
	Values   display.Values
	State    accordion.State
	BasePath string // path the accordion toggle links point at
}

// ToggleHref is the link that flips only key in the current state.
func (m PageModel) ToggleHref(key string) string {
	base := m.BasePath
	if base == "" {
		base = "/"
	}
	if q := m.State.Toggled(key).Query(); q != "" {
		base += "?" + q
	}
	return base + "#" + AccordionID(key)
}

// Page composes header, the date-independent content and the footer.
// body is normally Content(m); callers may pass a pre-rendered copy.
func Page(m PageModel, body g.Node) g.Node {
	return Div(
		Class("mz-sheet"),
		pageHeader(m),
		Main(body),
		pageFooter(m),
		g.If(m.Edition.Watermark != "",
			Div(Class("mz-watermark"), Aria("hidden", "true"), g.Text(m.Edition.Watermark)),
		),
	)
}

// Content renders Manifesto through About Us. It does not depend on the clock.
func Content(m PageModel) g.Node {
	ed := m.Edition
	accs := accordion.Build(ed.Services, m.State)

	return g.Group([]g.Node{
		LabeledSection("Manifesto",
			Div(Class("mz-manifesto mz-dropcap"), raw(m.Prose.Manifesto)),
		),
		Divider(false),
		LabeledSection("Services",
			g.Map(accs, func(a *accordion.Accordion) g.Node {
				return ServiceAccordion(a, m.ToggleHref(a.Key()))
			}),
		),
		Divider(false),
		LabeledSection("Archives", ArchiveList(ed.Archive)),
		Divider(false),
		LabeledSection("About Us",
			Div(
				Class("mz-about"),
				Div(Class("mz-about-blurb"), raw(m.Prose.About)),
				PersonnelList(ed.Personnel, ed.Icons),
			),
		),
	})
}

func pageHeader(m PageModel) g.Node {
	ed := m.Edition
	return Header(
		Class("mz-header"),
		Div(
			Class("mz-header-meta"),
			Div(g.Text(ed.Reference)),
			Div(ID("mz-date"), g.Text(m.Values.FormattedDate)),
		),
		Div(
			Class("mz-masthead"),
			g.If(ed.Logo.Src != "", Img(Class("mz-logo"), Src(ed.Logo.Src), Alt(ed.Logo.Alt))),
			H1(Class("mz-brand"), g.Text(ed.Brand)),
			P(Class("mz-tagline"), g.Text(ed.Tagline)),
			Div(Class("mz-rule")),
		),
	)
}

func pageFooter(m PageModel) g.Node {
	ed := m.Edition
	return Footer(
		Class("mz-footer"),
		Div(
			Class("mz-inquiry"),
			Div(Class("mz-marginalia"), g.Text("[Inquiry]")),
			H2(Class("mz-inquiry-heading"), g.Text(ed.Inquiry.Heading)),
			Div(Class("mz-inquiry-body"), raw(m.Prose.Inquiry)),
			A(Class("mz-mailto"), Href(ed.MailtoURL()), g.Text(ed.Inquiry.Email)),
		),
		Div(
			Class("mz-colophon"),
			Div(
				P(ID("mz-copyright"), g.Text(fmt.Sprintf("© %d %s", m.Values.CurrentYear, ed.Colophon.Studio))),
				g.Map(ed.Colophon.Left, line),
			),
			Div(Class("mz-colophon-right"), g.Map(ed.Colophon.Right, line)),
		),
	)
}

func line(s string) g.Node { return P(g.Text(s)) }

// raw embeds HTML that has already been sanitized by the prose renderer.
func raw(h htmltemplate.HTML) g.Node {
	return g.Raw(string(h))
}
