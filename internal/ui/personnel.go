package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/markz-studio/markz/internal/content"
)

// PersonnelRow renders a name with its social links: Instagram and X when
// present, LinkedIn always.
func PersonnelRow(p content.PersonnelEntry, icons content.IconSet) g.Node {
	return Div(
		Class("mz-person"),
		P(Class("mz-person-name"), g.Text(p.Name)),
		Div(
			Class("mz-person-links"),
			g.If(p.HasInstagram(), socialLink(p.Name, p.InstagramURL, Instagram, icons)),
			g.If(p.HasX(), socialLink(p.Name, p.XURL, X, icons)),
			socialLink(p.Name, p.LinkedInURL, LinkedIn, icons),
		),
	)
}

func socialLink(name, href string, network Network, icons content.IconSet) g.Node {
	return externalLink(href,
		Class("mz-social"),
		g.Attr("data-network", string(network)),
		Aria("label", fmt.Sprintf("%s's %s", name, network)),
		Icon(icons, network),
	)
}

// PersonnelList renders every entry in order.
func PersonnelList(entries []content.PersonnelEntry, icons content.IconSet) g.Node {
	return Div(
		Class("mz-personnel"),
		g.Map(entries, func(p content.PersonnelEntry) g.Node {
			return PersonnelRow(p, icons)
		}),
	)
}
