package template

import (
	"bytes"
	"fmt"
	"html"
)

// EditionLink is one row of the editions index.
type EditionLink struct {
	Name      string
	Reference string
	Href      string
	Default   bool
}

// RenderEditions produces the index of published editions for GET /editions/.
func (r *Renderer) RenderEditions(version string, editions []EditionLink) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<!DOCTYPE html>
<html lang="en" data-markz-version="%s">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Editions — %s</title>
  <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%s">
  <style>
`,
		html.EscapeString(version),
		html.EscapeString(r.brand),
		faviconSVG,
	)

	writeLayoutCSS(&buf, nil)

	buf.WriteString(`
    .mz-editions { list-style: none; margin: 0; padding: 0; }
    .mz-editions li { padding: 16px 0; border-bottom: 1px solid rgba(214,211,209,0.3); }
    .mz-editions a { font-family: var(--mz-serif); font-size: 24px; font-weight: 700; color: inherit; }
    .mz-editions span { display: block; font-size: 10px; letter-spacing: 0.2em; text-transform: uppercase; color: #78716c; }
  </style>
</head>
<body>
  <div class="mz-sheet">
    <main>
      <p class="mz-marginalia">[Editions]</p>
      <ul class="mz-editions" id="mz-editions">
`)

	for _, e := range editions {
		marker := ""
		if e.Default {
			marker = ` data-default="true"`
		}
		fmt.Fprintf(&buf, `        <li data-edition="%s"%s><a href="%s">%s</a><span>%s</span></li>
`,
			html.EscapeString(e.Name), marker,
			html.EscapeString(e.Href),
			html.EscapeString(e.Name),
			html.EscapeString(e.Reference),
		)
	}

	fmt.Fprintf(&buf, `      </ul>
      <p class="mz-marginalia">markz %s</p>
    </main>
  </div>
</body>
</html>
`, html.EscapeString(version))

	return buf.Bytes()
}
