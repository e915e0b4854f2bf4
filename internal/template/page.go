package template

import (
	"bytes"
	"fmt"
	"html"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/markz-studio/markz/internal/content"
)

// PageData holds everything needed to render a full HTML document.
type PageData struct {
	Version string
	Edition content.Edition
	// State is the canonical accordion query, echoed for the script.
	State string
	Body  g.Node
}

// ErrorData holds data for error pages.
type ErrorData struct {
	Version    string
	StatusCode int
	ErrorType  string
	Message    string
}

// Renderer renders full HTML documents around a page body.
type Renderer struct {
	brand string
}

// NewRenderer creates a template renderer.
func NewRenderer() *Renderer {
	return &Renderer{brand: "Mark Z"}
}

// RenderPage produces a complete HTML document. The only error source is
// rendering the body node.
func (r *Renderer) RenderPage(data PageData) ([]byte, error) {
	var buf bytes.Buffer

	ed := data.Edition
	title := ed.Title
	if title == "" {
		title = r.brand
	}

	fmt.Fprintf(&buf, `<!DOCTYPE html>
<html lang="en"
      data-edition="%s"
      data-markz-version="%s"
      data-accordion-state="%s">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <meta name="description" content="%s">
  <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%s">
  <style>
`,
		html.EscapeString(ed.Name),
		html.EscapeString(data.Version),
		html.EscapeString(data.State),
		html.EscapeString(title),
		html.EscapeString(ed.Description),
		faviconSVG,
	)

	writeLayoutCSS(&buf, ed.Breakpoints)

	fmt.Fprintf(&buf, `
  </style>
</head>
<body>
  <!-- markz: page -->
`)

	if data.Body != nil {
		if err := data.Body.Render(&buf); err != nil {
			return nil, fmt.Errorf("render body: %w", err)
		}
	}

	fmt.Fprintf(&buf, "\n  <!-- markz: scripts -->\n")
	writeScripts(&buf)

	fmt.Fprintf(&buf, "</body>\n</html>\n")

	return buf.Bytes(), nil
}

// RenderError produces an error page.
func (r *Renderer) RenderError(data ErrorData) []byte {
	var buf bytes.Buffer

	statusText := http.StatusText(data.StatusCode)
	if statusText == "" {
		statusText = "Error"
	}

	fmt.Fprintf(&buf, `<!DOCTYPE html>
<html lang="en"
      data-markz-version="%s"
      data-error-type="%s">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%d %s — %s</title>
  <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%s">
  <style>
`,
		html.EscapeString(data.Version),
		html.EscapeString(data.ErrorType),
		data.StatusCode, html.EscapeString(statusText), html.EscapeString(r.brand),
		faviconSVG,
	)

	writeLayoutCSS(&buf, nil)

	fmt.Fprintf(&buf, `
  </style>
</head>
<body>
  <div class="mz-sheet">
    <main>
      <div id="mz-error"
           data-status-code="%d">
        <p class="mz-marginalia">[Error]</p>
        <h1 class="mz-error-title">%d %s</h1>
        <p class="mz-error-message">%s</p>
        <p><a class="mz-mailto" href="/">Return to the front page</a></p>
      </div>
    </main>
  </div>
</body>
</html>
`,
		data.StatusCode,
		data.StatusCode, html.EscapeString(statusText),
		html.EscapeString(data.Message),
	)

	return buf.Bytes()
}
