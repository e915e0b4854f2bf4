package template

import (
	"bytes"
	"fmt"
)

// faviconSVG is an inline SVG favicon: a serif "Z" on paper.
const faviconSVG = `%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'%3E%3Crect width='100' height='100' fill='%23f5f2eb'/%3E%3Ctext x='50' y='.8em' font-size='90' font-family='serif' font-weight='bold' text-anchor='middle'%3EZ%3C/text%3E%3C/svg%3E`

// breakpoint widths in pixels. The base stylesheet is the narrow layout and
// each breakpoint an edition lists adds one min-width block.
var breakpointWidths = map[string]int{
	"sm": 640,
	"md": 768,
	"lg": 1024,
}

var breakpointOrder = []string{"sm", "md", "lg"}

func writeLayoutCSS(buf *bytes.Buffer, breakpoints []string) {
	buf.WriteString(layoutCSS)

	enabled := make(map[string]bool, len(breakpoints))
	for _, bp := range breakpoints {
		enabled[bp] = true
	}
	for _, bp := range breakpointOrder {
		if !enabled[bp] {
			continue
		}
		fmt.Fprintf(buf, "    @media (min-width: %dpx) {\n", breakpointWidths[bp])
		buf.WriteString(breakpointCSS[bp])
		buf.WriteString("    }\n")
	}
}

const layoutCSS = `
    /* markz layout */
    :root {
      --mz-paper: #f5f2eb;
      --mz-ink: #1c1917;
      --mz-muted: #78716c;
      --mz-rule: rgba(214,211,209,0.3);
      --mz-serif: 'Playfair Display', Georgia, 'Times New Roman', serif;
      --mz-sans: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
    }
    * { box-sizing: border-box; }
    html, body { overflow-x: hidden; }
    body { margin: 0; background: var(--mz-paper); color: var(--mz-ink); font-family: var(--mz-serif); }
    a { color: inherit; }

    .mz-sheet { max-width: 48rem; margin: 0 auto; padding: 48px 16px; width: 100%; }

    .mz-header { margin-bottom: 64px; text-align: center; }
    .mz-header-meta {
      display: flex; flex-direction: column; align-items: center; gap: 8px; margin-bottom: 32px;
      font-family: var(--mz-sans); font-size: 9px; font-weight: 700;
      letter-spacing: 0.2em; text-transform: uppercase; color: var(--mz-muted);
    }
    .mz-masthead { display: flex; flex-direction: column; align-items: center; }
    .mz-logo { width: 80px; height: auto; margin-bottom: 16px; object-fit: contain; }
    .mz-brand {
      margin: 0 0 16px; font-size: 48px; font-weight: 700; font-style: italic;
      text-transform: uppercase; letter-spacing: -0.05em; line-height: 1;
    }
    .mz-tagline {
      margin: 0 0 24px; font-family: var(--mz-sans); font-size: 12px; font-weight: 700;
      letter-spacing: 0.2em; text-transform: uppercase; color: #57534e;
    }
    .mz-rule { width: 48px; height: 4px; background: var(--mz-ink); }

    .mz-marginalia {
      margin: 0 0 24px; font-family: var(--mz-sans); font-size: 10px; font-weight: 700;
      letter-spacing: 0.3em; text-transform: uppercase; color: var(--mz-muted); opacity: 0.9;
    }
    .mz-section { margin-bottom: 64px; width: 100%; }

    .mz-divider { border: 0; border-top: 1px solid var(--mz-rule); margin: 48px 0; }
    .mz-divider-double { border-top: 3px double rgba(28,25,23,0.4); }

    .mz-manifesto p { margin: 0; font-size: 20px; line-height: 1.4; font-weight: 500; overflow-wrap: anywhere; }
    .mz-dropcap p:first-child::first-letter {
      float: left; font-size: 4em; line-height: 0.8; padding: 6px 8px 0 0; font-weight: 700;
    }

    .mz-accordion { width: 100%; }
    .mz-accordion-header {
      display: flex; justify-content: space-between; align-items: baseline; gap: 12px;
      width: 100%; text-decoration: none; cursor: pointer;
      border-bottom: 1px solid rgba(214,211,209,0.5); padding-bottom: 8px; margin-bottom: 24px;
    }
    .mz-accordion-header:hover { border-bottom-color: var(--mz-ink); }
    .mz-accordion-titles { display: flex; flex-direction: column; flex: 1; min-width: 0; }
    .mz-accordion-seq {
      font-family: var(--mz-sans); font-size: 8px; font-weight: 700;
      letter-spacing: 0.15em; text-transform: uppercase; color: var(--mz-muted); margin-bottom: 8px;
    }
    .mz-accordion-title { font-size: 18px; font-weight: 700; transition: all 0.3s; overflow-wrap: break-word; }
    .mz-accordion-header:hover .mz-accordion-title { font-style: italic; }
    .mz-accordion-glyph { font-size: 16px; color: var(--mz-muted); user-select: none; flex-shrink: 0; }
    .mz-accordion-panel { margin: 0 0 24px; }
    .mz-features { display: grid; grid-template-columns: 1fr; gap: 8px 16px; list-style: none; margin: 0; padding: 0; }
    .mz-features li {
      display: flex; align-items: flex-start; font-family: var(--mz-sans); font-size: 12px;
      font-weight: 500; text-transform: uppercase; letter-spacing: -0.01em; color: #44403c;
    }
    .mz-feature-dash { margin-right: 8px; opacity: 0.4; flex-shrink: 0; }

    .mz-archive-heading { margin: 0 0 20px; font-size: 24px; font-weight: 700; letter-spacing: -0.05em; line-height: 1.2; }
    .mz-project { margin-bottom: 24px; padding-bottom: 24px; border-bottom: 1px solid var(--mz-rule); }
    .mz-project:last-child { margin-bottom: 0; border-bottom: 0; }
    .mz-project-head { display: flex; flex-direction: column; gap: 8px; margin-bottom: 12px; }
    .mz-project-name { margin: 0; font-size: 18px; font-weight: 700; overflow-wrap: break-word; }
    .mz-project-featured .mz-project-name { font-style: italic; }
    .mz-project-tag, .mz-project-link {
      font-family: var(--mz-sans); font-size: 8px; font-weight: 700;
      letter-spacing: 0.1em; text-transform: uppercase; color: #57534e; white-space: nowrap;
    }
    .mz-project-link:hover { color: #000; }
    .mz-project-desc { margin: 12px 0 0; font-size: 12px; font-style: italic; color: #57534e; line-height: 1.6; }

    .mz-about-blurb p { font-size: 16px; line-height: 1.6; color: #44403c; }
    .mz-personnel { margin-top: 32px; }
    .mz-person {
      display: flex; flex-direction: column; justify-content: space-between; gap: 12px;
      padding: 16px 0; border-bottom: 1px solid var(--mz-rule);
    }
    .mz-person:last-child { border-bottom: 0; }
    .mz-person-name { margin: 0; font-size: 18px; font-weight: 700; }
    .mz-person-links { display: flex; gap: 16px; flex-shrink: 0; }
    .mz-social { color: var(--mz-muted); transition: color 0.2s; }
    .mz-social:hover { color: #000; }
    .mz-social svg { width: 20px; height: 20px; fill: currentColor; }
    .mz-icon-text { font-family: var(--mz-sans); font-size: 10px; font-weight: 700; letter-spacing: 0.1em; }

    .mz-footer { margin-top: 64px; padding-bottom: 48px; }
    .mz-inquiry { padding: 20px; border: 1px solid #d6d3d1; background: rgba(231,229,228,0.3); }
    .mz-inquiry-heading { margin: 0 0 32px; font-size: 24px; font-weight: 700; letter-spacing: -0.025em; }
    .mz-inquiry-body p { margin: 0 0 32px; font-size: 18px; font-style: italic; color: #57534e; line-height: 1.6; }
    .mz-mailto {
      display: inline-block; font-size: 18px; font-weight: 700; text-decoration: none;
      border-bottom: 2px solid var(--mz-ink); padding-bottom: 8px; word-break: break-all;
    }
    .mz-mailto:hover { opacity: 0.7; }
    .mz-colophon {
      display: flex; flex-direction: column; align-items: center; gap: 16px; margin-top: 48px;
      font-family: var(--mz-sans); font-size: 8px; font-weight: 700;
      letter-spacing: 0.15em; text-transform: uppercase; color: var(--mz-muted); text-align: center;
    }
    .mz-colophon p { margin: 0 0 4px; }
    .mz-watermark { display: none; }

    #mz-error { padding-top: 64px; }
    .mz-error-title { font-size: 48px; font-style: italic; margin: 0 0 16px; }
    .mz-error-message { font-size: 18px; color: #57534e; margin: 0 0 32px; }

    @media print {
      body { background: #fff; }
      .mz-accordion-glyph, .mz-watermark { display: none; }
    }
`

var breakpointCSS = map[string]string{
	"sm": `      .mz-sheet { padding: 64px 24px; }
      .mz-header { text-align: left; }
      .mz-header-meta { flex-direction: row; justify-content: space-between; font-size: 10px; }
      .mz-masthead { align-items: flex-start; }
      .mz-logo { width: 96px; margin-bottom: 24px; }
      .mz-brand { font-size: 60px; }
      .mz-tagline { font-size: 14px; letter-spacing: 0.3em; }
      .mz-manifesto p { font-size: 24px; }
      .mz-accordion-title { font-size: 20px; }
      .mz-features { grid-template-columns: 1fr 1fr; }
      .mz-features li { font-size: 14px; }
      .mz-archive-heading { font-size: 30px; }
      .mz-project-head { flex-direction: row; justify-content: space-between; align-items: flex-end; }
      .mz-project-name { font-size: 20px; }
      .mz-person { flex-direction: row; align-items: center; }
      .mz-inquiry { padding: 24px; }
      .mz-colophon { flex-direction: row; justify-content: space-between; align-items: flex-start; text-align: left; }
      .mz-colophon-right { text-align: right; }
`,
	"md": `      .mz-sheet { padding: 128px 48px; }
      .mz-header { margin-bottom: 128px; }
      .mz-logo { width: 112px; }
      .mz-brand { font-size: 96px; }
      .mz-tagline { font-size: 16px; letter-spacing: 0.4em; margin-bottom: 48px; }
      .mz-manifesto p { font-size: 30px; }
      .mz-accordion-title { font-size: 24px; }
      .mz-accordion-seq { font-size: 10px; }
      .mz-archive-heading { font-size: 36px; }
      .mz-project-name { font-size: 24px; }
      .mz-inquiry { padding: 32px; }
      .mz-colophon { font-size: 10px; letter-spacing: 0.3em; }
`,
	"lg": `      .mz-accordion-title { font-size: 30px; }
      .mz-archive-heading { font-size: 48px; }
      .mz-inquiry { padding: 48px; }
      .mz-watermark {
        display: block; position: fixed; bottom: 48px; right: 48px; pointer-events: none;
        opacity: 0.03; user-select: none; font-size: 15rem; font-weight: 700; line-height: 1;
      }
`,
}
