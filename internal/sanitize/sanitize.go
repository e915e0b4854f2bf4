package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// dangerousTags never survive sanitization.
var dangerousTags = []string{"script", "iframe", "object", "embed", "form", "input", "style"}

// eventHandlerRe matches on* event handler attributes.
var eventHandlerRe = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`)

// prosePolicy allows the inline markup that edition copy uses and nothing else.
// Outbound links open in a new context without leaking the referrer.
var prosePolicy = newProsePolicy()

func newProsePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "em", "strong", "del", "span", "abbr")
	p.AllowAttrs("title").OnElements("abbr")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("https", "mailto")
	p.RequireParseableURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	return p
}

// HTML sanitizes rendered prose. The policy is safe for concurrent use.
func HTML(input []byte) []byte {
	return prosePolicy.SanitizeBytes(input)
}

// ContainsDangerousContent checks if HTML has any dangerous elements.
// Useful for testing.
func ContainsDangerousContent(html string) bool {
	lower := strings.ToLower(html)
	for _, tag := range dangerousTags {
		if strings.Contains(lower, "<"+tag) {
			return true
		}
	}
	return eventHandlerRe.MatchString(html)
}
