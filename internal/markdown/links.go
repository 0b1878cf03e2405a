package markdown

import "regexp"

// inlineLinkRe matches markdown inline links: [label](target) where the label
// excludes `]` and the target excludes `)`.
//
// This is deliberately pattern-based rather than a CommonMark parse.
// Reference-style links ([x][ref] with a separate [ref]: target definition)
// and raw HTML anchors are not extracted; validation covers inline links only.
var inlineLinkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)

// Link is one inline-link occurrence found in a markdown body.
type Link struct {
	Destination string
}

// ExtractLinks scans a markdown body for inline links and returns them in
// order of occurrence. Image links (![alt](src)) share the inline syntax and
// are extracted as well. A body with no links yields an empty slice.
func ExtractLinks(body []byte) []Link {
	matches := inlineLinkRe.FindAllSubmatch(body, -1)

	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Destination: string(m[1])})
	}
	return links
}
