// Package spec loads and validates the JSON document describing a site.
package spec

// Section is one heading and content pair rendered as a block on the page.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// SiteSpec is the validated description of the site. All strings are trimmed
// and non-empty; Sections keeps the order of the input document.
type SiteSpec struct {
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	Sections []Section `json:"sections"`
}
