package domain

import "strings"

// Module is a card on the landing page linking to one topic page.
type Module struct {
	Slug        string `json:"slug"`
	Href        string `json:"href"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page is the metadata rendered into a page's <head>.
type Page struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// OutputFile returns the path, relative to the export root, the page is
// written to. "/" maps to index.html and "/x" to x/index.html so that
// static hosts resolve clean URLs.
func (p Page) OutputFile() string {
	if p.Path == "" || p.Path == "/" {
		return "index.html"
	}
	trimmed := strings.Trim(p.Path, "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + "/index.html"
}
