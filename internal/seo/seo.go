// Package seo builds per-page metadata: titles, descriptions, canonical URLs,
// Open Graph / Twitter tags, and Schema.org JSON-LD blocks.
package seo

import (
	"net/url"
	"path"
	"strings"
)

// OpenGraph holds the og:* tag values for a page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string // "website" or "article"
}

// Twitter holds the twitter:* card values for a page.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta carries everything the <head> template needs for one page. JSONLD
// entries are pre-serialized script bodies.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
