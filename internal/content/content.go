// Package content holds the site's static content collections (blog posts,
// services, methodology phases) and the pure functions that address them by
// slug. The collections are fixed at build time and never mutated at runtime,
// so every accessor is safe for concurrent use without locking.
package content

import (
	"fmt"
	"sort"
	"time"

	"github.com/alvarostrategy/site/pkg/slug"
)

// Post is a single blog article. Category is mandatory and singular; Tags are
// optional and free-form. Slug is the identity used in URLs.
type Post struct {
	Slug         string
	Title        string
	Category     string
	Tags         []string
	Date         string // 2006-01-02
	LastModified string // 2006-01-02, empty means same as Date
	Author       string
	Excerpt      string
	Content      string // Markdown
	Image        string
	ImageAlt     string
}

// Modified returns the last-modified date, falling back to the publish date.
func (p Post) Modified() string {
	if p.LastModified != "" {
		return p.LastModified
	}
	return p.Date
}

// Service is a single consulting service offered on /servicios.
type Service struct {
	Slug     string
	Name     string
	Summary  string
	Content  string // Markdown
	Benefits []string
}

// MethodPhase is one phase of the six-phase methodology on /mi-metodo.
type MethodPhase struct {
	Number  int
	Slug    string
	Name    string
	Summary string
	Content string // Markdown
}

// Posts returns every post in publication order (newest first).
func Posts() []Post {
	return posts
}

// PostBySlug returns the post with the given slug.
func PostBySlug(s string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == s {
			return p, true
		}
	}
	return Post{}, false
}

// Services returns every service in display order.
func Services() []Service {
	return services
}

// ServiceBySlug returns the service with the given slug.
func ServiceBySlug(s string) (Service, bool) {
	for _, sv := range services {
		if sv.Slug == s {
			return sv, true
		}
	}
	return Service{}, false
}

// Phases returns the methodology phases in order.
func Phases() []MethodPhase {
	return phases
}

// PhaseBySlug returns the methodology phase with the given slug.
func PhaseBySlug(s string) (MethodPhase, bool) {
	for _, ph := range phases {
		if ph.Slug == s {
			return ph, true
		}
	}
	return MethodPhase{}, false
}

// Categories returns the distinct post categories in first-seen order.
// Categories whose display labels derive to the same slug merge into one
// entry, matching the listing behavior.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		key := DeriveSlug(p.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Tags returns the distinct post tags sorted by display label.
func Tags() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		for _, t := range p.Tags {
			key := DeriveSlug(t)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Validate checks the static collections for editor mistakes: duplicate or
// non-canonical slugs, missing categories, and unparseable dates. It runs once
// at startup and a failure is fatal, since the data is compiled in.
func Validate() error {
	seen := make(map[string]string)
	for _, p := range posts {
		if prev, ok := seen[p.Slug]; ok {
			return fmt.Errorf("content: duplicate post slug %q (%q and %q)", p.Slug, prev, p.Title)
		}
		seen[p.Slug] = p.Title
		if canonical := slug.From(p.Slug); canonical != p.Slug {
			return fmt.Errorf("content: post slug %q is not canonical, want %q", p.Slug, canonical)
		}
		if p.Category == "" {
			return fmt.Errorf("content: post %q has no category", p.Slug)
		}
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			return fmt.Errorf("content: post %q date: %w", p.Slug, err)
		}
		if p.LastModified != "" {
			if _, err := time.Parse("2006-01-02", p.LastModified); err != nil {
				return fmt.Errorf("content: post %q lastModified: %w", p.Slug, err)
			}
		}
	}
	for _, sv := range services {
		if canonical := slug.From(sv.Slug); canonical != sv.Slug {
			return fmt.Errorf("content: service slug %q is not canonical, want %q", sv.Slug, canonical)
		}
	}
	for i, ph := range phases {
		if ph.Number != i+1 {
			return fmt.Errorf("content: phase %q out of order: number %d at position %d", ph.Slug, ph.Number, i+1)
		}
		if canonical := slug.From(ph.Slug); canonical != ph.Slug {
			return fmt.Errorf("content: phase slug %q is not canonical, want %q", ph.Slug, canonical)
		}
	}
	return nil
}
