package content

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveSlug maps a display label (category or tag) to its URL slug:
// lowercase, with whitespace runs collapsed to a single hyphen. Accented
// characters pass through unchanged, so two labels that differ only in casing
// or spacing derive the same slug and their listings merge.
func DeriveSlug(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "-")
}

// FormatSlugForDisplay turns a slug back into a heading: hyphens become
// spaces and each word is capitalized. Lossy by design, it cannot recover the
// original casing of proper nouns, so it is only used for page headings and
// never for identity comparison.
func FormatSlugForDisplay(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FilterByCategorySlug returns every post whose category derives to target,
// in source order. No match yields an empty result, never an error.
func FilterByCategorySlug(posts []Post, target string) []Post {
	var out []Post
	for _, p := range posts {
		if DeriveSlug(p.Category) == target {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTagSlug returns every post where any tag derives to target, in
// source order. Posts with no tags never match.
func FilterByTagSlug(posts []Post, target string) []Post {
	var out []Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if DeriveSlug(t) == target {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// SelectRelated returns up to limit posts related to current: same category
// (exact string match) or at least one shared tag (exact string match),
// excluding current itself by slug. The relation is boolean: results keep
// source order, with no overlap scoring.
func SelectRelated(current Post, posts []Post, limit int) []Post {
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}
	var related []Post
	for _, p := range posts {
		if len(related) >= limit {
			break
		}
		if p.Slug == current.Slug {
			continue
		}
		if p.Category == current.Category {
			related = append(related, p)
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[t]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}
