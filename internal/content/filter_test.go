package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample mirrors the shape of the real collection but stays small enough to
// assert exact results.
var sample = []Post{
	{Slug: "a", Category: "SEO Avanzado", Tags: []string{"seo", "ia"}},
	{Slug: "b", Category: "SEO Avanzado", Tags: []string{"marketing"}},
	{Slug: "c", Category: "IA", Tags: []string{"ia"}},
}

func slugsOf(posts []Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SEO Avanzado", "seo-avanzado"},
		{"IA", "ia"},
		{"Analítica Web", "analítica-web"}, // accents pass through untouched
		{"Dos   Espacios", "dos-espacios"},
		{"ya-derivado", "ya-derivado"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveSlug(tt.in), "DeriveSlug(%q)", tt.in)
	}
}

func TestDeriveSlugIdempotentOverStore(t *testing.T) {
	// Every category and tag actually present in the store must derive to a
	// stable slug: deriving twice changes nothing.
	for _, p := range Posts() {
		labels := append([]string{p.Category}, p.Tags...)
		for _, label := range labels {
			once := DeriveSlug(label)
			assert.Equal(t, once, DeriveSlug(once), "post %s label %q", p.Slug, label)
		}
	}
}

func TestFormatSlugForDisplay(t *testing.T) {
	assert.Equal(t, "Seo Avanzado", FormatSlugForDisplay("seo-avanzado"))
	assert.Equal(t, "Ia", FormatSlugForDisplay("ia"))
	assert.Equal(t, "Analítica Web", FormatSlugForDisplay("analítica-web"))
}

func TestFilterByCategorySlug(t *testing.T) {
	got := FilterByCategorySlug(sample, "seo-avanzado")
	assert.Equal(t, []string{"a", "b"}, slugsOf(got))

	// Membership is exactly: deriveSlug(category) == target.
	for _, p := range sample {
		in := false
		for _, g := range got {
			if g.Slug == p.Slug {
				in = true
			}
		}
		assert.Equal(t, DeriveSlug(p.Category) == "seo-avanzado", in, "post %s", p.Slug)
	}
}

func TestFilterByCategorySlugNoMatch(t *testing.T) {
	assert.Empty(t, FilterByCategorySlug(sample, "no-such-category"))
}

func TestFilterByTagSlug(t *testing.T) {
	got := FilterByTagSlug(sample, "ia")
	assert.Equal(t, []string{"a", "c"}, slugsOf(got))
}

func TestFilterByTagSlugUntaggedPostsNeverMatch(t *testing.T) {
	posts := []Post{
		{Slug: "untagged", Category: "IA"},
		{Slug: "tagged", Category: "IA", Tags: []string{"ia"}},
	}
	for _, target := range []string{"ia", ""} {
		for _, p := range FilterByTagSlug(posts, target) {
			assert.NotEqual(t, "untagged", p.Slug, "target %q", target)
		}
	}
}

func TestSelectRelated(t *testing.T) {
	got := SelectRelated(sample[0], sample, 2)
	// b shares category, c shares tag "ia"; a itself is excluded.
	assert.Equal(t, []string{"b", "c"}, slugsOf(got))
}

func TestSelectRelatedNeverIncludesSelf(t *testing.T) {
	for _, p := range Posts() {
		for _, r := range SelectRelated(p, Posts(), 2) {
			assert.NotEqual(t, p.Slug, r.Slug)
		}
	}
}

func TestSelectRelatedBoundAndRelation(t *testing.T) {
	for _, p := range Posts() {
		got := SelectRelated(p, Posts(), 2)
		require.LessOrEqual(t, len(got), 2)
		for _, r := range got {
			shares := r.Category == p.Category
			for _, t1 := range p.Tags {
				for _, t2 := range r.Tags {
					if t1 == t2 {
						shares = true
					}
				}
			}
			assert.True(t, shares, "%s returned as related to %s without shared category or tag", r.Slug, p.Slug)
		}
	}
}

func TestSelectRelatedFewerThanLimit(t *testing.T) {
	lonely := Post{Slug: "solo", Category: "Única", Tags: []string{"nadie"}}
	got := SelectRelated(lonely, sample, 2)
	assert.Empty(t, got)

	one := []Post{{Slug: "x", Category: "Única"}}
	assert.Len(t, SelectRelated(lonely, one, 2), 1)
}
