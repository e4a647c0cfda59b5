package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestPostBySlug(t *testing.T) {
	first := Posts()[0]
	got, ok := PostBySlug(first.Slug)
	require.True(t, ok)
	assert.Equal(t, first.Title, got.Title)

	_, ok = PostBySlug("no-existe")
	assert.False(t, ok)
}

func TestModifiedFallsBackToDate(t *testing.T) {
	p := Post{Date: "2026-01-01"}
	assert.Equal(t, "2026-01-01", p.Modified())
	p.LastModified = "2026-02-02"
	assert.Equal(t, "2026-02-02", p.Modified())
}

func TestCategoriesDedupedFirstSeen(t *testing.T) {
	cats := Categories()
	seen := make(map[string]struct{})
	for _, c := range cats {
		key := DeriveSlug(c)
		_, dup := seen[key]
		assert.False(t, dup, "category %q appears twice", c)
		seen[key] = struct{}{}
	}
	// First category listed must belong to the newest post.
	require.NotEmpty(t, cats)
	assert.Equal(t, Posts()[0].Category, cats[0])
}

func TestTagsDedupedAndSorted(t *testing.T) {
	tags := Tags()
	seen := make(map[string]struct{})
	for i, tag := range tags {
		key := DeriveSlug(tag)
		_, dup := seen[key]
		assert.False(t, dup, "tag %q appears twice", tag)
		seen[key] = struct{}{}
		if i > 0 {
			assert.LessOrEqual(t, tags[i-1], tag, "tags must be sorted")
		}
	}
}

func TestServiceAndPhaseLookups(t *testing.T) {
	require.NotEmpty(t, Services())
	sv, ok := ServiceBySlug(Services()[0].Slug)
	require.True(t, ok)
	assert.NotEmpty(t, sv.Name)

	require.Len(t, Phases(), 6)
	ph, ok := PhaseBySlug("analisis")
	require.True(t, ok)
	assert.Equal(t, 1, ph.Number)

	_, ok = ServiceBySlug("nada")
	assert.False(t, ok)
	_, ok = PhaseBySlug("nada")
	assert.False(t, ok)
}
