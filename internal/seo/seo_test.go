package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSite = Site{
	Name:        "Álvaro Strategy",
	URL:         "https://alvarostrategy.com",
	Description: "Consultoría de estrategia digital",
	Author:      "Álvaro",
}

func unmarshalLD(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://alvarostrategy.com", nil, "https://alvarostrategy.com"},
		{"https://alvarostrategy.com", []string{"blog"}, "https://alvarostrategy.com/blog/"},
		{"https://alvarostrategy.com", []string{"blog", "mi-post"}, "https://alvarostrategy.com/blog/mi-post/"},
		{"https://alvarostrategy.com/", []string{"contacto"}, "https://alvarostrategy.com/contacto/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segments...))
	}
}

func TestProfessionalServiceJsonLD(t *testing.T) {
	data := unmarshalLD(t, ProfessionalServiceJsonLD(testSite))
	assert.Equal(t, "ProfessionalService", data["@type"])
	assert.Equal(t, "https://schema.org", data["@context"])
	assert.Equal(t, testSite.Name, data["name"])
	founder := data["founder"].(map[string]interface{})
	assert.Equal(t, "Álvaro", founder["name"])
}

func TestBlogPostingJsonLD(t *testing.T) {
	raw := BlogPostingJsonLD(testSite, "Título", "Descripción", "https://alvarostrategy.com/blog/x/",
		"2026-01-01", "2026-02-01", "Álvaro", []string{"seo", "ia"})
	data := unmarshalLD(t, raw)
	assert.Equal(t, "BlogPosting", data["@type"])
	assert.Equal(t, "Título", data["headline"])
	assert.Equal(t, "2026-01-01", data["datePublished"])
	assert.Equal(t, "2026-02-01", data["dateModified"])
	assert.Equal(t, "seo, ia", data["keywords"])
	main := data["mainEntityOfPage"].(map[string]interface{})
	assert.Equal(t, "https://alvarostrategy.com/blog/x/", main["@id"])
}

func TestBreadcrumbListJsonLD(t *testing.T) {
	raw := BreadcrumbListJsonLD([]Crumb{
		{Name: "Inicio", URL: "https://alvarostrategy.com/"},
		{Name: "Blog", URL: "https://alvarostrategy.com/blog/"},
		{Name: "Mi Post"},
	})
	data := unmarshalLD(t, raw)
	items := data["itemListElement"].([]interface{})
	require.Len(t, items, 3)
	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["position"])
	assert.Equal(t, "Inicio", first["name"])
	last := items[2].(map[string]interface{})
	_, hasItem := last["item"]
	assert.False(t, hasItem, "final crumb carries no URL")
}

func TestOfferCatalogJsonLD(t *testing.T) {
	raw := OfferCatalogJsonLD(testSite,
		[]string{"Consultoría SEO", "Analítica Digital"},
		[]string{"https://alvarostrategy.com/servicios/consultoria-seo/", "https://alvarostrategy.com/servicios/analitica-digital/"})
	data := unmarshalLD(t, raw)
	assert.Equal(t, "OfferCatalog", data["@type"])
	items := data["itemListElement"].([]interface{})
	require.Len(t, items, 2)
	offered := items[0].(map[string]interface{})["itemOffered"].(map[string]interface{})
	assert.Equal(t, "Consultoría SEO", offered["name"])
}
