package seo

import (
	"encoding/json"
	"strings"
)

// Site holds the site-wide values the JSON-LD builders need.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Crumb is one entry of a BreadcrumbList.
type Crumb struct {
	Name string
	URL  string
}

func marshal(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func person(name string) map[string]string {
	return map[string]string{"@type": "Person", "name": name}
}

// ProfessionalServiceJsonLD describes the consultancy itself, emitted on the
// home page.
func ProfessionalServiceJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "ProfessionalService",
		"name":        site.Name,
		"url":         BuildURL(site.URL),
		"description": site.Description,
	}
	if site.Author != "" {
		data["founder"] = person(site.Author)
	}
	return marshal(data)
}

// WebPageJsonLD describes a generic page.
func WebPageJsonLD(site Site, title, description, pageURL string) string {
	return marshal(map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        title,
		"description": description,
		"url":         pageURL,
		"isPartOf": map[string]string{
			"@type": "WebSite",
			"name":  site.Name,
			"url":   BuildURL(site.URL),
		},
	})
}

// ContactPageJsonLD describes the contact page.
func ContactPageJsonLD(site Site, pageURL string) string {
	return marshal(map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "ContactPage",
		"name":     "Contacto | " + site.Name,
		"url":      pageURL,
	})
}

// ProfilePageJsonLD describes the about page.
func ProfilePageJsonLD(site Site, pageURL string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "ProfilePage",
		"url":      pageURL,
	}
	if site.Author != "" {
		data["mainEntity"] = person(site.Author)
	}
	return marshal(data)
}

// BlogPostingJsonLD describes a single article.
func BlogPostingJsonLD(site Site, headline, description, postURL, datePublished, dateModified, author string, tags []string) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      headline,
		"description":   description,
		"url":           postURL,
		"datePublished": datePublished,
		"dateModified":  dateModified,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if author != "" {
		data["author"] = person(author)
	}
	if len(tags) > 0 {
		data["keywords"] = strings.Join(tags, ", ")
	}
	return marshal(data)
}

// ServiceJsonLD describes one consulting service.
func ServiceJsonLD(site Site, name, description, serviceURL string) string {
	return marshal(map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        name,
		"description": description,
		"url":         serviceURL,
		"provider": map[string]string{
			"@type": "ProfessionalService",
			"name":  site.Name,
			"url":   BuildURL(site.URL),
		},
	})
}

// OfferCatalogJsonLD describes the full service catalog on /servicios.
// items maps service names to their URLs, in display order.
func OfferCatalogJsonLD(site Site, names, urls []string) string {
	items := make([]map[string]interface{}, 0, len(names))
	for i, name := range names {
		items = append(items, map[string]interface{}{
			"@type": "Offer",
			"itemOffered": map[string]string{
				"@type": "Service",
				"name":  name,
				"url":   urls[i],
			},
		})
	}
	return marshal(map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "OfferCatalog",
		"name":            "Servicios de " + site.Name,
		"itemListElement": items,
	})
}

// BreadcrumbListJsonLD describes the breadcrumb trail of a page.
func BreadcrumbListJsonLD(crumbs []Crumb) string {
	items := make([]map[string]interface{}, 0, len(crumbs))
	for i, c := range crumbs {
		item := map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
		}
		if c.URL != "" {
			item["item"] = c.URL
		}
		items = append(items, item)
	}
	return marshal(map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}
