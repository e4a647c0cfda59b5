package site

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alvarostrategy/site/internal/content"
	"github.com/alvarostrategy/site/internal/seo"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: seo.BuildURL(base)},
		{Loc: seo.BuildURL(base, "servicios")},
	}
	for _, sv := range content.Services() {
		urls = append(urls, sitemapURL{Loc: seo.BuildURL(base, "servicios", sv.Slug)})
	}
	urls = append(urls, sitemapURL{Loc: seo.BuildURL(base, "mi-metodo")})
	for _, ph := range content.Phases() {
		urls = append(urls, sitemapURL{Loc: seo.BuildURL(base, "mi-metodo", ph.Slug)})
	}
	urls = append(urls,
		sitemapURL{Loc: seo.BuildURL(base, "quien-soy")},
		sitemapURL{Loc: seo.BuildURL(base, "blog")},
		sitemapURL{Loc: seo.BuildURL(base, "contacto")},
		sitemapURL{Loc: seo.BuildURL(base, "aviso-legal")},
		sitemapURL{Loc: seo.BuildURL(base, "politica-privacidad")},
		sitemapURL{Loc: seo.BuildURL(base, "politica-cookies")},
	)
	for _, p := range content.Posts() {
		urls = append(urls, sitemapURL{
			Loc:     seo.BuildURL(base, "blog", p.Slug),
			LastMod: p.Modified(),
		})
	}
	for _, cat := range content.Categories() {
		urls = append(urls, sitemapURL{Loc: seo.BuildURL(base, "blog", "categoria", content.DeriveSlug(cat))})
	}
	for _, tag := range content.Tags() {
		urls = append(urls, sitemapURL{Loc: seo.BuildURL(base, "blog", "tag", tag)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
