// Package views renders every page of the site as a templ component.
// Handlers pass a Page (site-wide values plus per-page SEO metadata) and the
// content the page needs; views own all markup.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/alvarostrategy/site/internal/seo"
)

// Site holds the site-wide values templates read. Populated once from
// SiteConfig and passed on every render.
type Site struct {
	Name             string
	URL              string
	Description      string
	Author           string
	AnalyticsEnabled bool
}

// Page carries what the layout needs for one render.
type Page struct {
	Site   Site
	Meta   seo.Meta
	Active string // nav item to highlight: "inicio", "servicios", ...
	// ConsentDecided is true when the visitor has already accepted or
	// rejected cookies; the banner only shows while it is false.
	ConsentDecided bool
}

func component(fn func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDate renders a 2006-01-02 date as "21 de julio de 2026".
// Unparseable input passes through unchanged.
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("2") + " de " + spanishMonths[t.Month()-1] + " de " + t.Format("2006")
}

type navItem struct {
	key   string
	label string
	href  string
}

var navItems = []navItem{
	{"inicio", "Inicio", "/"},
	{"servicios", "Servicios", "/servicios/"},
	{"metodo", "Mi Método", "/mi-metodo/"},
	{"quien-soy", "Quién Soy", "/quien-soy/"},
	{"blog", "Blog", "/blog/"},
	{"contacto", "Contacto", "/contacto/"},
}

// page wraps body in the full HTML document: head with SEO metadata, header
// with navigation, footer with legal links, and the cookie banner while
// consent is undecided.
func page(p Page, body func(*bytes.Buffer)) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString(`<!DOCTYPE html><html lang="es"><head>`)
		writeHead(buf, p)
		if p.Site.AnalyticsEnabled {
			buf.WriteString(`</head><body data-analytics="on">`)
		} else {
			buf.WriteString(`</head><body>`)
		}
		writeHeader(buf, p)
		buf.WriteString(`<main id="contenido">`)
		body(buf)
		buf.WriteString(`</main>`)
		writeFooter(buf, p)
		buf.WriteString(`</body></html>`)
	})
}

func writeHead(buf *bytes.Buffer, p Page) {
	m := p.Meta
	buf.WriteString(`<meta charset="utf-8"/>`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	buf.WriteString(`<title>` + esc(m.Title) + `</title>`)
	if m.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(m.Description) + `"/>`)
	}
	if m.Canonical != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(m.Canonical) + `"/>`)
	}

	ogType := m.OG.Type
	if ogType == "" {
		ogType = "website"
	}
	buf.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
	buf.WriteString(`<meta property="og:title" content="` + esc(m.Title) + `"/>`)
	buf.WriteString(`<meta property="og:description" content="` + esc(m.Description) + `"/>`)
	buf.WriteString(`<meta property="og:site_name" content="` + esc(p.Site.Name) + `"/>`)
	if m.Canonical != "" {
		buf.WriteString(`<meta property="og:url" content="` + esc(m.Canonical) + `"/>`)
	}
	if m.OG.Image != "" {
		buf.WriteString(`<meta property="og:image" content="` + esc(m.OG.Image) + `"/>`)
	}

	card := m.Twitter.Card
	if card == "" {
		card = "summary"
	}
	buf.WriteString(`<meta name="twitter:card" content="` + esc(card) + `"/>`)
	buf.WriteString(`<meta name="twitter:title" content="` + esc(m.Title) + `"/>`)
	buf.WriteString(`<meta name="twitter:description" content="` + esc(m.Description) + `"/>`)
	if m.Twitter.Image != "" {
		buf.WriteString(`<meta name="twitter:image" content="` + esc(m.Twitter.Image) + `"/>`)
	}

	// json.Marshal escapes angle brackets, so the blocks are safe inside <script>.
	for _, ld := range m.JSONLD {
		buf.WriteString(`<script type="application/ld+json">` + ld + `</script>`)
	}

	buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(p.Site.Name) + `" href="/feed.xml"/>`)
	buf.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
	buf.WriteString(`<script src="/public/site.js" defer></script>`)
}

func writeHeader(buf *bytes.Buffer, p Page) {
	buf.WriteString(`<header class="site-header"><div class="container">`)
	buf.WriteString(`<a class="logo" href="/">` + esc(p.Site.Name) + `</a>`)
	buf.WriteString(`<button class="menu-toggle" type="button" aria-expanded="false" aria-controls="menu-principal" data-menu-toggle>Menú</button>`)
	buf.WriteString(`<nav><ul id="menu-principal" class="menu" data-menu>`)
	for _, item := range navItems {
		cls := ""
		if item.key == p.Active {
			cls = ` class="active"`
		}
		buf.WriteString(`<li` + cls + `><a href="` + item.href + `">` + esc(item.label) + `</a></li>`)
	}
	buf.WriteString(`</ul></nav></div></header>`)
}

func writeFooter(buf *bytes.Buffer, p Page) {
	buf.WriteString(`<footer class="site-footer"><div class="container">`)
	buf.WriteString(`<p>&copy; ` + time.Now().Format("2006") + ` ` + esc(p.Site.Name) + `</p>`)
	buf.WriteString(`<ul class="legal-links">`)
	buf.WriteString(`<li><a href="/aviso-legal/">Aviso legal</a></li>`)
	buf.WriteString(`<li><a href="/politica-privacidad/">Política de privacidad</a></li>`)
	buf.WriteString(`<li><a href="/politica-cookies/">Política de cookies</a></li>`)
	buf.WriteString(`</ul></div></footer>`)

	if !p.ConsentDecided {
		buf.WriteString(`<div class="cookie-banner" role="dialog" aria-label="Aviso de cookies" data-cookie-banner>`)
		buf.WriteString(`<p>Usamos cookies propias para medir el uso de la web. Más información en la <a href="/politica-cookies/">política de cookies</a>.</p>`)
		buf.WriteString(`<div class="cookie-actions">`)
		buf.WriteString(`<button type="button" data-consent="accepted">Aceptar</button>`)
		buf.WriteString(`<button type="button" data-consent="rejected">Rechazar</button>`)
		buf.WriteString(`</div></div>`)
	}
}
