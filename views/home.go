package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/alvarostrategy/site/internal/content"
)

// Home renders the landing page: hero, service summary, methodology carousel,
// and the latest blog posts.
func Home(p Page, services []content.Service, phases []content.MethodPhase, latest []content.Post) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="hero"><div class="container">`)
		buf.WriteString(`<h1>Estrategia digital que se mide en clientes, no en impresiones</h1>`)
		buf.WriteString(`<p>` + esc(p.Site.Description) + `</p>`)
		buf.WriteString(`<a class="cta" href="/contacto/">Cuéntame tu proyecto</a>`)
		buf.WriteString(`</div></section>`)

		buf.WriteString(`<section class="services-summary"><div class="container">`)
		buf.WriteString(`<h2>Servicios</h2><div class="cards">`)
		for _, sv := range services {
			buf.WriteString(`<article class="card">`)
			buf.WriteString(`<h3><a href="/servicios/` + esc(sv.Slug) + `/">` + esc(sv.Name) + `</a></h3>`)
			buf.WriteString(`<p>` + esc(sv.Summary) + `</p>`)
			buf.WriteString(`</article>`)
		}
		buf.WriteString(`</div></div></section>`)

		writePhaseCarousel(buf, phases)

		buf.WriteString(`<section class="latest-posts"><div class="container">`)
		buf.WriteString(`<h2>Del blog</h2><div class="cards">`)
		for _, post := range latest {
			writePostCard(buf, post)
		}
		buf.WriteString(`</div><p><a href="/blog/">Ver todos los artículos</a></p>`)
		buf.WriteString(`</div></section>`)
	})
}

// writePhaseCarousel renders the six-phase methodology as an auto-advancing
// carousel; site.js drives the timer and the manual controls.
func writePhaseCarousel(buf *bytes.Buffer, phases []content.MethodPhase) {
	buf.WriteString(`<section class="method-carousel" data-carousel data-interval="6000"><div class="container">`)
	buf.WriteString(`<h2>Mi método en seis fases</h2><div class="slides">`)
	for i, ph := range phases {
		cls := "slide"
		if i == 0 {
			cls += " current"
		}
		buf.WriteString(`<article class="` + cls + `" data-slide>`)
		buf.WriteString(`<span class="phase-number">` + strconv.Itoa(ph.Number) + `</span>`)
		buf.WriteString(`<h3><a href="/mi-metodo/` + esc(ph.Slug) + `/">` + esc(ph.Name) + `</a></h3>`)
		buf.WriteString(`<p>` + esc(ph.Summary) + `</p>`)
		buf.WriteString(`</article>`)
	}
	buf.WriteString(`</div>`)
	buf.WriteString(`<div class="carousel-controls">`)
	buf.WriteString(`<button type="button" data-carousel-prev aria-label="Fase anterior">&larr;</button>`)
	buf.WriteString(`<button type="button" data-carousel-next aria-label="Fase siguiente">&rarr;</button>`)
	buf.WriteString(`</div></div></section>`)
}
