package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/alvarostrategy/site/internal/content"
	"github.com/alvarostrategy/site/markdown"
)

// Services renders the service catalog.
func Services(p Page, services []content.Service) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container"><h1>Servicios</h1><div class="cards">`)
		for _, sv := range services {
			buf.WriteString(`<article class="card">`)
			buf.WriteString(`<h2><a href="/servicios/` + esc(sv.Slug) + `/">` + esc(sv.Name) + `</a></h2>`)
			buf.WriteString(`<p>` + esc(sv.Summary) + `</p>`)
			buf.WriteString(`</article>`)
		}
		buf.WriteString(`</div></div>`)
	})
}

// ServiceDetail renders one service page.
func ServiceDetail(p Page, sv content.Service) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container">`)
		buf.WriteString(`<nav class="breadcrumbs"><a href="/servicios/">Servicios</a> / <span>` + esc(sv.Name) + `</span></nav>`)
		buf.WriteString(`<article class="service">`)
		buf.WriteString(`<h1>` + esc(sv.Name) + `</h1>`)
		buf.WriteString(`<p class="lead">` + esc(sv.Summary) + `</p>`)
		buf.WriteString(`<div class="service-body">`)
		markdown.Render(buf, sv.Content)
		buf.WriteString(`</div>`)
		if len(sv.Benefits) > 0 {
			buf.WriteString(`<h2>Qué incluye</h2><ul class="benefits">`)
			for _, b := range sv.Benefits {
				buf.WriteString(`<li>` + esc(b) + `</li>`)
			}
			buf.WriteString(`</ul>`)
		}
		buf.WriteString(`<a class="cta" href="/contacto/">Hablemos de tu caso</a>`)
		buf.WriteString(`</article></div>`)
	})
}

// Method renders the six-phase methodology overview.
func Method(p Page, phases []content.MethodPhase) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container"><h1>Mi método</h1>`)
		buf.WriteString(`<p class="lead">Seis fases, siempre en el mismo orden, siempre con métricas por delante.</p>`)
		buf.WriteString(`<ol class="phases">`)
		for _, ph := range phases {
			buf.WriteString(`<li>`)
			buf.WriteString(`<h2><a href="/mi-metodo/` + esc(ph.Slug) + `/">` + esc(ph.Name) + `</a></h2>`)
			buf.WriteString(`<p>` + esc(ph.Summary) + `</p>`)
			buf.WriteString(`</li>`)
		}
		buf.WriteString(`</ol></div>`)
	})
}

// MethodPhase renders one phase page with prev/next navigation.
func MethodPhase(p Page, ph content.MethodPhase, phases []content.MethodPhase) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container">`)
		buf.WriteString(`<nav class="breadcrumbs"><a href="/mi-metodo/">Mi método</a> / <span>` + esc(ph.Name) + `</span></nav>`)
		buf.WriteString(`<article class="phase">`)
		buf.WriteString(`<p class="phase-number">Fase ` + strconv.Itoa(ph.Number) + ` de ` + strconv.Itoa(len(phases)) + `</p>`)
		buf.WriteString(`<h1>` + esc(ph.Name) + `</h1>`)
		buf.WriteString(`<p class="lead">` + esc(ph.Summary) + `</p>`)
		buf.WriteString(`<div class="phase-body">`)
		markdown.Render(buf, ph.Content)
		buf.WriteString(`</div>`)

		buf.WriteString(`<nav class="phase-nav">`)
		if ph.Number > 1 {
			prev := phases[ph.Number-2]
			buf.WriteString(`<a href="/mi-metodo/` + esc(prev.Slug) + `/">&larr; ` + esc(prev.Name) + `</a>`)
		}
		if ph.Number < len(phases) {
			next := phases[ph.Number]
			buf.WriteString(`<a href="/mi-metodo/` + esc(next.Slug) + `/">` + esc(next.Name) + ` &rarr;</a>`)
		}
		buf.WriteString(`</nav>`)
		buf.WriteString(`</article></div>`)
	})
}

// About renders the /quien-soy profile page.
func About(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container"><article class="about">`)
		buf.WriteString(`<h1>Quién soy</h1>`)
		buf.WriteString(`<p>Soy ` + esc(p.Site.Author) + `, consultor de estrategia digital. Llevo más de una década
ayudando a negocios a captar clientes en internet sin depender de fórmulas mágicas:
con datos, con método y con el foco puesto en la cuenta de resultados.</p>`)
		buf.WriteString(`<p>Trabajo con un número reducido de clientes a la vez. Prefiero pocos proyectos
bien hechos a una cartera que no puedo atender.</p>`)
		buf.WriteString(`<a class="cta" href="/contacto/">Escríbeme</a>`)
		buf.WriteString(`</article></div>`)
	})
}
