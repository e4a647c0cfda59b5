package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound renders the 404 page.
func NotFound(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container error-page">`)
		buf.WriteString(`<h1>Página no encontrada</h1>`)
		buf.WriteString(`<p>La página que buscas no existe o ha cambiado de dirección.</p>`)
		buf.WriteString(`<a class="cta" href="/">Volver al inicio</a>`)
		buf.WriteString(`</div>`)
	})
}

// ServerError renders the 500 page.
func ServerError(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container error-page">`)
		buf.WriteString(`<h1>Algo ha salido mal</h1>`)
		buf.WriteString(`<p>Ha ocurrido un error inesperado. Inténtalo de nuevo en unos minutos.</p>`)
		buf.WriteString(`<a class="cta" href="/">Volver al inicio</a>`)
		buf.WriteString(`</div>`)
	})
}
