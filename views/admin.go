package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"

	"github.com/alvarostrategy/site/internal/analytics"
	"github.com/alvarostrategy/site/internal/leads"
)

// AdminLogin renders the admin password prompt.
func AdminLogin(p Page, showError bool, csrfToken string) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container admin"><h1>Acceso</h1>`)
		if showError {
			buf.WriteString(`<p class="form-error" role="alert">Contraseña incorrecta.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<label for="password">Contraseña</label>`)
		buf.WriteString(`<input id="password" name="password" type="password" required/>`)
		buf.WriteString(`<button type="submit">Entrar</button>`)
		buf.WriteString(`</form></div>`)
	})
}

// AdminLeads renders the lead inbox: every contact submission received,
// newest first, with its forwarding status.
func AdminLeads(p Page, items []leads.Lead, csrfToken string) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container admin"><h1>Leads recibidos</h1>`)
		buf.WriteString(`<nav class="admin-nav"><a href="/admin/analytics/">Analítica</a>`)
		buf.WriteString(`<form method="post" action="/admin/logout/" class="inline">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<button type="submit">Salir</button></form></nav>`)

		if len(items) == 0 {
			buf.WriteString(`<p class="empty-state">Todavía no hay leads.</p></div>`)
			return
		}
		buf.WriteString(`<table class="leads"><thead><tr>`)
		buf.WriteString(`<th>Fecha</th><th>Nombre</th><th>Email</th><th>Asunto</th><th>Mensaje</th><th>Reenviado</th><th></th>`)
		buf.WriteString(`</tr></thead><tbody>`)
		for _, l := range items {
			buf.WriteString(`<tr>`)
			buf.WriteString(`<td>` + esc(l.CreatedAt.Format("02/01/2006 15:04")) + `</td>`)
			buf.WriteString(`<td>` + esc(l.Name) + `</td>`)
			buf.WriteString(`<td>` + esc(l.Email) + `</td>`)
			buf.WriteString(`<td>` + esc(l.Subject) + `</td>`)
			buf.WriteString(`<td>` + esc(l.Message) + `</td>`)
			if l.Forwarded {
				buf.WriteString(`<td>Sí</td>`)
			} else {
				buf.WriteString(`<td title="` + esc(l.ForwardError) + `">No</td>`)
			}
			id := strconv.FormatInt(l.ID, 10)
			buf.WriteString(`<td><button type="button" data-delete-lead="` + id + `" data-csrf="` + esc(csrfToken) + `">Borrar</button></td>`)
			buf.WriteString(`</tr>`)
		}
		buf.WriteString(`</tbody></table></div>`)
	})
}

// AdminAnalytics renders the aggregated visit stats.
func AdminAnalytics(p Page, stats analytics.Stats, csrfToken string) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container admin"><h1>Analítica</h1>`)
		buf.WriteString(`<nav class="admin-nav"><a href="/admin/">Leads</a></nav>`)
		buf.WriteString(`<dl class="stats">`)
		buf.WriteString(`<dt>Páginas vistas</dt><dd>` + strconv.Itoa(stats.TotalViews) + `</dd>`)
		buf.WriteString(`<dt>Visitantes únicos</dt><dd>` + strconv.Itoa(stats.UniqueVisitors) + `</dd>`)
		buf.WriteString(`</dl>`)
		if len(stats.TopPages) > 0 {
			buf.WriteString(`<h2>Páginas más vistas</h2><table><thead><tr><th>Página</th><th>Vistas</th></tr></thead><tbody>`)
			for _, ps := range stats.TopPages {
				buf.WriteString(`<tr><td>` + esc(ps.Path) + `</td><td>` + strconv.Itoa(ps.Views) + `</td></tr>`)
			}
			buf.WriteString(`</tbody></table>`)
		}
		if len(stats.DailyViews) > 0 {
			buf.WriteString(`<h2>Vistas por día</h2><table><thead><tr><th>Día</th><th>Vistas</th></tr></thead><tbody>`)
			for _, dv := range stats.DailyViews {
				buf.WriteString(`<tr><td>` + esc(dv.Date) + `</td><td>` + strconv.Itoa(dv.Views) + `</td></tr>`)
			}
			buf.WriteString(`</tbody></table>`)
		}
		buf.WriteString(`</div>`)
	})
}
