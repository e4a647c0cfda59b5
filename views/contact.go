package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// ContactForm carries the form state across a render: submitted values are
// preserved on failure so the visitor can correct and resubmit.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Consent bool

	CSRFToken string
	Sent      bool   // render the success state instead of the form
	Notice    string // success text
	Error     string // inline validation or backend error text
}

// Contact renders the contact page with the form in its current state.
func Contact(p Page, f ContactForm) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container"><h1>Contacto</h1>`)
		buf.WriteString(`<p class="lead">Cuéntame qué necesitas y te responderé en menos de 24 horas laborables.</p>`)

		if f.Sent {
			buf.WriteString(`<p class="form-success" role="status">` + esc(f.Notice) + `</p>`)
			buf.WriteString(`</div>`)
			return
		}

		if f.Error != "" {
			buf.WriteString(`<p class="form-error" role="alert">` + esc(f.Error) + `</p>`)
		}

		buf.WriteString(`<form class="contact-form" method="post" action="/contacto/" data-contact-form>`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(f.CSRFToken) + `"/>`)

		writeField(buf, "name", "Nombre *", "text", f.Name, true)
		writeField(buf, "email", "Email *", "email", f.Email, true)
		writeField(buf, "phone", "Teléfono", "tel", f.Phone, false)
		writeField(buf, "subject", "Asunto", "text", f.Subject, false)

		buf.WriteString(`<label for="message">Mensaje *</label>`)
		buf.WriteString(`<textarea id="message" name="message" rows="6" required>` + esc(f.Message) + `</textarea>`)

		checked := ""
		if f.Consent {
			checked = ` checked`
		}
		buf.WriteString(`<label class="consent"><input type="checkbox" name="consent" value="on"` + checked + `/> `)
		buf.WriteString(`He leído y acepto la <a href="/politica-privacidad/">política de privacidad</a></label>`)

		buf.WriteString(`<button type="submit" data-submit>Enviar mensaje</button>`)
		buf.WriteString(`</form></div>`)
	})
}

func writeField(buf *bytes.Buffer, name, label, typ, value string, required bool) {
	req := ""
	if required {
		req = ` required`
	}
	buf.WriteString(`<label for="` + name + `">` + esc(label) + `</label>`)
	buf.WriteString(`<input id="` + name + `" name="` + name + `" type="` + typ + `" value="` + esc(value) + `"` + req + `/>`)
}
