package views

import (
	"bytes"

	"github.com/a-h/templ"
)

func legalPage(p Page, heading string, paragraphs []string) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="container"><article class="legal">`)
		buf.WriteString(`<h1>` + esc(heading) + `</h1>`)
		for _, par := range paragraphs {
			buf.WriteString(`<p>` + esc(par) + `</p>`)
		}
		buf.WriteString(`</article></div>`)
	})
}

// LegalNotice renders /aviso-legal.
func LegalNotice(p Page) templ.Component {
	return legalPage(p, "Aviso legal", []string{
		"Este sitio web es titularidad de " + p.Site.Name + ". El acceso y uso del sitio atribuye la condición de usuario e implica la aceptación de las condiciones aquí recogidas.",
		"Los contenidos de este sitio (textos, marcas y diseños) están protegidos por la normativa de propiedad intelectual e industrial. Queda prohibida su reproducción sin autorización expresa.",
		"El titular no se hace responsable del contenido de sitios externos enlazados desde estas páginas.",
	})
}

// PrivacyPolicy renders /politica-privacidad.
func PrivacyPolicy(p Page) templ.Component {
	return legalPage(p, "Política de privacidad", []string{
		"Los datos facilitados a través del formulario de contacto se utilizan exclusivamente para responder a tu consulta. La base legítima del tratamiento es tu consentimiento, que puedes retirar en cualquier momento.",
		"Los datos no se ceden a terceros salvo obligación legal. El servicio de envío de formularios actúa como encargado del tratamiento.",
		"Puedes ejercer tus derechos de acceso, rectificación, supresión y oposición escribiendo a la dirección de contacto indicada en el aviso legal.",
	})
}

// CookiePolicy renders /politica-cookies.
func CookiePolicy(p Page) templ.Component {
	return legalPage(p, "Política de cookies", []string{
		"Este sitio utiliza una cookie propia (alvaroStrategyCookieConsent) para recordar tu decisión sobre el uso de cookies durante 365 días.",
		"Si aceptas, se activa además la medición de visitas. La medición es anónima: no se almacena tu dirección IP, solo un identificador derivado que no permite identificarte.",
		"Puedes cambiar tu decisión borrando las cookies de este sitio en tu navegador.",
	})
}
