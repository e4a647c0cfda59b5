package site

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alvarostrategy/site/internal/content"
	"github.com/alvarostrategy/site/internal/leads"
	"github.com/alvarostrategy/site/internal/seo"
	"github.com/alvarostrategy/site/views"
)

// relatedLimit is how many related posts a single article shows.
const relatedLimit = 2

func (a *App) seoSite() seo.Site {
	return seo.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func (a *App) newPage(c echo.Context, active string, meta seo.Meta) views.Page {
	return views.Page{
		Site: views.Site{
			Name:             a.Config.Name,
			URL:              a.Config.URL,
			Description:      a.Config.Description,
			Author:           a.Config.Author,
			AnalyticsEnabled: a.Config.AnalyticsEnabled,
		},
		Meta:           meta,
		Active:         active,
		ConsentDecided: consentValue(c) != "",
	}
}

func (a *App) canonical(segments ...string) string {
	return seo.BuildURL(a.Config.URL, segments...)
}

func (a *App) handleHome(c echo.Context) error {
	site := a.seoSite()
	meta := seo.Meta{
		Title:       a.Config.Name + " | Consultoría de Estrategia Digital",
		Description: a.Config.Description,
		Canonical:   a.canonical(),
		JSONLD: []string{
			seo.ProfessionalServiceJsonLD(site),
		},
	}
	posts := content.Posts()
	if len(posts) > 3 {
		posts = posts[:3]
	}
	return Render(c, views.Home(a.newPage(c, "inicio", meta), content.Services(), content.Phases(), posts))
}

func (a *App) handleServices(c echo.Context) error {
	site := a.seoSite()
	services := content.Services()
	names := make([]string, len(services))
	urls := make([]string, len(services))
	for i, sv := range services {
		names[i] = sv.Name
		urls[i] = a.canonical("servicios", sv.Slug)
	}
	meta := seo.Meta{
		Title:       "Servicios | " + a.Config.Name,
		Description: "Servicios de consultoría: SEO, publicidad digital, analítica, IA aplicada al marketing y estrategia integral.",
		Canonical:   a.canonical("servicios"),
		JSONLD: []string{
			seo.OfferCatalogJsonLD(site, names, urls),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Servicios"},
			}),
		},
	}
	return Render(c, views.Services(a.newPage(c, "servicios", meta), services))
}

func (a *App) handleService(c echo.Context) error {
	sv, ok := content.ServiceBySlug(c.Param("slug"))
	if !ok {
		return a.renderNotFound(c)
	}
	site := a.seoSite()
	pageURL := a.canonical("servicios", sv.Slug)
	meta := seo.Meta{
		Title:       sv.Name + " | " + a.Config.Name,
		Description: sv.Summary,
		Canonical:   pageURL,
		JSONLD: []string{
			seo.ServiceJsonLD(site, sv.Name, sv.Summary, pageURL),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Servicios", URL: a.canonical("servicios")},
				{Name: sv.Name},
			}),
		},
	}
	return Render(c, views.ServiceDetail(a.newPage(c, "servicios", meta), sv))
}

func (a *App) handleMethod(c echo.Context) error {
	site := a.seoSite()
	meta := seo.Meta{
		Title:       "Mi Método | " + a.Config.Name,
		Description: "Las seis fases de trabajo: análisis, estrategia, implementación, medición, optimización y escalado.",
		Canonical:   a.canonical("mi-metodo"),
		JSONLD: []string{
			seo.WebPageJsonLD(site, "Mi Método", "Metodología de trabajo en seis fases.", a.canonical("mi-metodo")),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Mi Método"},
			}),
		},
	}
	return Render(c, views.Method(a.newPage(c, "metodo", meta), content.Phases()))
}

func (a *App) handleMethodPhase(c echo.Context) error {
	ph, ok := content.PhaseBySlug(c.Param("slug"))
	if !ok {
		return a.renderNotFound(c)
	}
	site := a.seoSite()
	pageURL := a.canonical("mi-metodo", ph.Slug)
	meta := seo.Meta{
		Title:       fmt.Sprintf("Fase %d: %s | %s", ph.Number, ph.Name, a.Config.Name),
		Description: ph.Summary,
		Canonical:   pageURL,
		JSONLD: []string{
			seo.WebPageJsonLD(site, ph.Name, ph.Summary, pageURL),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Mi Método", URL: a.canonical("mi-metodo")},
				{Name: ph.Name},
			}),
		},
	}
	return Render(c, views.MethodPhase(a.newPage(c, "metodo", meta), ph, content.Phases()))
}

func (a *App) handleAbout(c echo.Context) error {
	site := a.seoSite()
	meta := seo.Meta{
		Title:       "Quién Soy | " + a.Config.Name,
		Description: "Consultor de estrategia digital. Datos, método y foco en la cuenta de resultados.",
		Canonical:   a.canonical("quien-soy"),
		JSONLD: []string{
			seo.ProfilePageJsonLD(site, a.canonical("quien-soy")),
		},
	}
	return Render(c, views.About(a.newPage(c, "quien-soy", meta)))
}

func (a *App) handleBlog(c echo.Context) error {
	site := a.seoSite()
	meta := seo.Meta{
		Title:       "Blog | " + a.Config.Name,
		Description: "Artículos sobre SEO, analítica, IA y estrategia digital.",
		Canonical:   a.canonical("blog"),
		JSONLD: []string{
			seo.WebPageJsonLD(site, "Blog", "Artículos sobre SEO, analítica, IA y estrategia digital.", a.canonical("blog")),
		},
	}
	return Render(c, views.Blog(a.newPage(c, "blog", meta), content.Posts(), content.Categories(), content.Tags()))
}

func (a *App) handlePost(c echo.Context) error {
	post, ok := content.PostBySlug(c.Param("slug"))
	if !ok {
		return a.renderNotFound(c)
	}
	site := a.seoSite()
	postURL := a.canonical("blog", post.Slug)
	meta := seo.Meta{
		Title:       post.Title + " | " + a.Config.Name,
		Description: post.Excerpt,
		Canonical:   postURL,
		OG:          seo.OpenGraph{Type: "article", Image: a.postImageURL(post)},
		Twitter:     seo.Twitter{Card: "summary_large_image", Image: a.postImageURL(post)},
		JSONLD: []string{
			seo.BlogPostingJsonLD(site, post.Title, post.Excerpt, postURL, post.Date, post.Modified(), post.Author, post.Tags),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Blog", URL: a.canonical("blog")},
				{Name: post.Category, URL: a.canonical("blog", "categoria", content.DeriveSlug(post.Category))},
				{Name: post.Title},
			}),
		},
	}
	related := content.SelectRelated(post, content.Posts(), relatedLimit)
	return Render(c, views.BlogPost(a.newPage(c, "blog", meta), post, related))
}

func (a *App) postImageURL(p content.Post) string {
	if p.Image == "" {
		return ""
	}
	return a.canonical("img") + p.Image
}

func (a *App) handleCategory(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return a.renderNotFound(c)
	}
	site := a.seoSite()
	posts := content.FilterByCategorySlug(content.Posts(), slug)
	heading := content.FormatSlugForDisplay(slug)
	if len(posts) > 0 {
		heading = posts[0].Category
	}
	pageURL := a.canonical("blog", "categoria", slug)
	meta := seo.Meta{
		Title:       heading + " | Blog | " + a.Config.Name,
		Description: "Artículos de la categoría " + heading + ".",
		Canonical:   pageURL,
		JSONLD: []string{
			seo.WebPageJsonLD(site, heading, "Artículos de la categoría "+heading+".", pageURL),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Blog", URL: a.canonical("blog")},
				{Name: heading},
			}),
		},
	}
	return Render(c, views.BlogCategory(a.newPage(c, "blog", meta), slug, posts))
}

func (a *App) handleTag(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return a.renderNotFound(c)
	}
	site := a.seoSite()
	posts := content.FilterByTagSlug(content.Posts(), slug)
	heading := content.FormatSlugForDisplay(slug)
	pageURL := a.canonical("blog", "tag", slug)
	meta := seo.Meta{
		Title:       heading + " | Blog | " + a.Config.Name,
		Description: "Artículos etiquetados con " + heading + ".",
		Canonical:   pageURL,
		JSONLD: []string{
			seo.WebPageJsonLD(site, heading, "Artículos etiquetados con "+heading+".", pageURL),
			seo.BreadcrumbListJsonLD([]seo.Crumb{
				{Name: "Inicio", URL: a.canonical()},
				{Name: "Blog", URL: a.canonical("blog")},
				{Name: heading},
			}),
		},
	}
	return Render(c, views.BlogTag(a.newPage(c, "blog", meta), slug, posts))
}

func (a *App) contactMeta() seo.Meta {
	return seo.Meta{
		Title:       "Contacto | " + a.Config.Name,
		Description: "Cuéntame tu proyecto y te responderé en menos de 24 horas laborables.",
		Canonical:   a.canonical("contacto"),
		JSONLD: []string{
			seo.ContactPageJsonLD(a.seoSite(), a.canonical("contacto")),
		},
	}
}

func (a *App) handleContact(c echo.Context) error {
	form := views.ContactForm{CSRFToken: CsrfToken(c)}
	return Render(c, views.Contact(a.newPage(c, "contacto", a.contactMeta()), form))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	sub := ContactSubmission{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
		Consent: c.FormValue("consent") != "",
	}
	form := views.ContactForm{
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Consent:   sub.Consent,
		CSRFToken: CsrfToken(c),
	}
	p := a.newPage(c, "contacto", a.contactMeta())

	// Validation (consent included) happens before any network call.
	if msg := sub.Validate(); msg != "" {
		form.Error = msg
		return Render(c, views.Contact(p, form))
	}
	if !a.contactLimiter.Allow(c.RealIP()) {
		form.Error = msgTooManyRequests
		return Render(c, views.Contact(p, form))
	}

	err := a.formBackend.Submit(c.Request().Context(), sub)

	// The lead is recorded either way so no inquiry is lost.
	lead := leads.Lead{
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Forwarded: err == nil,
	}
	if err != nil {
		lead.ForwardError = err.Error()
	}
	if _, saveErr := a.Leads.Save(lead); saveErr != nil {
		c.Logger().Errorf("save lead: %v", saveErr)
	}

	if err != nil {
		if se, ok := err.(*SubmitError); ok {
			form.Error = se.Display
		} else {
			form.Error = msgGenericFailure
		}
		return Render(c, views.Contact(p, form))
	}

	form.Sent = true
	form.Notice = msgSent
	return Render(c, views.Contact(p, form))
}

func (a *App) handleLegalNotice(c echo.Context) error {
	meta := a.legalMeta("Aviso legal", "aviso-legal")
	return Render(c, views.LegalNotice(a.newPage(c, "", meta)))
}

func (a *App) handlePrivacyPolicy(c echo.Context) error {
	meta := a.legalMeta("Política de privacidad", "politica-privacidad")
	return Render(c, views.PrivacyPolicy(a.newPage(c, "", meta)))
}

func (a *App) handleCookiePolicy(c echo.Context) error {
	meta := a.legalMeta("Política de cookies", "politica-cookies")
	return Render(c, views.CookiePolicy(a.newPage(c, "", meta)))
}

func (a *App) legalMeta(title, slug string) seo.Meta {
	pageURL := a.canonical(slug)
	return seo.Meta{
		Title:       title + " | " + a.Config.Name,
		Description: title + " de " + a.Config.Name + ".",
		Canonical:   pageURL,
		JSONLD: []string{
			seo.WebPageJsonLD(a.seoSite(), title, title+" de "+a.Config.Name+".", pageURL),
		},
	}
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context) error {
	meta := seo.Meta{Title: "Página no encontrada | " + a.Config.Name}
	return RenderStatus(c, http.StatusNotFound, views.NotFound(a.newPage(c, "", meta)))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		c.Logger().Warnf("404: %s", c.Request().URL.Path)
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		meta := seo.Meta{Title: "Error | " + a.Config.Name}
		_ = RenderStatus(c, code, views.ServerError(a.newPage(c, "", meta)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
