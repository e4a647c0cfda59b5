// Package site is the server-rendered marketing and lead-generation website
// for the Álvaro Strategy consultancy, built with Go, Echo, and templ.
// It serves the service pages, the six-phase methodology, the blog with
// category/tag listings, the contact form, and per-page SEO metadata.
package site

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alvarostrategy/site/internal/analytics"
	"github.com/alvarostrategy/site/internal/content"
	"github.com/alvarostrategy/site/internal/leads"
)

// App is the central application. It wires together the content collections,
// the lead store, the form backend, analytics, middleware, and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Leads  *leads.Store

	formBackend    FormBackend
	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	thumbnails     *thumbnailCache
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates the App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start validates the content, initializes the stores, middleware, and
// routes, and starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("site: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("site: SessionSecret is required")
	}

	if err := content.Validate(); err != nil {
		return fmt.Errorf("site: validate content: %w", err)
	}

	store, err := leads.NewStore(a.Config.LeadsDatabasePath)
	if err != nil {
		return fmt.Errorf("site: init lead store: %w", err)
	}
	a.Leads = store

	if a.formBackend == nil {
		a.formBackend = NewFormspreeBackend(a.Config.FormEndpoint, a.Config.ContactTimeout)
	}

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(3, time.Minute)
	a.thumbnails = newThumbnailCache()

	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("site: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
		if err := analytics.InitSalt(analyticsStore); err != nil {
			return fmt.Errorf("site: init analytics salt: %w", err)
		}
		stopCleanup := analyticsStore.StartCleanupScheduler(a.Config.AnalyticsRetentionDays, 24*time.Hour)
		defer stopCleanup()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets fall through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/img/:filename", a.handleThumbnail)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/servicios/", a.handleServices)
	e.GET("/servicios/:slug/", a.handleService)
	e.GET("/mi-metodo/", a.handleMethod)
	e.GET("/mi-metodo/:slug/", a.handleMethodPhase)
	e.GET("/quien-soy/", a.handleAbout)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/blog/categoria/:slug/", a.handleCategory)
	e.GET("/blog/tag/:slug/", a.handleTag)
	e.GET("/contacto/", a.handleContact)
	e.POST("/contacto/", a.handleContactSubmit)
	e.GET("/aviso-legal/", a.handleLegalNotice)
	e.GET("/politica-privacidad/", a.handlePrivacyPolicy)
	e.GET("/politica-cookies/", a.handleCookiePolicy)

	// Consent + analytics beacon
	e.POST("/api/consent", a.handleConsent)
	if a.Config.AnalyticsEnabled && a.analyticsStore != nil {
		e.POST("/api/analytics/visit", a.handleVisit)
	}

	// Admin: lead inbox
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.DELETE("/admin/lead/:id/", a.handleAdminDeleteLead)
	if a.Config.AnalyticsEnabled {
		e.GET("/admin/analytics/", a.handleAdminAnalytics)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Leads != nil {
		a.Leads.Close()
	}
	if a.analyticsStore != nil {
		a.analyticsStore.Close()
	}
	return nil
}
