package site

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alvarostrategy/site/internal/leads"
	"github.com/alvarostrategy/site/internal/seo"
	"github.com/alvarostrategy/site/views"
)

func (a *App) adminPage(c echo.Context, title string) views.Page {
	return a.newPage(c, "", seo.Meta{Title: title + " | " + a.Config.Name})
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.adminPage(c, "Acceso"), false, CsrfToken(c)))
	}
	items, err := a.Leads.List()
	if err != nil {
		return err
	}
	return Render(c, views.AdminLeads(a.adminPage(c, "Leads"), items, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Demasiados intentos. Prueba de nuevo en un minuto.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.adminPage(c, "Acceso"), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDeleteLead(c echo.Context) error {
	if !IsAdmin(c) {
		return c.NoContent(http.StatusForbidden)
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Leads.Delete(id); err != nil {
		if err == leads.ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (a *App) handleAdminAnalytics(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}
	stats, err := a.analyticsStore.GetStats(days)
	if err != nil {
		return err
	}
	return Render(c, views.AdminAnalytics(a.adminPage(c, "Analítica"), stats, CsrfToken(c)))
}
