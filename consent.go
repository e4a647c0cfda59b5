package site

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alvarostrategy/site/internal/analytics"
)

type consentRequest struct {
	Value string `json:"value"`
}

// handleConsent records the visitor's cookie banner decision. The cookie
// lives for a year so the banner stays hidden on later visits.
func (a *App) handleConsent(c echo.Context) error {
	var req consentRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if req.Value != "accepted" && req.Value != "rejected" {
		return c.NoContent(http.StatusBadRequest)
	}
	c.SetCookie(&http.Cookie{
		Name:     ConsentCookieName,
		Value:    req.Value,
		Path:     "/",
		MaxAge:   consentMaxAge,
		HttpOnly: false,
		Secure:   a.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleVisit is the analytics beacon. Visits are only recorded for
// visitors who accepted cookies, and the IP is stored as a salted hash.
func (a *App) handleVisit(c echo.Context) error {
	if !hasAnalyticsConsent(c) {
		return c.NoContent(http.StatusNoContent)
	}
	var req analytics.VisitRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if req.Path == "" {
		return c.NoContent(http.StatusBadRequest)
	}
	visit := analytics.Visit{
		IPHash:   analytics.HashIP(c.RealIP()),
		Path:     req.Path,
		Referrer: req.Referrer,
	}
	if err := a.analyticsStore.RecordVisit(visit); err != nil {
		c.Logger().Errorf("record visit: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}
