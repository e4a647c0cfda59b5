package site

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alvarostrategy/site/internal/analytics"
	"github.com/alvarostrategy/site/internal/leads"
)

func newAnalyticsTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := SiteConfig{
		AdminPassword:         "secret",
		SessionSecret:         "0123456789abcdef0123456789abcdef",
		LeadsDatabasePath:     filepath.Join(dir, "leads.db"),
		AnalyticsEnabled:      true,
		AnalyticsDatabasePath: filepath.Join(dir, "analytics.db"),
	}
	a := New(cfg)

	store, err := leads.NewStore(a.Config.LeadsDatabasePath)
	if err != nil {
		t.Fatalf("leads store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	a.Leads = store

	as, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
	if err != nil {
		t.Fatalf("analytics store: %v", err)
	}
	t.Cleanup(func() { as.Close() })
	if err := analytics.InitSalt(as); err != nil {
		t.Fatalf("init salt: %v", err)
	}
	a.analyticsStore = as

	a.formBackend = &stubBackend{}
	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(3, time.Minute)
	a.thumbnails = newThumbnailCache()

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func postVisit(a *App, consent string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/visit",
		strings.NewReader(`{"path":"/blog/","referrer":""}`))
	req.Header.Set("Content-Type", "application/json")
	if consent != "" {
		req.AddCookie(&http.Cookie{Name: ConsentCookieName, Value: consent})
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestVisitRecordedWithConsent(t *testing.T) {
	a := newAnalyticsTestApp(t)
	rec := postVisit(a, "accepted")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	stats, err := a.analyticsStore.GetStats(7)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("TotalViews = %d, want 1", stats.TotalViews)
	}
}

func TestVisitIgnoredWithoutConsent(t *testing.T) {
	a := newAnalyticsTestApp(t)

	for _, consent := range []string{"", "rejected"} {
		rec := postVisit(a, consent)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("consent %q: status = %d", consent, rec.Code)
		}
	}
	stats, err := a.analyticsStore.GetStats(7)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalViews != 0 {
		t.Errorf("TotalViews = %d, want 0 without consent", stats.TotalViews)
	}
}
