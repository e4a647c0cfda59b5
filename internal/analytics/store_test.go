package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got != "" {
		t.Errorf("unset setting should be empty, got %q", got)
	}

	if err := s.SetSetting("hash_salt", "abc123"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	got, err = s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("GetSetting = %q, want abc123", got)
	}
}

func TestRecordVisitAndStats(t *testing.T) {
	s := setupTestStore(t)

	now := time.Now().UTC()
	visits := []Visit{
		{IPHash: "aaaa", Path: "/", Timestamp: now},
		{IPHash: "aaaa", Path: "/blog/", Timestamp: now},
		{IPHash: "bbbb", Path: "/", Timestamp: now},
	}
	for _, v := range visits {
		if err := s.RecordVisit(v); err != nil {
			t.Fatalf("RecordVisit failed: %v", err)
		}
	}

	stats, err := s.GetStats(30)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", stats.TotalViews)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", stats.UniqueVisitors)
	}
	if len(stats.TopPages) == 0 || stats.TopPages[0].Path != "/" {
		t.Errorf("TopPages[0] should be /, got %+v", stats.TopPages)
	}
	if len(stats.DailyViews) != 1 {
		t.Errorf("DailyViews count = %d, want 1", len(stats.DailyViews))
	}
}

func TestDeleteOlderThan(t *testing.T) {
	s := setupTestStore(t)

	old := Visit{IPHash: "cccc", Path: "/", Timestamp: time.Now().UTC().AddDate(0, 0, -400)}
	recent := Visit{IPHash: "dddd", Path: "/", Timestamp: time.Now().UTC()}
	for _, v := range []Visit{old, recent} {
		if err := s.RecordVisit(v); err != nil {
			t.Fatalf("RecordVisit failed: %v", err)
		}
	}

	if err := s.DeleteOlderThan(365); err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}

	stats, err := s.GetStats(1000)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("TotalViews after cleanup = %d, want 1", stats.TotalViews)
	}
}
