package leads

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := setupTestStore(t)

	lead := Lead{
		Name:      "María López",
		Email:     "maria@example.com",
		Phone:     "+34 600 000 000",
		Subject:   "Consultoría SEO",
		Message:   "Quiero mejorar el posicionamiento de mi tienda.",
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Forwarded: true,
	}

	id, err := s.Save(lead)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Save should assign a non-zero id")
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != lead.Name {
		t.Errorf("Name = %q, want %q", got.Name, lead.Name)
	}
	if got.Email != lead.Email {
		t.Errorf("Email = %q, want %q", got.Email, lead.Email)
	}
	if !got.Forwarded {
		t.Error("Forwarded should be true")
	}
	if !got.CreatedAt.Equal(lead.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, lead.CreatedAt)
	}
}

func TestSaveRecordsForwardError(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Save(Lead{
		Name:         "Juan",
		Email:        "juan@example.com",
		Message:      "Hola",
		Forwarded:    false,
		ForwardError: "backend returned 502",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Forwarded {
		t.Error("Forwarded should be false")
	}
	if got.ForwardError != "backend returned 502" {
		t.Errorf("ForwardError = %q", got.ForwardError)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := setupTestStore(t)

	for _, name := range []string{"primero", "segundo", "tercero"} {
		if _, err := s.Save(Lead{Name: name, Email: name + "@example.com", Message: "m"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("List count = %d, want 3", len(got))
	}
	if got[0].Name != "tercero" {
		t.Errorf("first listed lead should be the newest, got %q", got[0].Name)
	}
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Save(Lead{Name: "borrar", Email: "b@example.com", Message: "m"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(id); err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestDeleteNonexistent(t *testing.T) {
	s := setupTestStore(t)
	if err := s.Delete(12345); err != ErrNotFound {
		t.Errorf("Delete on nonexistent should return ErrNotFound, got: %v", err)
	}
}
