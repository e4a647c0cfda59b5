package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestContactSubmissionValidate(t *testing.T) {
	cases := []struct {
		name string
		sub  ContactSubmission
		want string
	}{
		{
			name: "valid",
			sub:  ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "Hola", Consent: true},
			want: "",
		},
		{
			name: "no consent",
			sub:  ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "Hola"},
			want: msgConsentRequired,
		},
		{
			name: "consent checked before fields",
			sub:  ContactSubmission{},
			want: msgConsentRequired,
		},
		{
			name: "missing message",
			sub:  ContactSubmission{Name: "Ana", Email: "ana@example.com", Consent: true},
			want: msgFieldsRequired,
		},
		{
			name: "whitespace only name",
			sub:  ContactSubmission{Name: "   ", Email: "ana@example.com", Message: "Hola", Consent: true},
			want: msgFieldsRequired,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sub.Validate(); got != tc.want {
				t.Errorf("Validate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormspreeBackendSubmit(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	b := NewFormspreeBackend(srv.URL, 0)
	sub := ContactSubmission{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Consultoría",
		Message: "Hola",
		Consent: true,
	}
	if err := b.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if received["_replyto"] != "ana@example.com" {
		t.Errorf("_replyto = %q, want sender email", received["_replyto"])
	}
	if received["name"] != "Ana" || received["message"] != "Hola" {
		t.Errorf("payload = %v", received)
	}
}

func TestFormspreeBackendErrorMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"message":"Invalid email"},{"message":"Missing message"}]}`))
	}))
	defer srv.Close()

	b := NewFormspreeBackend(srv.URL, 0)
	err := b.Submit(context.Background(), ContactSubmission{Name: "Ana", Email: "x", Message: "y", Consent: true})
	se, ok := err.(*SubmitError)
	if !ok {
		t.Fatalf("error type = %T, want *SubmitError", err)
	}
	if se.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d", se.StatusCode)
	}
	if se.Display != "Invalid email. Missing message" {
		t.Errorf("Display = %q", se.Display)
	}
}

func TestFormspreeBackendUnparsableError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broke"))
	}))
	defer srv.Close()

	b := NewFormspreeBackend(srv.URL, 0)
	err := b.Submit(context.Background(), ContactSubmission{Name: "Ana", Email: "x", Message: "y", Consent: true})
	se, ok := err.(*SubmitError)
	if !ok {
		t.Fatalf("error type = %T, want *SubmitError", err)
	}
	if se.Display != msgGenericFailure {
		t.Errorf("Display = %q, want generic message", se.Display)
	}
}

func TestFormspreeBackendUnreachable(t *testing.T) {
	b := NewFormspreeBackend("http://127.0.0.1:1/submit", 0)
	err := b.Submit(context.Background(), ContactSubmission{Name: "Ana", Email: "x", Message: "y", Consent: true})
	se, ok := err.(*SubmitError)
	if !ok {
		t.Fatalf("error type = %T, want *SubmitError", err)
	}
	if se.Display != msgGenericFailure {
		t.Errorf("Display = %q, want generic message", se.Display)
	}
}
