package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Spanish inline messages shown next to the form.
const (
	msgConsentRequired = "Debes aceptar la política de privacidad para continuar."
	msgFieldsRequired  = "Nombre, email y mensaje son obligatorios."
	msgTooManyRequests = "Has enviado demasiados mensajes seguidos. Espera un minuto e inténtalo de nuevo."
	msgGenericFailure  = "No se pudo enviar el mensaje. Inténtalo de nuevo más tarde."
	msgSent            = "¡Mensaje enviado! Te responderé en menos de 24 horas laborables."
)

// ContactSubmission is one contact-form submission as received from the browser.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Consent bool
}

// Validate checks the submission preconditions. The returned string is the
// inline message to display; empty means valid. Consent is checked first:
// without it no network call may be attempted.
func (s ContactSubmission) Validate() string {
	if !s.Consent {
		return msgConsentRequired
	}
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Email) == "" || strings.TrimSpace(s.Message) == "" {
		return msgFieldsRequired
	}
	return ""
}

// SubmitError is a failed forward to the form backend. Display holds the
// text shown to the visitor: the backend's own error messages when they could
// be parsed, a generic retry-later message otherwise.
type SubmitError struct {
	StatusCode int
	Display    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("form backend: status %d: %s", e.StatusCode, e.Display)
}

// FormBackend forwards a submission to the external form service.
type FormBackend interface {
	Submit(ctx context.Context, s ContactSubmission) error
}

// FormspreeBackend posts submissions as JSON to a Formspree-style endpoint.
type FormspreeBackend struct {
	endpoint string
	client   *http.Client
}

// NewFormspreeBackend creates a backend for the given endpoint URL.
func NewFormspreeBackend(endpoint string, timeout time.Duration) *FormspreeBackend {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FormspreeBackend{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Submit serializes the submission and posts it. Any 2xx response is
// success. On failure it attempts to parse a JSON body of the form
// {"errors":[{"message":"..."}]} and joins the messages for display.
func (b *FormspreeBackend) Submit(ctx context.Context, s ContactSubmission) error {
	payload := map[string]string{
		"name":     s.Name,
		"email":    s.Email,
		"phone":    s.Phone,
		"subject":  s.Subject,
		"message":  s.Message,
		"_replyto": s.Email,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return &SubmitError{Display: msgGenericFailure}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{Display: msgGenericFailure}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return &SubmitError{Display: msgGenericFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &SubmitError{
		StatusCode: resp.StatusCode,
		Display:    parseBackendErrors(resp),
	}
}

// parseBackendErrors extracts the display text from a non-OK response.
func parseBackendErrors(resp *http.Response) string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || len(parsed.Errors) == 0 {
		return msgGenericFailure
	}
	messages := make([]string, 0, len(parsed.Errors))
	for _, e := range parsed.Errors {
		if e.Message != "" {
			messages = append(messages, e.Message)
		}
	}
	if len(messages) == 0 {
		return msgGenericFailure
	}
	return strings.Join(messages, ". ")
}
