// Package mailer sends HTML notification emails through the SendGrid v3
// API. The orchestration core treats delivery as a single
// deliver(to, subject, body) capability.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.sendgrid.com"

// Mailer is a thin client over SendGrid's mail/send endpoint.
type Mailer struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

// New creates a Mailer sending from the given address.
func New(apiKey, from string) *Mailer {
	return &Mailer{
		apiKey:     apiKey,
		from:       from,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithBaseURL is New with a custom API base, for tests.
func NewWithBaseURL(apiKey, from, baseURL string) *Mailer {
	m := New(apiKey, from)
	m.baseURL = strings.TrimRight(baseURL, "/")
	return m
}

// Send delivers one HTML email. A non-2xx API status is an error.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	body := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": m.from},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/html", "value": html},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL+"/v3/mail/send", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return fmt.Errorf("sendgrid HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}
