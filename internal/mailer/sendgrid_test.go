package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSend_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/mail/send" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	m := NewWithBaseURL("sg-key", "alerts@example.com", server.URL)
	err := m.Send(context.Background(), "reader@example.com", "[newswatch] 3 new articles", "<h1>hi</h1>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer sg-key" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	from, _ := gotBody["from"].(map[string]any)
	if from["email"] != "alerts@example.com" {
		t.Errorf("unexpected from: %v", gotBody["from"])
	}
	if gotBody["subject"] != "[newswatch] 3 new articles" {
		t.Errorf("unexpected subject: %v", gotBody["subject"])
	}
}

func TestSend_APIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"errors":[{"message":"bad key"}]}`)
	}))
	defer server.Close()

	m := NewWithBaseURL("wrong", "alerts@example.com", server.URL)
	err := m.Send(context.Background(), "reader@example.com", "s", "b")
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "bad key") {
		t.Errorf("expected status and body excerpt in error, got: %v", err)
	}
}
