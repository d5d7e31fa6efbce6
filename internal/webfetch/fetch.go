// Package webfetch extracts the readable text of an article URL so
// operators (or the model, via the fetch subcommand) can read a source
// beyond the metadata newsfresh returns.
package webfetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const userAgent = "newswatch/0.1 (+https://github.com/newswatch/newswatch)"

// DefaultMaxChars bounds extracted article text.
const DefaultMaxChars = 20_000

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads rawURL and returns its readable text, title first.
// Non-HTML responses are returned as-is. Text beyond maxChars is cut with
// a truncation marker.
func Fetch(ctx context.Context, rawURL string, maxChars int) (string, error) {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var text string
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		article, err := readability.FromReader(bytes.NewReader(body), parsed)
		if err == nil {
			text = strings.TrimSpace(article.TextContent)
			if article.Title != "" {
				text = article.Title + "\n\n" + text
			}
		}
	}
	if text == "" {
		text = string(body)
	}

	if n := len(text); n > maxChars {
		text = text[:maxChars] + fmt.Sprintf("\n[truncated, %d chars total]", n)
	}
	return text, nil
}
