// Package fetcher provides the shared HTTP client for all scrape stages.
// It sends a browser-profile User-Agent and enforces a per-host minimum
// delay so that parallel stages never hammer a single remote host.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const defaultTimeout = 15 * time.Second

// StatusError reports a non-2xx response. Callers treat it as a
// recoverable "nothing from this source" condition.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

type Fetcher struct {
	client    *http.Client
	userAgent string

	perHostDelay time.Duration
	mu           sync.Mutex
	limiters     map[string]*rate.Limiter
}

// New creates a Fetcher whose requests to any single host are spaced at
// least perHostDelay apart. A zero or negative delay disables limiting.
func New(perHostDelay time.Duration) *Fetcher {
	return &Fetcher{
		client:       &http.Client{Timeout: defaultTimeout},
		userAgent:    defaultUserAgent,
		perHostDelay: perHostDelay,
		limiters:     make(map[string]*rate.Limiter),
	}
}

func (f *Fetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	if lim, ok := f.limiters[host]; ok {
		return lim
	}
	limit := rate.Inf
	if f.perHostDelay > 0 {
		limit = rate.Every(f.perHostDelay)
	}
	lim := rate.NewLimiter(limit, 1)
	f.limiters[host] = lim
	return lim
}

// Get fetches a URL and returns the response body. Non-2xx responses
// return a *StatusError.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}

	if err := f.limiter(parsed.Host).Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// GetText fetches a URL and returns the body as a trimmed string.
func (f *Fetcher) GetText(ctx context.Context, rawURL string) (string, error) {
	body, err := f.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// GetDocument fetches a URL and parses the body as an HTML document.
func (f *Fetcher) GetDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := f.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
