package common

import (
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/urfave/cli/v2"
)

// NewLogger builds the shared structured logger. --quiet suppresses
// everything below error.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation, markdown artifacts.
func SanitizeURL(rawURL string) string {
	// Trim all whitespace from edges
	cleaned := strings.TrimSpace(rawURL)

	// Extract URL from markdown link format: [text](url) -> url
	markdownLinkPattern := regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// Remove common trailing punctuation from copy-paste errors
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	// Remove leading markdown/formatting artifacts
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	// Trim again after removing punctuation
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// SanitizeAndValidateURLs sanitizes all URLs and returns (sanitized URLs, invalid URLs).
// Invalid URLs are those that fail validation even after sanitization.
func SanitizeAndValidateURLs(urls []string) ([]string, []string) {
	sanitized := make([]string, 0, len(urls))
	var invalidURLs []string

	// Must start with http:// or https:// and carry a plausible domain
	urlPattern := regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.]*[a-zA-Z0-9](/[^\s]*)?$`)

	for _, rawURL := range urls {
		cleaned := SanitizeURL(rawURL)

		// Empty URLs after sanitization are invalid
		if cleaned == "" {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		// Reject URLs with literal spaces (must be pre-encoded as %20)
		if strings.Contains(cleaned, " ") {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		if !urlPattern.MatchString(cleaned) {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		parsed, err := url.Parse(cleaned)
		if err != nil {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		if parsed.Host == "" {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		// Braces and quotes in the host indicate a malformed URL
		if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
			invalidURLs = append(invalidURLs, rawURL)
			continue
		}

		sanitized = append(sanitized, cleaned)
	}

	return sanitized, invalidURLs
}
