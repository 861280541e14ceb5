package webscraper

import (
	"bytes"
	"net/url"

	"github.com/go-shiori/go-readability"
)

// PageContext is page-level metadata recorded as provenance alongside the
// extracted examples. It never feeds the per-block description search.
type PageContext struct {
	Title    string
	Excerpt  string
	SiteName string
	Author   string
}

// parsePageContext runs readability over the page for its metadata.
// Readability failures just mean no context; the examples stand on their own.
func parsePageContext(rawURL string, body []byte) *PageContext {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil
	}

	return &PageContext{
		Title:    article.Title,
		Excerpt:  article.Excerpt,
		SiteName: article.SiteName,
		Author:   article.Byline,
	}
}
