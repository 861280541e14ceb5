// Package webscraper extracts Puppet code examples from web pages.
//
// Raw manifest URLs (.pp files, raw.githubusercontent.com) are taken whole;
// everything else is parsed as HTML and walked through a fixed set of code
// container selectors, with each candidate block gated by the plausibility
// scorer.
package webscraper

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/fetcher"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/scorer"
)

// Candidate blocks shorter than this are markup noise, not code.
const minSnippetLen = 10

// Raw manifest bodies shorter than this are empty or stub files.
const minRawFileLen = 20

// A block is admitted when its pattern score reaches this, or when it
// mentions Puppet by name.
const minAdmitScore = 2

var codeSelectors = []string{
	"pre", "code",
	"div.highlight", "div.code", "div.codehilite",
	"div[class*='highlight']", "div[class*='code']",
	"div[class*='language']", "div[class*='puppet']",
	"span[class*='highlight']",
}

type Scraper struct {
	fetcher *fetcher.Fetcher
	logger  *slog.Logger
}

func New(f *fetcher.Fetcher, logger *slog.Logger) *Scraper {
	return &Scraper{fetcher: f, logger: logger}
}

// PageResult is everything one page contributed.
type PageResult struct {
	URL      string
	Examples []models.Example
	Context  *PageContext
	Related  []string
}

// ScrapePage fetches one URL and extracts every admissible code example.
// Fetch and parse failures are recoverable: the caller logs, records the
// failed access, and moves on to the next URL.
func (s *Scraper) ScrapePage(ctx context.Context, rawURL string, maxRelated int) (*PageResult, error) {
	body, err := s.fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	result := &PageResult{URL: rawURL}

	if isRawManifestURL(rawURL) {
		result.Examples = rawFileExamples(rawURL, body)
		s.logger.Info("Raw manifest fetched", "url", rawURL, "bytes", len(body))
		return result, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	result.Examples = extractFromDocument(doc, rawURL)
	result.Context = parsePageContext(rawURL, body)
	if maxRelated > 0 {
		result.Related = FindRelatedLinks(doc, rawURL, maxRelated)
	}

	s.logger.Info("Page scraped", "url", rawURL, "examples", len(result.Examples), "related", len(result.Related))
	return result, nil
}

// isRawManifestURL reports whether the URL points at a raw Puppet manifest
// rather than an HTML page.
func isRawManifestURL(rawURL string) bool {
	return strings.HasSuffix(rawURL, ".pp") || strings.Contains(rawURL, "raw.githubusercontent.com")
}

// rawFileExamples treats the whole response body as a single manifest.
func rawFileExamples(rawURL string, body []byte) []models.Example {
	content := strings.TrimSpace(string(body))
	if len(content) <= minRawFileLen {
		return nil
	}

	return []models.Example{{
		Code:        content,
		Description: describeRawURL(rawURL),
		Source:      rawURL,
		PuppetScore: models.MaxScore,
		Origin:      models.OriginRawFile,
	}}
}

// describeRawURL derives a description from the trailing path segments of
// a raw manifest URL: owner/repo/branch/...path/name.pp.
func describeRawURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "Puppet manifest"
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	filename := segments[len(segments)-1]
	if len(segments) < 2 {
		return "Puppet manifest " + filename
	}

	module := strings.TrimPrefix(segments[1], "puppetlabs-")
	name := strings.TrimSuffix(filename, ".pp")
	return "Puppet " + module + " module - " + name + " manifest"
}

// extractFromDocument walks the code container selectors and admits each
// block that scores high enough or mentions Puppet outright. An element
// matched by more than one selector is collected once per selector; the
// dataset stage deduplicates on code content.
func extractFromDocument(doc *goquery.Document, pageURL string) []models.Example {
	var examples []models.Example

	for _, selector := range codeSelectors {
		doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
			code := strings.TrimSpace(el.Text())
			if len(code) < minSnippetLen {
				return
			}

			score := scorer.Score(code)
			if score < minAdmitScore && !scorer.HasKeyword(code) {
				return
			}

			classAttr, _ := el.Attr("class")
			examples = append(examples, models.Example{
				Code:           code,
				Description:    findDescription(el, doc),
				Source:         pageURL,
				PuppetScore:    score,
				Origin:         models.OriginHTMLElement,
				ElementTag:     goquery.NodeName(el),
				ElementClasses: strings.Fields(classAttr),
			})
		})
	}

	return examples
}
