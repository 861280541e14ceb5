package webscraper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/rajeshr264/puppet-llm-training-project/models"
	"github.com/rajeshr264/puppet-llm-training-project/pkg/fetcher"
)

func testScraper() *Scraper {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(fetcher.New(0), logger)
}

func serve(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestScrapePageExtractsPuppetCode(t *testing.T) {
	page := `<html><body>
		<h2>Apache class example</h2>
		<pre>class apache {
  package { 'apache2':
    ensure => installed,
  }
}</pre>
	</body></html>`
	server := serve(t, map[string]string{"/docs": page})

	result, err := testScraper().ScrapePage(context.Background(), server.URL+"/docs", 0)
	if err != nil {
		t.Fatalf("ScrapePage() error = %v", err)
	}

	if len(result.Examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(result.Examples))
	}
	ex := result.Examples[0]
	if ex.Origin != models.OriginHTMLElement {
		t.Errorf("Origin = %q, want %q", ex.Origin, models.OriginHTMLElement)
	}
	if !strings.Contains(ex.Code, "class apache") {
		t.Errorf("Code = %q, want the apache class body", ex.Code)
	}
	if ex.Description != "Apache class example" {
		t.Errorf("Description = %q, want the preceding heading", ex.Description)
	}
	if ex.PuppetScore < 2 {
		t.Errorf("PuppetScore = %d, want >= 2", ex.PuppetScore)
	}
	if ex.ElementTag != "pre" {
		t.Errorf("ElementTag = %q, want pre", ex.ElementTag)
	}
}

func TestScrapePageIgnoresProse(t *testing.T) {
	page := `<html><body>
		<pre>This is just a paragraph of ordinary prose inside a pre tag with nothing special about it.</pre>
	</body></html>`
	server := serve(t, map[string]string{"/prose": page})

	result, err := testScraper().ScrapePage(context.Background(), server.URL+"/prose", 0)
	if err != nil {
		t.Fatalf("ScrapePage() error = %v", err)
	}
	if len(result.Examples) != 0 {
		t.Errorf("got %d examples from prose, want 0", len(result.Examples))
	}
}

func TestScrapePageRawManifest(t *testing.T) {
	manifest := "class nginx {\n  package { 'nginx':\n    ensure => installed,\n  }\n}"
	server := serve(t, map[string]string{"/puppetlabs/puppetlabs-nginx/main/manifests/init.pp": manifest})

	rawURL := server.URL + "/puppetlabs/puppetlabs-nginx/main/manifests/init.pp"
	result, err := testScraper().ScrapePage(context.Background(), rawURL, 0)
	if err != nil {
		t.Fatalf("ScrapePage() error = %v", err)
	}

	if len(result.Examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(result.Examples))
	}
	ex := result.Examples[0]
	if ex.Origin != models.OriginRawFile {
		t.Errorf("Origin = %q, want %q", ex.Origin, models.OriginRawFile)
	}
	if ex.Code != manifest {
		t.Errorf("Code = %q, want the whole file", ex.Code)
	}
	if ex.PuppetScore != models.MaxScore {
		t.Errorf("PuppetScore = %d, want %d", ex.PuppetScore, models.MaxScore)
	}
	if ex.Description != "Puppet nginx module - init manifest" {
		t.Errorf("Description = %q", ex.Description)
	}
}

func TestScrapePageRawManifestTooShort(t *testing.T) {
	server := serve(t, map[string]string{"/stub.pp": "class a {}"})

	result, err := testScraper().ScrapePage(context.Background(), server.URL+"/stub.pp", 0)
	if err != nil {
		t.Fatalf("ScrapePage() error = %v", err)
	}
	if len(result.Examples) != 0 {
		t.Errorf("got %d examples from stub manifest, want 0", len(result.Examples))
	}
}

func TestScrapePageFetchError(t *testing.T) {
	server := serve(t, map[string]string{})

	_, err := testScraper().ScrapePage(context.Background(), server.URL+"/missing", 0)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	var statusErr *fetcher.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != 404 {
		t.Errorf("expected *fetcher.StatusError with code 404, got %v", err)
	}
}

func TestFindRelatedLinks(t *testing.T) {
	page := `<html><body>
		<a href="/docs/puppet-classes">Puppet classes</a>
		<a href="/docs/puppet-classes">Puppet classes again</a>
		<a href="https://other.example.net/puppet">External puppet link</a>
		<a href="/pricing">Pricing</a>
		<a href="/docs/writing-manifests">Writing manifests</a>
		<a href="/docs/defined-types">Defined type tutorial</a>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}

	links := FindRelatedLinks(doc, "https://docs.internal.io/start", 2)
	want := []string{
		"https://docs.internal.io/docs/puppet-classes",
		"https://docs.internal.io/docs/writing-manifests",
	}
	if len(links) != len(want) {
		t.Fatalf("got %d links %v, want %d", len(links), links, len(want))
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("links[%d] = %q, want %q", i, links[i], want[i])
		}
	}
}

func TestFindDescriptionPrefersKeyword(t *testing.T) {
	page := `<html><body>
		<h1>Site Title</h1>
		<h2>A manifest for Apache</h2>
		<pre>class apache { ensure => present }</pre>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}

	desc := findDescription(doc.Find("pre").First(), doc)
	if desc != "A manifest for Apache" {
		t.Errorf("findDescription() = %q, want the keyword heading", desc)
	}
}
