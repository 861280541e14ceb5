package webscraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Topic keywords: a link qualifies for frontier expansion when its URL or
// anchor text mentions one of these.
var linkKeywords = []string{"puppet", "manifest", "class", "module", "type", "example", "tutorial"}

// FindRelatedLinks collects up to max same-domain links from the document
// that look like they lead to more Puppet content. Relative hrefs are
// resolved against the base URL.
func FindRelatedLinks(doc *goquery.Document, baseURL string, max int) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if href == "" {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		full := base.ResolveReference(ref)
		if full.Host != base.Host {
			return true
		}

		haystack := strings.ToLower(full.String() + " " + a.Text())
		for _, kw := range linkKeywords {
			if strings.Contains(haystack, kw) {
				u := full.String()
				if !seen[u] {
					seen[u] = true
					links = append(links, u)
				}
				break
			}
		}

		return len(links) < max
	})

	return links
}
