package webscraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Tag priority for the backward search, largest heading first.
var descriptionTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "div"}

var descKeywords = []string{"example", "puppet", "code", "manifest", "class", "define"}

const (
	maxPrecedingLen = 500
	maxSiblingLen   = 300
)

// findDescription locates descriptive text for a code block: the nearest
// preceding heading or paragraph per tag in priority order, plus text-node
// siblings when the direct parent is a generic container. The first
// candidate mentioning Puppet-ish vocabulary wins, else the first found.
func findDescription(el *goquery.Selection, doc *goquery.Document) string {
	var candidates []string

	for _, tag := range descriptionTags {
		if prev := findPreviousText(doc, el, tag); prev != "" && len(prev) < maxPrecedingLen {
			candidates = append(candidates, prev)
		}
	}

	parent := el.Parent()
	switch goquery.NodeName(parent) {
	case "div", "section", "article":
		target := el.Get(0)
		parent.ChildrenFiltered("p,span,div").Each(func(_ int, sib *goquery.Selection) {
			if sib.Get(0) == target {
				return
			}
			text := strings.TrimSpace(sib.Text())
			if text != "" && len(text) < maxSiblingLen {
				candidates = append(candidates, text)
			}
		})
	}

	if len(candidates) == 0 {
		return ""
	}
	for _, desc := range candidates {
		lower := strings.ToLower(desc)
		for _, kw := range descKeywords {
			if strings.Contains(lower, kw) {
				return desc
			}
		}
	}
	return candidates[0]
}

// findPreviousText returns the text of the last element with the given tag
// that appears before the target in document order, or "" if there is none.
func findPreviousText(doc *goquery.Document, target *goquery.Selection, tag string) string {
	targetNode := target.Get(0)
	if targetNode == nil {
		return ""
	}

	var lastMatch *html.Node
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n == targetNode {
			return true
		}
		if n.Type == html.ElementNode && n.Data == tag {
			lastMatch = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	for _, root := range doc.Nodes {
		if walk(root) {
			break
		}
	}

	if lastMatch == nil {
		return ""
	}
	sel := doc.FindNodes(lastMatch)
	return strings.TrimSpace(sel.Text())
}
