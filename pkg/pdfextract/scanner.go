// Package pdfextract pulls Puppet code examples out of paginated PDF
// documents using layout heuristics: a block opens on a declaration or
// resource-type line and continues while lines look like code.
package pdfextract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rajeshr264/puppet-llm-training-project/models"
)

var (
	// "Chapter 3", "Section 12", "4.2 Resource ordering".
	sectionRe = regexp.MustCompile(`^(Chapter \d+|Section \d+|\d+\.\d+)`)

	// Lines that open a code block: declarations or resource-type openers.
	openRe = regexp.MustCompile(`^(class\s+\w+|define\s+\w+|node\s+|file\s*\{|package\s*\{|service\s*\{|exec\s*\{)`)
)

const (
	minBlockLines = 2  // a block must have more lines than this
	minBlockLen   = 50 // and more trimmed characters than this
)

// blockScanner holds the running state of a top-to-bottom line scan:
// the most recent section header and the currently open code block.
type blockScanner struct {
	section  string
	buffer   []string
	inBlock  bool
	examples []models.Example
}

// feed consumes one line from the given page.
func (b *blockScanner) feed(line string, page int) {
	trimmed := strings.TrimSpace(line)

	if sectionRe.MatchString(trimmed) {
		b.section = trimmed
	}

	// An opener always starts a fresh buffer, even mid-block; the scan
	// keys on the innermost declaration it can see.
	if openRe.MatchString(trimmed) {
		b.inBlock = true
		b.buffer = []string{line}
		return
	}

	if !b.inBlock {
		return
	}

	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") ||
		strings.Contains(line, "=>") ||
		strings.HasSuffix(trimmed, ",") || trimmed == "}" {
		b.buffer = append(b.buffer, line)
		return
	}

	b.close(page)
}

// close ends the open block, accepting it only if it is long enough and
// actually contains Puppet syntax.
func (b *blockScanner) close(page int) {
	buffer := b.buffer
	b.inBlock = false
	b.buffer = nil

	if len(buffer) <= minBlockLines {
		return
	}

	code := strings.Join(buffer, "\n")
	if len(strings.TrimSpace(code)) <= minBlockLen {
		return
	}
	if !strings.Contains(code, "=>") &&
		!strings.Contains(code, "class ") &&
		!strings.Contains(code, "define ") {
		return
	}

	b.examples = append(b.examples, models.Example{
		Code:        code,
		Description: fmt.Sprintf("From %s on page %d", b.section, page),
		Source:      fmt.Sprintf("PDF page %d", page),
		PuppetScore: models.MaxScore,
		Origin:      models.OriginPDFBlock,
	})
}

// finish closes any block still open at end of document; it must pass the
// same acceptance filter as any other block.
func (b *blockScanner) finish(lastPage int) {
	if b.inBlock {
		b.close(lastPage)
	}
}
