// Package dataset merges intermediate corpora into the final training
// corpus: quality filtering, description repair, whitespace normalization,
// global deduplication, and the held-out split.
package dataset

import (
	"regexp"
	"strings"
)

var (
	blankRunRe   = regexp.MustCompile(`\n\s*\n`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	classRe  = regexp.MustCompile(`class\s+(\w+)`)
	defineRe = regexp.MustCompile(`define\s+(\w+)`)
)

// CleanCode collapses runs of blank lines to one and re-indents every
// non-blank line at a fixed 2-space unit per nesting level, where the
// level is the original leading-space count divided by two. This is a
// lossy re-indent, not a formatter: it never parses block structure.
func CleanCode(code string) string {
	code = blankRunRe.ReplaceAllString(code, "\n\n")

	lines := strings.Split(code, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		if stripped == "" {
			cleaned = append(cleaned, "")
			continue
		}
		level := (len(line) - len(stripped)) / 2
		cleaned = append(cleaned, strings.Repeat("  ", level)+stripped)
	}

	return strings.Join(cleaned, "\n")
}

// CollapseWhitespace reduces all whitespace runs to single spaces. Two
// snippets that collapse to the same string are duplicates.
func CollapseWhitespace(code string) string {
	return whitespaceRe.ReplaceAllString(code, " ")
}

// Descriptions scraped from page chrome that carry no information.
var placeholderDescriptions = map[string]bool{
	"Classes": true,
	"Puppet":  true,
	"":        true,
}

const minDescriptionLen = 10

// RepairDescription replaces placeholder or too-short descriptions with
// one derived from the code itself, checked in declaration priority order.
func RepairDescription(description, code string) string {
	if !placeholderDescriptions[description] && len(description) >= minDescriptionLen {
		return description
	}

	switch {
	case strings.Contains(code, "class "):
		if m := classRe.FindStringSubmatch(code); m != nil {
			return "Puppet class " + m[1]
		}
	case strings.Contains(code, "define "):
		if m := defineRe.FindStringSubmatch(code); m != nil {
			return "Puppet defined type " + m[1]
		}
	case strings.Contains(code, "node "):
		return "Puppet node definition"
	case strings.Contains(code, "include "):
		return "Including Puppet classes"
	}
	return "Puppet configuration code"
}
