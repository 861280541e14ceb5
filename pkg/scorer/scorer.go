// Package scorer implements the heuristic Puppet-code plausibility score.
//
// The score is a plain count of regex pattern matches, not a parse. It is
// a documented approximation: downstream admission gates depend on its
// current false-positive/negative profile, so the pattern list is a fixed
// set rather than configuration.
package scorer

import (
	"regexp"
	"strings"
)

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bclass\s+\w+`),
	regexp.MustCompile(`(?i)\bdefine\s+\w+`),
	regexp.MustCompile(`(?i)\bnode\s+['"]?\w+`),
	regexp.MustCompile(`(?i)\binclude\s+\w+`),
	regexp.MustCompile(`(?i)\brequire\s+\w+`),
	regexp.MustCompile(`(?i)\bnotify\s*=>`),
	regexp.MustCompile(`(?i)\bfile\s*\{`),
	regexp.MustCompile(`(?i)\bpackage\s*\{`),
	regexp.MustCompile(`(?i)\bservice\s*\{`),
	regexp.MustCompile(`(?i)\bexec\s*\{`),
	regexp.MustCompile(`(?i)\buser\s*\{`),
	regexp.MustCompile(`(?i)\bgroup\s*\{`),
	regexp.MustCompile(`(?i)=>\s*['"]`),
	regexp.MustCompile(`(?i)\bensure\s*=>`),
	regexp.MustCompile(`(?i)\bcontent\s*=>`),
	regexp.MustCompile(`(?i)\bsource\s*=>`),
	regexp.MustCompile(`[$]\w+`),
	regexp.MustCompile(`\w+::\w+`),
}

// Score counts how many of the Puppet syntax patterns match the text.
// Every matching pattern contributes exactly 1; there is no cap and no
// weighting.
func Score(text string) int {
	score := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			score++
		}
	}
	return score
}

var admitKeywords = []string{"puppet", "manifest", ".pp"}

// HasKeyword reports whether the text mentions Puppet by name. Used as the
// secondary admission gate for blocks whose pattern score is too low.
func HasKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range admitKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
