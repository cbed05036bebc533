package clue

import (
	"regexp"
	"strings"

	"github.com/gitrdm/logigrid/pkg/csp"
)

var (
	leadingQuote  = regexp.MustCompile("^[`\"']+")
	trailingQuote = regexp.MustCompile("[`\"']+$")
	trailingStop  = regexp.MustCompile(`[.!]+\s*$`)
)

// Normalize strips a clue sentence's surrounding quotes/backticks and
// terminal punctuation before template matching, per spec §4.D.
func Normalize(sentence string) string {
	s := strings.TrimSpace(sentence)
	s = leadingQuote.ReplaceAllString(s, "")
	s = trailingQuote.ReplaceAllString(s, "")
	s = trailingStop.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Compile turns one clue sentence into the constraints it expresses.
// The cascade of 12 templates (spec §4.D) is tried in order; the first
// whose shape matches AND whose value references resolve wins. A
// sentence that matches no template becomes a single non-binding
// constraint, preserved for diagnostics but never causing a solve
// failure, per spec §4.D's "no errors" requirement.
func Compile(sentence string, ctx Context) []csp.Constraint {
	normalized := Normalize(sentence)
	if normalized == "" {
		return nil
	}
	for _, t := range templates {
		if constraints, ok := t(normalized, ctx); ok {
			return constraints
		}
	}
	return []csp.Constraint{csp.NonBinding(normalized)}
}
