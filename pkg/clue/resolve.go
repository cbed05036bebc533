// Package clue compiles a single natural-language clue sentence into
// zero or more csp.Constraint values, per spec §4.D.
package clue

import (
	"regexp"
	"strings"

	"github.com/gitrdm/logigrid/pkg/lexicon"
)

// Context carries everything a template needs to resolve value
// references and size positional constraints: the number of houses,
// the reverse value-to-category index, and the set of declared Name
// values (a bare capitalized token is a Name if it appears here).
type Context struct {
	NumHouses int
	Values    *lexicon.ValueIndex
	Names     map[string]struct{}
	HasColor  bool
}

var (
	articlePrefix  = regexp.MustCompile(`(?i)^(the|a|an)\s+`)
	trailingPunct  = " \t\r\n.;:!?,`"
	bareCapToken   = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// CleanValuePhrase strips surrounding punctuation, backticks, and a
// leading article from a captured value phrase, per spec §4.D.
func CleanValuePhrase(s string) string {
	s = strings.Trim(s, trailingPunct)
	s = articlePrefix.ReplaceAllString(s, "")
	s = strings.Trim(s, trailingPunct)
	return strings.Join(strings.Fields(s), " ")
}

// resolved is a value reference that has been matched to its declaring
// category.
type resolved struct {
	Category string
	Value    string
}

// ResolveValuePhrase cleans phrase and resolves it to a (category,
// value) pair. It first tries an exact lookup of the cleaned phrase;
// failing that, it performs a longest-match, non-overlapping scan over
// the phrase's words (longest window first, earliest position breaking
// ties), per spec §4.D. A bare capitalized token that is a declared
// Name resolves to the Name category even if it also happens to
// collide with another category's value.
func ResolveValuePhrase(phrase string, ctx Context) (resolved, bool) {
	cleaned := CleanValuePhrase(phrase)
	if cleaned == "" {
		return resolved{}, false
	}

	if bareCapToken.MatchString(cleaned) {
		if _, ok := ctx.Names[cleaned]; ok {
			return resolved{Category: lexicon.Name, Value: cleaned}, true
		}
	}

	if cat, ok := ctx.Values.Category(cleaned); ok {
		return resolved{Category: cat, Value: cleaned}, true
	}

	words := strings.Fields(cleaned)
	for window := len(words) - 1; window >= 1; window-- {
		for start := 0; start+window <= len(words); start++ {
			candidate := strings.Join(words[start:start+window], " ")
			if cat, ok := ctx.Values.Category(candidate); ok {
				return resolved{Category: cat, Value: candidate}, true
			}
		}
	}

	return resolved{}, false
}

// resolveNameOrValue resolves phrase preferring the Name category for
// a bare capitalized token, falling back to ResolveValuePhrase.
func resolveNameOrValue(phrase string, ctx Context) (resolved, bool) {
	return ResolveValuePhrase(phrase, ctx)
}
