package puzzle

import (
	"regexp"
	"strings"

	"github.com/gitrdm/logigrid/pkg/lexicon"
)

var reLabelLine = regexp.MustCompile(`^\s*([^:–—-]+)\s*[:–—-]\s*(.+)$`)

var valueAnd = regexp.MustCompile(`(?i)\s+and\s+`)

// ParseValues splits a description line's value list on its various
// separators (bullet, semicolon, pipe, "and", comma) and strips
// punctuation/backticks from each value, per spec §4.E.
func ParseValues(valuesText string) []string {
	t := strings.TrimSpace(valuesText)
	t = strings.ReplaceAll(t, "•", ",")
	t = strings.ReplaceAll(t, ";", ",")
	t = strings.ReplaceAll(t, "|", ",")
	t = valueAnd.ReplaceAllString(t, ", ")
	t = strings.ReplaceAll(t, "`", "")
	t = strings.TrimRight(strings.TrimSpace(t), ".")

	var out []string
	for _, p := range strings.Split(t, ",") {
		p = strings.Trim(strings.TrimSpace(p), " \t\r\n.;:!?,")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExtractCategories scans the description block's lines for
// "<label><separator><values>" lines (colon, en-dash, em-dash, or
// hyphen separator) and canonicalizes each label via the lexicon's
// category matcher, per spec §4.E. order is the category keys in the
// order they were first declared, which BuildValueIndex's
// first-category-wins collision rule depends on.
func ExtractCategories(description string) (categories map[string][]string, order []string) {
	categories = make(map[string][]string)
	matcher := lexicon.NewCategoryMatcher()

	for _, rawLine := range strings.Split(description, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "clues:") {
			continue
		}
		line = strings.TrimPrefix(line, "-")
		line = strings.TrimSpace(line)

		m := reLabelLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		key := matcher.Canonical(m[1])
		values := ParseValues(m[2])
		if len(values) == 0 {
			continue
		}
		if _, seen := categories[key]; !seen {
			order = append(order, key)
		}
		categories[key] = values
	}

	return categories, order
}
