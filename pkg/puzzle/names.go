package puzzle

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gitrdm/logigrid/pkg/lexicon"
)

// stopCaps lists capitalized tokens that are structural English words
// rather than candidate person names, so name inference ignores them
// even though they appear capitalized in clue text, per spec §4.E.
var stopCaps = map[string]struct{}{
	"There": {}, "Each": {}, "House": {}, "Houses": {}, "Clues": {},
	"Colors": {}, "Pets": {}, "People": {}, "Person": {}, "Friends": {}, "Friend": {},
	"The": {}, "A": {}, "An": {}, "In": {}, "On": {}, "To": {}, "Of": {}, "And": {},
	"Is": {}, "Are": {}, "Was": {}, "Were": {},
	"One": {}, "Two": {}, "Three": {}, "Four": {}, "Five": {},
	"Six": {}, "Seven": {}, "Eight": {}, "Nine": {}, "Ten": {},
	"First": {}, "Second": {}, "Third": {},
	"Left": {}, "Right": {}, "Immediately": {}, "Between": {},
}

var (
	capToken      = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	numberedPrefix = regexp.MustCompile(`^\s*\d+\.\s*`)
)

// slotPatterns are capitalized-token positions that are very likely a
// person's name, each earning a bonus over plain frequency, per
// spec §4.E.
var slotPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+lives\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+does\s+not\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+owns\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+has\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+keeps\b`),
}

const slotBonus = 3

// InferNames derives numHouses candidate person names from the clue
// block's capitalized tokens when the description never declares a
// Name category, per spec §4.E. Tokens are ranked by frequency (with
// a bonus for appearing in a name-shaped clue slot), ties broken
// lexicographically for determinism; a shortfall is padded with
// Person_i.
func InferNames(cluesBlock string, numHouses int) []string {
	var lines []string
	for _, ln := range strings.Split(cluesBlock, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		lines = append(lines, numberedPrefix.ReplaceAllString(ln, ""))
	}
	text := strings.Join(lines, "\n")

	freq := make(map[string]int)
	for _, tok := range capToken.FindAllString(text, -1) {
		if _, stop := stopCaps[tok]; stop {
			continue
		}
		if lexicon.IsNumberWord(strings.ToLower(tok)) {
			continue
		}
		freq[tok]++
	}

	for _, pat := range slotPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if _, stop := stopCaps[name]; stop {
				continue
			}
			if lexicon.IsNumberWord(strings.ToLower(name)) {
				continue
			}
			freq[name] += slotBonus
		}
	}

	type ranked struct {
		name  string
		count int
	}
	candidates := make([]ranked, 0, len(freq))
	for n, c := range freq {
		candidates = append(candidates, ranked{n, c})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].name < candidates[j].name
	})

	names := make([]string, 0, numHouses)
	for _, r := range candidates {
		if len(names) >= numHouses {
			break
		}
		names = append(names, r.name)
	}
	for i := len(names) + 1; len(names) < numHouses; i++ {
		names = append(names, fmt.Sprintf("Person_%d", i))
	}
	return names
}
