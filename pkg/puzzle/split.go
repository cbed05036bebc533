package puzzle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSizePrefix    = regexp.MustCompile(`^(\d+)\*\d+`)
	reNumberedTo    = regexp.MustCompile(`(?i)numbered\s+1\s+to\s+(\d+)`)
	reThereAreHouse = regexp.MustCompile(`(?i)There are\s+(\d+)\s+houses`)
)

const defaultNumHouses = 5

// NumHouses infers the house count from Size ("5*4") first, falling
// back to phrases in the puzzle text, then a default of 5, per
// spec §4.E.
func NumHouses(size, text string) int {
	if m := reSizePrefix.FindStringSubmatch(size); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := reNumberedTo.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := reThereAreHouse.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return defaultNumHouses
}

// SplitDescriptionAndClues splits puzzle text into its category
// description block and its clue block, trying "## Clues:", then
// "\nClues:", then "Clues:", in that priority order, per spec §4.E.
func SplitDescriptionAndClues(text string) (description, clues string) {
	if idx := strings.Index(text, "## Clues:"); idx >= 0 {
		return text[:idx], text[idx+len("## Clues:"):]
	}
	if idx := strings.Index(text, "\nClues:"); idx >= 0 {
		return text[:idx], text[idx+len("\nClues:"):]
	}
	if idx := strings.Index(text, "Clues:"); idx >= 0 {
		return text[:idx], text[idx+len("Clues:"):]
	}
	return text, ""
}

var reNumberedClue = regexp.MustCompile(`(?m)^\s*\d+\.\s+(.*)$`)

// ExtractClueSentences pulls each numbered clue sentence out of the
// clues block ("1. ...", "2. ..."); if no numbered clues are found, it
// falls back to treating every non-empty line as a clue, per spec §4.E.
func ExtractClueSentences(clues string) []string {
	matches := reNumberedClue.FindAllStringSubmatch(clues, -1)
	if len(matches) > 0 {
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = strings.TrimSpace(m[1])
		}
		return out
	}

	var out []string
	for _, ln := range strings.Split(clues, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
