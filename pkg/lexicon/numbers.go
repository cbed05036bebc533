package lexicon

import "strconv"

// numberWords maps the English number words 1-10 to their integer
// values, per spec §4.C.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// ordinalWords maps the English ordinal words first-tenth to their
// 1-indexed house position, per spec §4.C.
var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

// NumberWord resolves a number word ("two") or a literal digit string
// ("2") to its integer value.
func NumberWord(token string) (int, bool) {
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	return 0, false
}

// OrdinalWord resolves an ordinal word ("third") to its 1-indexed
// house position.
func OrdinalWord(token string) (int, bool) {
	n, ok := ordinalWords[token]
	return n, ok
}

// IsNumberWord reports whether token is one of the number words 1-10
// (used by name inference to exclude them from capitalized-token
// frequency counts).
func IsNumberWord(token string) bool {
	_, ok := numberWords[token]
	return ok
}
