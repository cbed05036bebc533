package lexicon

import (
	"fmt"
	"strings"
)

// Collision records that two categories declared the same (lower-cased)
// value; the first-declaring category wins, per spec §4.C.
type Collision struct {
	Value           string
	WinningCategory string
	LosingCategory  string
}

func (c Collision) String() string {
	return fmt.Sprintf("value %q declared by both %q and %q; %q wins", c.Value, c.WinningCategory, c.LosingCategory, c.WinningCategory)
}

// ValueIndex maps a lower-cased value to its declaring category.
// Collisions (two categories declaring the same value) are recorded
// but are not fatal: the first declaring category always wins.
type ValueIndex struct {
	byValue    map[string]string
	collisions []Collision
}

// BuildValueIndex constructs a ValueIndex from category -> declared
// values, in the iteration order of categoryOrder (so collisions are
// deterministic across runs fed the same ordered categories).
func BuildValueIndex(categoryOrder []string, categories map[string][]string) *ValueIndex {
	idx := &ValueIndex{byValue: make(map[string]string)}
	for _, cat := range categoryOrder {
		for _, v := range categories[cat] {
			key := strings.ToLower(v)
			if existing, ok := idx.byValue[key]; ok {
				if existing != cat {
					idx.collisions = append(idx.collisions, Collision{
						Value: v, WinningCategory: existing, LosingCategory: cat,
					})
				}
				continue
			}
			idx.byValue[key] = cat
		}
	}
	return idx
}

// Category returns the category that declared value, case-insensitively.
func (idx *ValueIndex) Category(value string) (string, bool) {
	cat, ok := idx.byValue[strings.ToLower(value)]
	return cat, ok
}

// Collisions returns every recorded value collision, in declaration order.
func (idx *ValueIndex) Collisions() []Collision {
	return idx.collisions
}
