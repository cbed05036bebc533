package lexicon

// aliasPairs lists near-synonymous categories, per spec §4.C. These are
// not used by the clue compiler or solver — the canonical category
// names in categories.go are authoritative for constraint construction — they
// exist solely so a caller-side grid emitter (out of scope per
// SPEC_FULL.md §5.2) can present, say, "Pet" and "Animal" as the same
// display column when a puzzle declares only one of the pair.
var aliasPairs = [][2]string{
	{Pet, Animal},
	{Book, BookGenre},
	{Phone, PhoneModel},
}

// Aliases returns the near-synonymous category pairs known to the
// lexicon.
func Aliases() [][2]string {
	out := make([][2]string, len(aliasPairs))
	copy(out, aliasPairs)
	return out
}

// AliasOf returns the category aliased with cat, if any.
func AliasOf(cat string) (string, bool) {
	for _, pair := range aliasPairs {
		if pair[0] == cat {
			return pair[1], true
		}
		if pair[1] == cat {
			return pair[0], true
		}
	}
	return "", false
}
