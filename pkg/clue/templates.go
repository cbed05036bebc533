package clue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gitrdm/logigrid/pkg/csp"
	"github.com/gitrdm/logigrid/pkg/lexicon"
)

// template is tried in cascade order against a normalized sentence. It
// returns the constraints it produces and whether it matched; a
// template whose shape matches but whose value references fail to
// resolve returns (nil, false) so the cascade keeps trying, per
// spec §4.D.
type template func(sentence string, ctx Context) ([]csp.Constraint, bool)

// templates is the ordered cascade of the 12 clue shapes of spec §4.D.
var templates = []template{
	houseColorTemplate,
	nameInHouseKTemplate,
	personOwnsTemplate,
	nameInValueHouseTemplate,
	sameHouseContainsTemplate,
	nameNotInValueHouseTemplate,
	ordinalHouseTemplate,
	immediateLeftTemplate,
	ownershipTemplate,
	nextToTemplate,
	orderedTemplate,
	distanceTemplate,
}

var (
	reHouseColor     = regexp.MustCompile(`(?i)^House\s+(\d+)\s+is\s+(?:painted\s+)?(.+)$`)
	reNameInHouseK   = regexp.MustCompile(`^([A-Z][a-z]+)\s+lives\s+in\s+house\s+(\d+)$`)
	rePersonOwns     = regexp.MustCompile(`(?i)^The\s+person\s+in\s+house\s+(\d+)\s+(?:owns|has|keeps)\s+the\s+(.+)$`)
	reNameInValue    = regexp.MustCompile(`(?i)^(.+?)\s+lives\s+in\s+the\s+(.+)\s+house$`)
	reSameContains   = regexp.MustCompile(`(?i)^The\s+(.+)\s+house\s+contains\s+the\s+(.+)$`)
	reNameNotInValue = regexp.MustCompile(`(?i)^(.+?)\s+does\s+not\s+live\s+in\s+the\s+(.+)\s+house$`)
	reOrdinalHouse   = regexp.MustCompile(`(?i)^(.+?)\s+is\s+(not\s+)?in\s+the\s+(\w+)\s+house$`)
	reImmediateLeft  = regexp.MustCompile(`(?i)^The\s+(.+)\s+house\s+is\s+immediately\s+to\s+the\s+left\s+of\s+the\s+(.+)\s+house$`)
	reOwnsNameFirst  = regexp.MustCompile(`(?i)^(.+?)\s+(?:owns|has|keeps)\s+the\s+(.+)$`)
	reBelongsToName  = regexp.MustCompile(`(?i)^The\s+(.+)\s+belongs\s+to\s+([A-Z][a-z]+)$`)
	reNextToHouses   = regexp.MustCompile(`(?i)^The\s+(.+)\s+house\s+is\s+next\s+to\s+the\s+(.+)\s+house$`)
	reNextToName     = regexp.MustCompile(`^([A-Z][a-z]+)\s+lives\s+next\s+to\s+([A-Z][a-z]+)$`)
	reOrdered        = regexp.MustCompile(`(?i)^The\s+(.+)\s+house\s+is\s+to\s+the\s+(left|right)\s+of\s+the\s+(.+)\s+house$`)
	reDistance       = regexp.MustCompile(`(?i)^There\s+(?:is|are)\s+(\w+)\s+house(?:s)?\s+between\s+(.+)\s+and\s+(.+)$`)
)

// houseColorTemplate: "House k is [painted] V." -> House_k_Color == V,
// or House_k_<cat(V)> == V when V does not resolve under Color.
func houseColorTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reHouseColor.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	k, err := strconv.Atoi(m[1])
	if err != nil || k < 1 || k > ctx.NumHouses {
		return nil, false
	}
	r, ok := ResolveValuePhrase(m[2], ctx)
	if !ok {
		return nil, false
	}
	v := fmt.Sprintf("House_%d_%s", k, r.Category)
	return []csp.Constraint{csp.Equals(v, r.Value)}, true
}

// nameInHouseKTemplate: "Name lives in house k." -> House_k_Name == Name.
func nameInHouseKTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reNameInHouseK.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	name := m[1]
	if _, ok := ctx.Names[name]; !ok {
		return nil, false
	}
	k, err := strconv.Atoi(m[2])
	if err != nil || k < 1 || k > ctx.NumHouses {
		return nil, false
	}
	v := fmt.Sprintf("House_%d_%s", k, lexicon.Name)
	return []csp.Constraint{csp.Equals(v, name)}, true
}

// personOwnsTemplate: "The person in house k owns/has/keeps the V." ->
// House_k_<cat(V)> == V.
func personOwnsTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := rePersonOwns.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	k, err := strconv.Atoi(m[1])
	if err != nil || k < 1 || k > ctx.NumHouses {
		return nil, false
	}
	r, ok := ResolveValuePhrase(m[2], ctx)
	if !ok {
		return nil, false
	}
	v := fmt.Sprintf("House_%d_%s", k, r.Category)
	return []csp.Constraint{csp.Equals(v, r.Value)}, true
}

// nameInValueHouseTemplate: "X lives in the V house." -> same-house
// biconditional between (cat(X), X) and (cat(V), V); X is commonly a
// Name but may be any category's value (e.g. "The Brit lives in the
// red house").
func nameInValueHouseTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reNameInValue.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	subject, ok := resolveNameOrValue(m[1], ctx)
	if !ok {
		return nil, false
	}
	r, ok := ResolveValuePhrase(m[2], ctx)
	if !ok || r.Category == subject.Category {
		return nil, false
	}
	c := csp.SameHousePair(subject.Category, subject.Value, r.Category, r.Value, ctx.NumHouses, s)
	return []csp.Constraint{c}, true
}

// sameHouseContainsTemplate: "The VA house contains the VB." -> same-house
// biconditional between (cat(VA), VA) and (cat(VB), VB).
func sameHouseContainsTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reSameContains.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	a, ok := ResolveValuePhrase(m[1], ctx)
	if !ok {
		return nil, false
	}
	b, ok := ResolveValuePhrase(m[2], ctx)
	if !ok || b.Category == a.Category {
		return nil, false
	}
	c := csp.SameHousePair(a.Category, a.Value, b.Category, b.Value, ctx.NumHouses, s)
	return []csp.Constraint{c}, true
}

// nameNotInValueHouseTemplate: "X does not live in the V house." ->
// forbid (cat(X), X) and (cat(V), V) from co-occurring.
func nameNotInValueHouseTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reNameNotInValue.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	subject, ok := resolveNameOrValue(m[1], ctx)
	if !ok {
		return nil, false
	}
	r, ok := ResolveValuePhrase(m[2], ctx)
	if !ok || r.Category == subject.Category {
		return nil, false
	}
	c := csp.ForbidSameHousePair(subject.Category, subject.Value, r.Category, r.Value, ctx.NumHouses, s)
	return []csp.Constraint{c}, true
}

// ordinalHouseTemplate: "X is [not] in the ORD house." -> Equals or
// NotEquals at the house fixed by the ordinal word.
func ordinalHouseTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reOrdinalHouse.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	ord, ok := lexicon.OrdinalWord(strings.ToLower(m[3]))
	if !ok || ord < 1 || ord > ctx.NumHouses {
		return nil, false
	}
	r, ok := resolveNameOrValue(m[1], ctx)
	if !ok {
		return nil, false
	}
	v := fmt.Sprintf("House_%d_%s", ord, r.Category)
	if m[2] != "" {
		return []csp.Constraint{csp.NotEquals(v, r.Value)}, true
	}
	return []csp.Constraint{csp.Equals(v, r.Value)}, true
}

// immediateLeftTemplate: "The VA house is immediately to the left of
// the VB house." -> pos(VA)+1 == pos(VB); VA and VB may resolve to
// different categories.
func immediateLeftTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reImmediateLeft.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	a, ok := ResolveValuePhrase(m[1], ctx)
	if !ok {
		return nil, false
	}
	b, ok := ResolveValuePhrase(m[2], ctx)
	if !ok {
		return nil, false
	}
	c := csp.ImmediateLeft(a.Category, a.Value, b.Category, b.Value, ctx.NumHouses, s)
	return []csp.Constraint{c}, true
}

// ownershipTemplate: "X owns/has/keeps the V." or "The V belongs to
// Name." -> same-house biconditional between (cat(X), X) and (cat(V), V).
func ownershipTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	if m := reOwnsNameFirst.FindStringSubmatch(s); m != nil {
		if subject, ok := resolveNameOrValue(m[1], ctx); ok {
			if r, ok := ResolveValuePhrase(m[2], ctx); ok && r.Category != subject.Category {
				c := csp.SameHousePair(subject.Category, subject.Value, r.Category, r.Value, ctx.NumHouses, s)
				return []csp.Constraint{c}, true
			}
		}
	}
	if m := reBelongsToName.FindStringSubmatch(s); m != nil {
		name := m[2]
		if _, ok := ctx.Names[name]; ok {
			if r, ok := ResolveValuePhrase(m[1], ctx); ok {
				c := csp.SameHousePair(lexicon.Name, name, r.Category, r.Value, ctx.NumHouses, s)
				return []csp.Constraint{c}, true
			}
		}
	}
	return nil, false
}

// nextToTemplate: "The VA house is next to the VB house." or "Name
// lives next to Name2." -> |pos(A)-pos(B)| == 1.
func nextToTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	if m := reNextToHouses.FindStringSubmatch(s); m != nil {
		a, ok := ResolveValuePhrase(m[1], ctx)
		if !ok {
			return nil, false
		}
		b, ok := ResolveValuePhrase(m[2], ctx)
		if !ok {
			return nil, false
		}
		c := csp.Adjacent(a.Category, a.Value, b.Category, b.Value, ctx.NumHouses, s)
		return []csp.Constraint{c}, true
	}
	if m := reNextToName.FindStringSubmatch(s); m != nil {
		nameA, nameB := m[1], m[2]
		_, okA := ctx.Names[nameA]
		_, okB := ctx.Names[nameB]
		if !okA || !okB {
			return nil, false
		}
		c := csp.Adjacent(lexicon.Name, nameA, lexicon.Name, nameB, ctx.NumHouses, s)
		return []csp.Constraint{c}, true
	}
	return nil, false
}

// orderedTemplate: "The VA house is to the left/right of the VB
// house." -> strict, non-immediate position inequality.
func orderedTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reOrdered.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	a, ok := ResolveValuePhrase(m[1], ctx)
	if !ok {
		return nil, false
	}
	direction := strings.ToLower(m[2])
	b, ok := ResolveValuePhrase(m[3], ctx)
	if !ok {
		return nil, false
	}
	c := csp.Ordered(a.Category, a.Value, b.Category, b.Value, direction, ctx.NumHouses, s)
	return []csp.Constraint{c}, true
}

// distanceTemplate: "There is/are N house(s) between X and Y." ->
// |pos(X)-pos(Y)| == N+1.
func distanceTemplate(s string, ctx Context) ([]csp.Constraint, bool) {
	m := reDistance.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	n, ok := lexicon.NumberWord(strings.ToLower(m[1]))
	if !ok || n < 0 {
		return nil, false
	}
	a, ok := ResolveValuePhrase(m[2], ctx)
	if !ok {
		return nil, false
	}
	b, ok := ResolveValuePhrase(m[3], ctx)
	if !ok {
		return nil, false
	}
	c := csp.Distance(a.Category, a.Value, b.Category, b.Value, n, ctx.NumHouses, s)
	return []csp.Constraint{c}, true
}
