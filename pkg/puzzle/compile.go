package puzzle

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/gitrdm/logigrid/pkg/clue"
	"github.com/gitrdm/logigrid/pkg/csp"
	"github.com/gitrdm/logigrid/pkg/diag"
	"github.com/gitrdm/logigrid/pkg/lexicon"
)

// Result bundles a compiled CSP with the non-fatal diagnostics
// accumulated while compiling it, per spec §4.E/SPEC_FULL.md §5.4.
// Compile never returns a nil Result on success; Diagnostics may be
// empty but is never nil.
type Result struct {
	CSP         *csp.CSP
	NumHouses   int
	Categories  map[string][]string
	Diagnostics *diag.Diagnostics
}

// Logger is the structured logger Compile uses for operator-facing
// warnings (distinct from the in-memory tracer, which records solver
// search events). Callers may override it; it defaults to a
// discarding logger.
var Logger = hclog.NewNullLogger()

// Compile turns a Record into a Result: its variables, per-category
// AllDiff constraints, and every constraint its clue sentences
// compile to. It never returns an error for an unrecognized clue —
// those become non-binding constraints and are noted in Diagnostics —
// but an InputError is returned if the record has no usable puzzle
// text at all.
func Compile(record Record) (*Result, error) {
	if record.Text == "" {
		return nil, &InputError{RecordID: record.ID, Message: "puzzle text is empty"}
	}

	d := diag.New()
	numHouses := NumHouses(record.Size, record.Text)
	description, cluesBlock := SplitDescriptionAndClues(record.Text)

	categories, catOrder := ExtractCategories(description)
	if _, ok := categories[lexicon.Name]; !ok {
		categories[lexicon.Name] = InferNames(cluesBlock, numHouses)
		catOrder = append(catOrder, lexicon.Name)
	}

	valueIndex := lexicon.BuildValueIndex(catOrder, categories)
	for _, c := range valueIndex.Collisions() {
		d.Addf("category value collision: %s", c.String())
		Logger.Warn("category value collision", "value", c.Value, "winner", c.WinningCategory, "loser", c.LosingCategory)
	}

	names := make(map[string]struct{}, len(categories[lexicon.Name]))
	for _, n := range categories[lexicon.Name] {
		names[n] = struct{}{}
	}

	var variables []csp.Variable
	for i := 1; i <= numHouses; i++ {
		for _, cat := range catOrder {
			varName := fmt.Sprintf("House_%d_%s", i, cat)
			variables = append(variables, csp.NewVariable(varName, csp.NewDomain(categories[cat]...)))
		}
	}

	var constraints []csp.Constraint
	for _, cat := range catOrder {
		scope := make([]string, 0, numHouses)
		for i := 1; i <= numHouses; i++ {
			scope = append(scope, fmt.Sprintf("House_%d_%s", i, cat))
		}
		constraints = append(constraints, csp.AllDiff(scope))
	}

	ctx := clue.Context{
		NumHouses: numHouses,
		Values:    valueIndex,
		Names:     names,
		HasColor:  categoryExists(catOrder, lexicon.Color),
	}

	for _, sentence := range ExtractClueSentences(cluesBlock) {
		compiled := clue.Compile(sentence, ctx)
		constraints = append(constraints, compiled...)
		for _, c := range compiled {
			if c.Kind == csp.KindNonBinding {
				d.Addf("unrecognized clue retained as non-binding: %s", c.Description)
				Logger.Warn("unrecognized clue", "text", c.Description)
			}
		}
	}

	built, err := csp.NewCSP(variables, constraints)
	if err != nil {
		return nil, &InputError{RecordID: record.ID, Message: err.Error()}
	}

	return &Result{
		CSP:         built,
		NumHouses:   numHouses,
		Categories:  categories,
		Diagnostics: d,
	}, nil
}

func categoryExists(order []string, want string) bool {
	for _, c := range order {
		if c == want {
			return true
		}
	}
	return false
}
