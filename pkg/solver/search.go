package solver

import (
	"github.com/gitrdm/logigrid/pkg/csp"
)

// selectUnassigned picks the next variable by minimum remaining
// values (smallest current domain), breaking ties lexicographically by
// variable name for determinism, per spec §4.F.
func selectUnassigned(c *csp.CSP, domains map[string]csp.Domain, assigned csp.Assignment) (string, bool) {
	best := ""
	bestSize := -1

	for _, v := range c.VariableNames {
		if _, ok := assigned[v]; ok {
			continue
		}
		size := domains[v].Count()
		if bestSize == -1 || size < bestSize || (size == bestSize && v < best) {
			best = v
			bestSize = size
		}
	}

	if bestSize == -1 {
		return "", false
	}
	return best, true
}

// orderedValues returns domain's values in deterministic (lexicographic)
// order, per spec §4.F's value-ordering requirement. Domain.Values
// already returns a sorted slice; this wrapper exists so the ordering
// policy has one named call site in the search.
func orderedValues(dom csp.Domain) []string {
	return dom.Values()
}

// consistentWithAssigned reports whether binding variable=value
// violates no constraint whose other variables are already assigned.
func consistentWithAssigned(c *csp.CSP, assigned csp.Assignment, variable, value string) bool {
	trial := cloneAssignment(assigned)
	trial[variable] = value
	for _, constraint := range c.ConstraintsFor(variable) {
		if !constraint.Evaluate(trial) {
			return false
		}
	}
	return true
}
