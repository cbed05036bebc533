package solver

import (
	"github.com/hashicorp/go-hclog"

	"github.com/gitrdm/logigrid/pkg/csp"
	"github.com/gitrdm/logigrid/pkg/tracer"
)

// Logger is the structured logger used for operator-facing warnings —
// AC-3 wipeout before search, search exhaustion without a solution —
// distinct from the tracer's per-step in-memory event log, per
// SPEC_FULL.md §3.
var Logger = hclog.NewNullLogger()

// Solve searches for a single total, consistent assignment over c.
// Preprocessing (unary propagation, then AC-3) runs once up front;
// the recursive search that follows selects variables by minimum
// remaining values, tries values in deterministic order, and forward-
// checks every assignment against its unassigned neighbors. Every
// step is recorded to t (a nil t is treated as a tracer with tracing
// disabled).
//
// Returns the solution assignment, or an empty csp.Assignment if the
// puzzle has no solution.
func Solve(c *csp.CSP, t *tracer.Tracer) csp.Assignment {
	if t == nil {
		t = tracer.New(false)
	}

	domains, ok := Preprocess(c, t)
	if !ok {
		Logger.Warn("preprocessing found the puzzle inconsistent before search began")
		return csp.Assignment{}
	}

	assigned := csp.Assignment{}
	if result, ok := backtrack(c, domains, assigned, t); ok {
		t.LogSolutionFound(len(result))
		return result
	}

	Logger.Warn("search exhausted without finding a solution")
	return csp.Assignment{}
}

// backtrack is the recursive depth-first search over c's unassigned
// variables, per spec §4.F.
func backtrack(c *csp.CSP, domains map[string]csp.Domain, assigned csp.Assignment, t *tracer.Tracer) (csp.Assignment, bool) {
	variable, more := selectUnassigned(c, domains, assigned)
	if !more {
		// Every constraint touching a variable was already checked by
		// consistentWithAssigned when that variable was bound, so a
		// final c.IsConsistent sweep here would be redundant.
		return cloneAssignment(assigned), true
	}

	for _, value := range orderedValues(domains[variable]) {
		valid := consistentWithAssigned(c, assigned, variable, value)
		t.LogConstraintCheck(variable+"="+value, valid, variable)
		if !valid {
			continue
		}

		assigned[variable] = value
		t.LogAssign(variable, value, domains[variable].Count(), len(assigned))

		prunedDomains, restorations, ok := forwardCheck(c, domains, assigned, variable)
		t.LogForwardCheck(variable, len(restorations))

		if ok {
			if result, found := backtrack(c, prunedDomains, assigned, t); found {
				return result, true
			}
		}

		delete(assigned, variable)
		t.LogBacktrack(variable, "no consistent extension")
	}

	return nil, false
}
