// Package solver implements the backtracking search that finds a
// logic-grid puzzle's unique assignment, per spec §4.F. Before search
// begins, unary constraints are propagated directly into each
// variable's domain and AC-3 runs to a fixed point; during search,
// variables are chosen by minimum-remaining-values and every
// assignment is forward-checked against its neighbors.
package solver

import (
	"github.com/gitrdm/logigrid/pkg/csp"
	"github.com/gitrdm/logigrid/pkg/tracer"
)

// arc is a directed (Xi, Xj) pair considered by AC-3.
type arc struct {
	Xi, Xj string
}

// allArcs returns one directed arc per ordered neighbor pair in c.
func allArcs(c *csp.CSP) []arc {
	var arcs []arc
	for _, v := range c.VariableNames {
		for _, n := range c.Neighbors(v) {
			arcs = append(arcs, arc{Xi: v, Xj: n})
		}
	}
	return arcs
}

// PropagateUnary applies every unary (single-variable) constraint
// directly to domains, removing any value that cannot satisfy it when
// every other variable is left unbound. It never touches multi-
// variable constraints — those are AC-3's job.
//
// Returns the narrowed domains, or ok=false if any domain becomes
// empty.
func PropagateUnary(c *csp.CSP, domains map[string]csp.Domain) (map[string]csp.Domain, bool) {
	out := c.CopyDomains(domains)

	for _, v := range c.VariableNames {
		for _, constraint := range c.ConstraintsFor(v) {
			if len(constraint.Scope) != 1 {
				continue
			}
			dom := out[v]
			for _, val := range dom.Values() {
				if !constraint.Evaluate(csp.Assignment{v: val}) {
					dom = dom.Remove(val)
				}
			}
			out[v] = dom
			if dom.Count() == 0 {
				return out, false
			}
		}
	}

	return out, true
}

// Revise removes every value from domains[xi] that has no supporting
// value in domains[xj] under every constraint that binds both
// variables (the constraint's other variables, if any, are left
// unbound so only the Xi/Xj pair is tested). Reports whether any
// value was removed, per the classic AC-3 REVISE procedure.
func Revise(c *csp.CSP, domains map[string]csp.Domain, xi, xj string) (csp.Domain, bool) {
	constraints := c.ConstraintsBetween(xi, xj)
	dom := domains[xi]
	if len(constraints) == 0 {
		return dom, false
	}

	changed := false
	for _, a := range dom.Values() {
		supported := false
		for _, b := range domains[xj].Values() {
			assignment := csp.Assignment{xi: a, xj: b}
			ok := true
			for _, constraint := range constraints {
				if !constraint.Evaluate(assignment) {
					ok = false
					break
				}
			}
			if ok {
				supported = true
				break
			}
		}
		if !supported {
			dom = dom.Remove(a)
			changed = true
		}
	}

	return dom, changed
}

// AC3 runs arc consistency to a fixed point over every directed arc in
// c, queuing an arc's predecessors for re-examination whenever its
// domain shrinks. Reports ok=false if any domain is driven empty.
func AC3(c *csp.CSP, domains map[string]csp.Domain) (map[string]csp.Domain, bool) {
	out := c.CopyDomains(domains)

	queue := allArcs(c)
	inQueue := make(map[arc]bool, len(queue))
	for _, a := range queue {
		inQueue[a] = true
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		inQueue[a] = false

		revised, changed := Revise(c, out, a.Xi, a.Xj)
		if !changed {
			continue
		}
		out[a.Xi] = revised
		if revised.Count() == 0 {
			return out, false
		}

		for _, xk := range c.Neighbors(a.Xi) {
			if xk == a.Xj {
				continue
			}
			next := arc{Xi: xk, Xj: a.Xi}
			if !inQueue[next] {
				queue = append(queue, next)
				inQueue[next] = true
			}
		}
	}

	return out, true
}

// Preprocess narrows domains by unary propagation followed by AC-3,
// the combination spec §4.F requires before search begins. It returns
// ok=false if the puzzle is inconsistent before any variable is
// assigned.
func Preprocess(c *csp.CSP, t *tracer.Tracer) (map[string]csp.Domain, bool) {
	domains, ok := PropagateUnary(c, nil)
	if !ok {
		t.LogDomainReduction("", 0, "unary propagation emptied a domain")
		return domains, false
	}

	domains, ok = AC3(c, domains)
	if !ok {
		t.LogDomainReduction("", 0, "AC-3 emptied a domain")
		return domains, false
	}

	t.LogAC3Run(len(c.VariableNames), len(allArcs(c)))
	return domains, true
}

// forwardCheck prunes every unassigned neighbor of variable after it
// is bound in assigned, per spec §4.F. Pruning happens on a copy, so
// the caller's domains are left untouched. Returns the pruned domains
// and the (variable, removed value) pairs it pruned, or ok=false if a
// neighbor's domain is emptied.
func forwardCheck(c *csp.CSP, domains map[string]csp.Domain, assigned csp.Assignment, variable string) (map[string]csp.Domain, []restoration, bool) {
	out := c.CopyDomains(domains)
	var restored []restoration

	for _, neighbor := range c.Neighbors(variable) {
		if _, bound := assigned[neighbor]; bound {
			continue
		}
		dom := out[neighbor]
		for _, candidate := range dom.Values() {
			trial := cloneAssignment(assigned)
			trial[neighbor] = candidate
			consistent := true
			for _, constraint := range c.ConstraintsBetween(variable, neighbor) {
				if !constraint.Evaluate(trial) {
					consistent = false
					break
				}
			}
			if !consistent {
				dom = dom.Remove(candidate)
				restored = append(restored, restoration{variable: neighbor, value: candidate})
			}
		}
		out[neighbor] = dom
		if dom.Count() == 0 {
			return out, restored, false
		}
	}

	return out, restored, true
}

type restoration struct {
	variable string
	value    string
}

func cloneAssignment(a csp.Assignment) csp.Assignment {
	out := make(csp.Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
