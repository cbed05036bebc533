package csp

import (
	"fmt"
)

// ConfigError reports a structurally invalid CSP, such as duplicate
// variable names. It is fatal to the call that produced it and is
// surfaced directly to the caller per spec §7.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "csp: config error: " + e.Message
}

// CSP is the container described in spec §3: the variable list, the
// canonical domain map, the constraint list, and the derived
// constraints-by-variable and neighbor indices. All derived state is
// computed once, in NewCSP, and is read-only afterward; only search-local
// copies of Domains are ever mutated, and those copies are owned by the
// solver's call stack.
type CSP struct {
	Variables     []Variable
	Constraints   []Constraint
	VariableNames []string

	// Domains is the canonical variable -> domain map. The solver copies
	// this map at search entry and never mutates the original.
	Domains map[string]Domain

	// constraintsByVar indexes constraints touching each variable, in
	// the order constraints were supplied to NewCSP.
	constraintsByVar map[string][]Constraint

	// neighbors indexes, for each variable, the other variables sharing
	// at least one constraint scope, in first-seen (constraint
	// declaration) order. The relation is symmetric.
	neighbors map[string][]string
}

// NewCSP validates variable-name uniqueness, computes the canonical
// domain map and the constraints-by-variable and neighbor indices in a
// single pass, and returns the resulting CSP. It returns a *ConfigError
// if two variables share a name.
func NewCSP(variables []Variable, constraints []Constraint) (*CSP, error) {
	names := make([]string, 0, len(variables))
	seen := make(map[string]struct{}, len(variables))
	domains := make(map[string]Domain, len(variables))
	for _, v := range variables {
		if _, dup := seen[v.Name]; dup {
			return nil, &ConfigError{Message: fmt.Sprintf("duplicate variable name %q", v.Name)}
		}
		seen[v.Name] = struct{}{}
		names = append(names, v.Name)
		domains[v.Name] = v.Domain
	}

	constraintsByVar := make(map[string][]Constraint, len(names))
	neighbors := make(map[string][]string, len(names))
	neighborSeen := make(map[string]map[string]struct{}, len(names))
	for _, name := range names {
		constraintsByVar[name] = nil
		neighborSeen[name] = make(map[string]struct{})
	}

	for _, c := range constraints {
		for _, v := range c.Scope {
			if _, ok := seen[v]; !ok {
				continue
			}
			constraintsByVar[v] = append(constraintsByVar[v], c)
		}
		for _, v := range c.Scope {
			if _, ok := neighborSeen[v]; !ok {
				continue
			}
			for _, other := range c.Scope {
				if other == v {
					continue
				}
				if _, ok := neighborSeen[other]; !ok {
					continue
				}
				if _, dup := neighborSeen[v][other]; dup {
					continue
				}
				neighborSeen[v][other] = struct{}{}
				neighbors[v] = append(neighbors[v], other)
			}
		}
	}

	return &CSP{
		Variables:        variables,
		Constraints:      constraints,
		VariableNames:    names,
		Domains:          domains,
		constraintsByVar: constraintsByVar,
		neighbors:        neighbors,
	}, nil
}

// ConstraintsFor returns the constraints touching variable, in
// insertion order.
func (c *CSP) ConstraintsFor(variable string) []Constraint {
	return c.constraintsByVar[variable]
}

// ConstraintsBetween returns the constraints whose scope contains both
// varA and varB.
func (c *CSP) ConstraintsBetween(varA, varB string) []Constraint {
	var out []Constraint
	for _, con := range c.Constraints {
		if con.Involves(varA) && con.Involves(varB) {
			out = append(out, con)
		}
	}
	return out
}

// Neighbors returns the variables sharing at least one constraint scope
// with variable, in first-seen constraint-declaration order (matching
// spec.md's traversal description; AC-3's queue still reaches a fixed
// point regardless of neighbor order, since every arc is revisited
// until no domain changes).
func (c *CSP) Neighbors(variable string) []string {
	src := c.neighbors[variable]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsConsistent reports whether every constraint in the CSP is satisfied
// by the (possibly partial) assignment a.
func (c *CSP) IsConsistent(a Assignment) bool {
	for _, con := range c.Constraints {
		if !con.Evaluate(a) {
			return false
		}
	}
	return true
}

// CopyDomains returns an independent copy of domains, or of c.Domains
// when domains is nil. The solver uses this at search entry and at
// every recursion that wishes to prune without disturbing the parent
// branch's view of the domains.
func (c *CSP) CopyDomains(domains map[string]Domain) map[string]Domain {
	src := domains
	if src == nil {
		src = c.Domains
	}
	out := make(map[string]Domain, len(src))
	for k, v := range src {
		out[k] = v.Clone()
	}
	return out
}
