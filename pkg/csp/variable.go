package csp

import "fmt"

// Variable is a decision variable in a logic-grid CSP. Its name follows
// the convention House_<i>_<Category>, e.g. "House_3_Color". Variables
// are immutable after construction; the initial Domain is the
// variable's canonical domain, which the solver copies and mutates
// per search branch rather than modifying in place.
type Variable struct {
	Name   string
	Domain Domain
}

// NewVariable creates a Variable with the given name and initial domain.
func NewVariable(name string, domain Domain) Variable {
	return Variable{Name: name, Domain: domain}
}

// String returns a human-readable representation of the variable.
func (v Variable) String() string {
	return fmt.Sprintf("%s=%s", v.Name, v.Domain.String())
}
