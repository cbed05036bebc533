package csp

import (
	"errors"
	"testing"
)

func buildSmallCSP(t *testing.T) *CSP {
	t.Helper()
	vars := []Variable{
		NewVariable("House_1_Color", NewDomain("red", "blue")),
		NewVariable("House_2_Color", NewDomain("red", "blue")),
	}
	constraints := []Constraint{
		AllDiff([]string{"House_1_Color", "House_2_Color"}),
		Equals("House_1_Color", "red"),
	}
	c, err := NewCSP(vars, constraints)
	if err != nil {
		t.Fatalf("NewCSP() error = %v", err)
	}
	return c
}

func TestNewCSPDuplicateVariableName(t *testing.T) {
	vars := []Variable{
		NewVariable("House_1_Color", NewDomain("red")),
		NewVariable("House_1_Color", NewDomain("blue")),
	}
	_, err := NewCSP(vars, nil)
	if err == nil {
		t.Fatal("NewCSP() error = nil, want ConfigError for duplicate variable name")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
}

func TestCSPIndices(t *testing.T) {
	c := buildSmallCSP(t)

	t.Run("ConstraintsFor includes every touching constraint", func(t *testing.T) {
		cs := c.ConstraintsFor("House_1_Color")
		if len(cs) != 2 {
			t.Fatalf("ConstraintsFor() returned %d constraints, want 2", len(cs))
		}
	})

	t.Run("Neighbors is symmetric", func(t *testing.T) {
		n1 := c.Neighbors("House_1_Color")
		n2 := c.Neighbors("House_2_Color")
		if len(n1) != 1 || n1[0] != "House_2_Color" {
			t.Errorf("Neighbors(House_1_Color) = %v, want [House_2_Color]", n1)
		}
		if len(n2) != 1 || n2[0] != "House_1_Color" {
			t.Errorf("Neighbors(House_2_Color) = %v, want [House_1_Color]", n2)
		}
	})

	t.Run("ConstraintsBetween finds the shared AllDiff", func(t *testing.T) {
		between := c.ConstraintsBetween("House_1_Color", "House_2_Color")
		if len(between) != 1 {
			t.Fatalf("ConstraintsBetween() returned %d constraints, want 1", len(between))
		}
	})
}

func TestCSPIsConsistent(t *testing.T) {
	c := buildSmallCSP(t)

	if !c.IsConsistent(Assignment{}) {
		t.Error("IsConsistent(empty) = false, want true")
	}
	if !c.IsConsistent(Assignment{"House_1_Color": "red", "House_2_Color": "blue"}) {
		t.Error("IsConsistent(solution) = false, want true")
	}
	if c.IsConsistent(Assignment{"House_1_Color": "blue"}) {
		t.Error("IsConsistent(violates Equals) = true, want false")
	}
}

func TestCSPCopyDomains(t *testing.T) {
	c := buildSmallCSP(t)

	copy1 := c.CopyDomains(nil)
	copy1["House_1_Color"] = copy1["House_1_Color"].Remove("blue")

	if c.Domains["House_1_Color"].Count() != 2 {
		t.Error("CopyDomains leaked a mutation back into the canonical domains")
	}
	if copy1["House_1_Color"].Count() != 1 {
		t.Error("copy was not actually pruned")
	}
}
