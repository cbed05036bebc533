package csp

import "testing"

func TestAllDiff(t *testing.T) {
	c := AllDiff([]string{"House_1_Color", "House_2_Color"})

	t.Run("empty assignment is consistent", func(t *testing.T) {
		if !c.Evaluate(Assignment{}) {
			t.Error("Evaluate() = false, want true for empty assignment")
		}
	})

	t.Run("distinct bound values are consistent", func(t *testing.T) {
		a := Assignment{"House_1_Color": "red", "House_2_Color": "blue"}
		if !c.Evaluate(a) {
			t.Error("Evaluate() = false, want true for distinct values")
		}
	})

	t.Run("duplicate bound values violate", func(t *testing.T) {
		a := Assignment{"House_1_Color": "red", "House_2_Color": "red"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false for duplicate values")
		}
	})

	t.Run("partial binding tolerated", func(t *testing.T) {
		a := Assignment{"House_1_Color": "red"}
		if !c.Evaluate(a) {
			t.Error("Evaluate() = false, want true for partial assignment")
		}
	})
}

func TestEquals(t *testing.T) {
	c := Equals("House_1_Color", "red")

	t.Run("unbound is consistent", func(t *testing.T) {
		if !c.Evaluate(Assignment{}) {
			t.Error("Evaluate() = false, want true when unbound")
		}
	})

	t.Run("bound to expected value", func(t *testing.T) {
		if !c.Evaluate(Assignment{"House_1_Color": "red"}) {
			t.Error("Evaluate() = false, want true")
		}
	})

	t.Run("bound to other value violates", func(t *testing.T) {
		if c.Evaluate(Assignment{"House_1_Color": "blue"}) {
			t.Error("Evaluate() = true, want false")
		}
	})
}

func TestSameHousePair(t *testing.T) {
	c := SameHousePair("Name", "Mallory", "Color", "blue", 3, "Mallory lives in the blue house")

	t.Run("neither side bound is consistent", func(t *testing.T) {
		if !c.Evaluate(Assignment{}) {
			t.Error("Evaluate() = false, want true")
		}
	})

	t.Run("both sides agree", func(t *testing.T) {
		a := Assignment{"House_2_Name": "Mallory", "House_2_Color": "blue"}
		if !c.Evaluate(a) {
			t.Error("Evaluate() = false, want true")
		}
	})

	t.Run("name present without matching color violates", func(t *testing.T) {
		a := Assignment{"House_2_Name": "Mallory", "House_2_Color": "red"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false")
		}
	})

	t.Run("color present without matching name violates", func(t *testing.T) {
		a := Assignment{"House_2_Color": "blue", "House_2_Name": "Alice"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false")
		}
	})
}

func TestForbidSameHousePair(t *testing.T) {
	c := ForbidSameHousePair("Name", "Mallory", "Color", "blue", 3, "Mallory does not live in the blue house")

	t.Run("different houses is consistent", func(t *testing.T) {
		a := Assignment{"House_1_Name": "Mallory", "House_2_Color": "blue"}
		if !c.Evaluate(a) {
			t.Error("Evaluate() = false, want true")
		}
	})

	t.Run("same house violates", func(t *testing.T) {
		a := Assignment{"House_1_Name": "Mallory", "House_1_Color": "blue"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false")
		}
	})
}

func TestImmediateLeft(t *testing.T) {
	c := ImmediateLeft("Color", "green", "Color", "white", 3, "green immediately left of white")

	t.Run("valid adjacency is consistent", func(t *testing.T) {
		a := Assignment{"House_1_Color": "green", "House_2_Color": "white"}
		if !c.Evaluate(a) {
			t.Error("Evaluate() = false, want true")
		}
	})

	t.Run("left value at last house is a boundary violation", func(t *testing.T) {
		a := Assignment{"House_3_Color": "green"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false (left value cannot be last house)")
		}
	})

	t.Run("right value at first house is a boundary violation", func(t *testing.T) {
		a := Assignment{"House_1_Color": "white"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false (right value cannot be first house)")
		}
	})

	t.Run("non-adjacent placement violates", func(t *testing.T) {
		a := Assignment{"House_1_Color": "green", "House_3_Color": "white"}
		if c.Evaluate(a) {
			t.Error("Evaluate() = true, want false")
		}
	})
}

func TestAdjacentDistanceOrdered(t *testing.T) {
	t.Run("Adjacent", func(t *testing.T) {
		c := Adjacent("Color", "red", "Pet", "dog", 5, "red next to dog")
		a := Assignment{"House_2_Color": "red", "House_3_Pet": "dog"}
		if !c.Evaluate(a) {
			t.Error("Evaluate() = false, want true for adjacent positions")
		}
		a2 := Assignment{"House_2_Color": "red", "House_4_Pet": "dog"}
		if c.Evaluate(a2) {
			t.Error("Evaluate() = true, want false for non-adjacent positions")
		}
	})

	t.Run("Ordered left", func(t *testing.T) {
		c := Ordered("Color", "red", "Color", "blue", "left", 5, "red left of blue")
		if !c.Evaluate(Assignment{"House_1_Color": "red", "House_3_Color": "blue"}) {
			t.Error("Evaluate() = false, want true")
		}
		if c.Evaluate(Assignment{"House_3_Color": "red", "House_1_Color": "blue"}) {
			t.Error("Evaluate() = true, want false")
		}
	})

	t.Run("Distance", func(t *testing.T) {
		c := Distance("Pet", "cat", "Pet", "dog", 2, 5, "two houses between cat and dog")
		if !c.Evaluate(Assignment{"House_1_Pet": "cat", "House_4_Pet": "dog"}) {
			t.Error("Evaluate() = false, want true (gap of 2 houses)")
		}
		if c.Evaluate(Assignment{"House_1_Pet": "cat", "House_2_Pet": "dog"}) {
			t.Error("Evaluate() = true, want false")
		}
	})
}

func TestNonBinding(t *testing.T) {
	c := NonBinding("some unrecognized sentence")
	if !c.Evaluate(Assignment{"anything": "goes"}) {
		t.Error("Evaluate() = false, want true: non-binding constraints are always satisfied")
	}
}
