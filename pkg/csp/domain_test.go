package csp

import "testing"

func TestDomain(t *testing.T) {
	t.Run("NewDomain deduplicates", func(t *testing.T) {
		d := NewDomain("red", "blue", "red")
		if d.Count() != 2 {
			t.Errorf("Count() = %d, want 2", d.Count())
		}
	})

	t.Run("Has reports membership", func(t *testing.T) {
		d := NewDomain("red", "blue")
		if !d.Has("red") {
			t.Error("Has(\"red\") = false, want true")
		}
		if d.Has("green") {
			t.Error("Has(\"green\") = true, want false")
		}
	})

	t.Run("Remove leaves original untouched", func(t *testing.T) {
		d := NewDomain("red", "blue")
		d2 := d.Remove("red")

		if !d.Has("red") {
			t.Error("original domain was mutated by Remove")
		}
		if d2.Has("red") {
			t.Error("Remove did not drop the value")
		}
		if d2.Count() != 1 {
			t.Errorf("Count() = %d, want 1", d2.Count())
		}
	})

	t.Run("Remove of absent value is a no-op", func(t *testing.T) {
		d := NewDomain("red")
		d2 := d.Remove("green")
		if d2.Count() != 1 {
			t.Errorf("Count() = %d, want 1", d2.Count())
		}
	})

	t.Run("IsSingleton and SingletonValue", func(t *testing.T) {
		d := NewDomain("red")
		if !d.IsSingleton() {
			t.Error("IsSingleton() = false, want true")
		}
		if d.SingletonValue() != "red" {
			t.Errorf("SingletonValue() = %q, want \"red\"", d.SingletonValue())
		}
	})

	t.Run("Clone is independent", func(t *testing.T) {
		d := NewDomain("red", "blue")
		clone := d.Clone()
		clone = clone.Remove("red")
		if !d.Has("red") {
			t.Error("Clone mutation leaked back into original")
		}
		if clone.Has("red") {
			t.Error("Clone did not drop the value")
		}
	})

	t.Run("Values are sorted", func(t *testing.T) {
		d := NewDomain("turtle", "cat", "dog")
		got := d.Values()
		want := []string{"cat", "dog", "turtle"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})
}
