// Package puzzle compiles a natural-language logic-grid puzzle record
// into a *csp.CSP, per spec §4.E.
package puzzle

import "fmt"

// Record is a single logic-grid puzzle as read from an external
// source. Only the fields the compiler consumes are represented here;
// ingestion from a particular file format is out of scope per
// SPEC_FULL.md §7.
type Record struct {
	ID   string
	Size string
	Text string
}

// InputError reports a malformed puzzle record that cannot be
// compiled at all (as opposed to a clue that merely fails to resolve,
// which is recorded as a diagnostic instead).
type InputError struct {
	RecordID string
	Message  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("puzzle %s: %s", e.RecordID, e.Message)
}
