// Package diag collects non-fatal compilation diagnostics — category
// value collisions, unrecognized clue sentences — without aborting a
// compile, per spec §4.E/§5.4.
package diag

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Diagnostics accumulates non-fatal issues encountered while compiling
// a puzzle. A non-empty Diagnostics never prevents a CSP from being
// returned; callers decide whether to surface it to an operator.
type Diagnostics struct {
	errs *multierror.Error
}

// New returns an empty Diagnostics collector.
func New() *Diagnostics {
	return &Diagnostics{}
}

// Add appends err, if non-nil.
func (d *Diagnostics) Add(err error) {
	if err == nil {
		return
	}
	d.errs = multierror.Append(d.errs, err)
}

// Addf formats and appends a diagnostic.
func (d *Diagnostics) Addf(format string, args ...interface{}) {
	d.Add(fmt.Errorf(format, args...))
}

// Empty reports whether no diagnostics were recorded.
func (d *Diagnostics) Empty() bool {
	return d.errs == nil || len(d.errs.Errors) == 0
}

// Err returns the accumulated diagnostics as a single error, or nil if
// none were recorded.
func (d *Diagnostics) Err() error {
	return d.errs.ErrorOrNil()
}

// Messages returns each diagnostic's message, in the order recorded.
func (d *Diagnostics) Messages() []string {
	if d.errs == nil {
		return nil
	}
	out := make([]string, len(d.errs.Errors))
	for i, e := range d.errs.Errors {
		out[i] = e.Error()
	}
	return out
}
