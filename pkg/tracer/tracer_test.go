package tracer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTracerDisabledIsNoOp(t *testing.T) {
	tr := New(false)
	tr.LogAssign("House_1_Color", "red", 2, 1)
	tr.LogBacktrack("House_1_Color", "no candidates")

	if got := len(tr.Events()); got != 0 {
		t.Fatalf("Events() len = %d, want 0 when disabled", got)
	}
}

func TestTracerStepCounterIsMonotonic(t *testing.T) {
	tr := New(true)
	tr.LogAssign("House_1_Color", "red", 2, 1)
	tr.LogDomainReduction("House_2_Color", 1, "unary propagation")
	tr.LogBacktrack("House_1_Color", "exhausted candidates")

	events := tr.Events()
	if len(events) != 3 {
		t.Fatalf("Events() len = %d, want 3", len(events))
	}
	for i, e := range events {
		if e.Step != i+1 {
			t.Errorf("Events()[%d].Step = %d, want %d", i, e.Step, i+1)
		}
	}
}

func TestTracerSummary(t *testing.T) {
	tr := New(true)
	tr.LogAssign("House_1_Color", "red", 2, 1)
	tr.LogAssign("House_2_Color", "blue", 1, 2)
	tr.LogBacktrack("House_2_Color", "no candidates")
	tr.LogSolutionFound(2)

	got := tr.Summary()
	want := Summary{
		TotalSteps:     4,
		NumAssignments: 2,
		NumBacktracks:  1,
		ActionCounts: map[Action]int{
			ActionAssign:        2,
			ActionBacktrack:     1,
			ActionSolutionFound: 1,
		},
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Summary{}, "ElapsedSeconds")); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
}

func TestTracerReset(t *testing.T) {
	tr := New(true)
	tr.LogAssign("House_1_Color", "red", 2, 1)
	tr.Reset()

	if got := len(tr.Events()); got != 0 {
		t.Fatalf("Events() len = %d after Reset, want 0", got)
	}
	tr.LogAssign("House_1_Color", "blue", 1, 1)
	if got := tr.Events()[0].Step; got != 1 {
		t.Errorf("Step after Reset = %d, want 1", got)
	}
}

func TestTracerToCSV(t *testing.T) {
	tr := New(true)
	tr.LogAssign("House_1_Color", "red", 2, 1)
	tr.LogBacktrack("House_1_Color", "exhausted candidates")

	dir := t.TempDir()
	path := filepath.Join(dir, "trace.csv")
	if err := tr.ToCSV(path); err != nil {
		t.Fatalf("ToCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)

	wantHeader := "timestamp,step_number,action_type,variable,value,domain_size,assignment_size,constraint_checked,is_valid,reason\n"
	if len(content) < len(wantHeader) || content[:len(wantHeader)] != wantHeader {
		t.Errorf("ToCSV header = %q, want prefix %q", content, wantHeader)
	}
}
