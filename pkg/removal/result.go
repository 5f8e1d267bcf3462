package removal

import (
	"github.com/arthur-debert/toss/pkg/types"
)

// Result is the outcome of one entry
type Result struct {
	Entry     types.Entry
	Outcome   types.Outcome
	TrashPath string
	Reason    string
	Err       error
}

// Report collects the results of one run
type Report struct {
	Results []Result

	// Aborted is set when the batch confirmation was refused; nothing was touched
	Aborted bool
}

// Failed reports whether any item failed
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Outcome == types.OutcomeFailed {
			return true
		}
	}
	return false
}

// Count returns the number of results with outcome o
func (r Report) Count(o types.Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Reporter receives user-facing output while the engine runs
type Reporter interface {
	// Notice is verbose progress output
	Notice(format string, args ...interface{})

	// Problem is a diagnostic for an item that did not go as planned
	Problem(err error)

	// Listed prints an entry in dry-run mode
	Listed(path string)
}

type nopReporter struct{}

func (nopReporter) Notice(string, ...interface{}) {}
func (nopReporter) Problem(error)                 {}
func (nopReporter) Listed(string)                 {}
