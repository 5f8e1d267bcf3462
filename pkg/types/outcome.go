package types

// Outcome is the result of processing one entry
type Outcome int

const (
	OutcomeTrashed Outcome = iota
	OutcomePermanentlyDeleted
	OutcomeSkipped
	OutcomeFailed
	OutcomeListed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeTrashed:
		return "trashed"
	case OutcomePermanentlyDeleted:
		return "deleted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	case OutcomeListed:
		return "listed"
	default:
		return "unknown"
	}
}

// Outcomes lists every outcome, used to pre-register metric labels
var Outcomes = []Outcome{
	OutcomeTrashed,
	OutcomePermanentlyDeleted,
	OutcomeSkipped,
	OutcomeFailed,
	OutcomeListed,
}
