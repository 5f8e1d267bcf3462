// Package metrics counts what toss did during a run and exports the counters
// in the prometheus text format, suitable for the node_exporter textfile
// collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/types"
)

// Revert results
const (
	RevertRestored = "restored"
	RevertMissing  = "missing"
	RevertFailed   = "failed"
)

// Dedup check results
const (
	DedupIdentical = "identical"
	DedupDifferent = "different"
	DedupError     = "error"
)

// Recorder owns a private registry with the toss counters. A nil *Recorder
// is valid and records nothing.
type Recorder struct {
	registry       *prometheus.Registry
	items          *prometheus.CounterVec
	historyRecords prometheus.Counter
	reverts        *prometheus.CounterVec
	dedupChecks    *prometheus.CounterVec
}

// New creates a Recorder with all label values pre-registered at zero
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toss_items_total",
			Help: "Items processed, by outcome",
		}, []string{"outcome"}),
		historyRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toss_history_records_total",
			Help: "Records appended to the history log",
		}),
		reverts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toss_reverts_total",
			Help: "Revert attempts, by result",
		}, []string{"result"}),
		dedupChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toss_dedup_checks_total",
			Help: "Content comparisons against the trash, by result",
		}, []string{"result"}),
	}

	r.registry.MustRegister(r.items, r.historyRecords, r.reverts, r.dedupChecks)

	for _, o := range types.Outcomes {
		r.items.WithLabelValues(o.String())
	}
	for _, res := range []string{RevertRestored, RevertMissing, RevertFailed} {
		r.reverts.WithLabelValues(res)
	}
	for _, res := range []string{DedupIdentical, DedupDifferent, DedupError} {
		r.dedupChecks.WithLabelValues(res)
	}

	return r
}

// ItemProcessed counts one entry with its final outcome
func (r *Recorder) ItemProcessed(o types.Outcome) {
	if r == nil {
		return
	}
	r.items.WithLabelValues(o.String()).Inc()
}

// HistoryRecordAppended counts one history append
func (r *Recorder) HistoryRecordAppended() {
	if r == nil {
		return
	}
	r.historyRecords.Inc()
}

// Reverted counts one revert attempt
func (r *Recorder) Reverted(result string) {
	if r == nil {
		return
	}
	r.reverts.WithLabelValues(result).Inc()
}

// DedupChecked counts one content comparison
func (r *Recorder) DedupChecked(result string) {
	if r == nil {
		return
	}
	r.dedupChecks.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile atomically writes all counters to path
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write metrics to %s", path).WithPath(path)
	}
	return nil
}
