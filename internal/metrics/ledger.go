package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operation names.
const (
	OpCompleteSet       = "complete_set"
	OpUncheckSet        = "uncheck_set"
	OpCompleteRemaining = "complete_remaining"
	OpSaveNotes         = "save_notes"
)

// Ledger operation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeConflict = "conflict"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

type Ledger struct {
	Operations  *prometheus.CounterVec
	SetsCreated prometheus.Counter
}

func NewTestLedger() *Ledger {
	return NewLedger(prometheus.NewRegistry())
}

func NewLedger(reg prometheus.Registerer) *Ledger {
	factory := promauto.With(reg)

	return &Ledger{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger write operations by outcome",
		}, []string{"operation", "outcome"}),
		SetsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "fitness",
			Subsystem: "ledger",
			Name:      "sets_created_total",
			Help:      "Completed set entries written to the ledger",
		}),
	}
}

// Observe counts one operation. Safe on a nil Ledger.
func (l *Ledger) Observe(operation, outcome string) {
	if l == nil {
		return
	}
	l.Operations.WithLabelValues(operation, outcome).Inc()
}

// AddSets counts newly completed set entries. Safe on a nil Ledger.
func (l *Ledger) AddSets(n int) {
	if l == nil || n <= 0 {
		return
	}
	l.SetsCreated.Add(float64(n))
}
