package query

import (
	"time"

	"github.com/opsdesk/case-monitor-api/models"
)

// Engine evaluates case filters over an in-memory snapshot of cases. The
// clock is injectable so day-threshold filters are testable.
type Engine struct {
	Now func() time.Time
}

// New returns an engine on the wall clock
func New() *Engine {
	return &Engine{Now: time.Now}
}

// Result is one matched case with its per-query derivations
type Result struct {
	Case models.Case `json:"case"`

	// MatchedAccused is the subset of accused satisfying the accused-level
	// criteria; nil when no accused-level criterion was active.
	MatchedAccused []models.Accused `json:"matchedAccused,omitempty"`

	// DecisionStatus is the derived decision-pending classification.
	DecisionStatus string `json:"decisionStatus"`
}

// Run filters the snapshot, preserving its order. Each case is normalized
// before matching; the stored records are never mutated.
func (e *Engine) Run(cases []models.Case, f models.CaseFilter) []Result {
	now := e.Now()

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		c = Normalize(c)
		ok, matched := matchCase(c.Details, f, now)
		if !ok {
			continue
		}
		results = append(results, Result{
			Case:           c,
			MatchedAccused: matched,
			DecisionStatus: DeriveStatus(c.Details.Accused, c.Details.DecisionPending),
		})
	}
	return results
}
