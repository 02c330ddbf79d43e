package query

import (
	"strings"

	"github.com/opsdesk/case-monitor-api/models"
)

// Derived decision-pending statuses. These are computed per query and never
// persisted on the case.
const (
	StatusDecisionPending = "Decision pending"
	StatusPartial         = "Partial"
	StatusCompleted       = "Completed"
)

// DeriveStatus classifies a case's decision-pending state from its accused
// sub-records. With no accused the legacy case-level pending flag decides;
// otherwise the accused statuses alone decide: all pending, some pending, or
// none pending.
func DeriveStatus(accused []models.Accused, legacyPending bool) string {
	if len(accused) == 0 {
		if legacyPending {
			return StatusDecisionPending
		}
		return StatusCompleted
	}

	pending := 0
	for _, a := range accused {
		if strings.EqualFold(strings.TrimSpace(a.Status), StatusDecisionPending) {
			pending++
		}
	}
	switch pending {
	case 0:
		return StatusCompleted
	case len(accused):
		return StatusDecisionPending
	default:
		return StatusPartial
	}
}
