package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/case-monitor-api/models"
	"github.com/opsdesk/case-monitor-api/query"
)

func TestDigestLines(t *testing.T) {
	s := &Scheduler{engine: &query.Engine{Now: func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}}}

	cases := []models.Case{
		{Details: models.CaseDetails{
			CaseNo:        "3/2024",
			PoliceStation: "Central",
			Accused:       []models.Accused{{Status: models.AccusedDecisionPending}},
		}},
		{Details: models.CaseDetails{
			CaseNo:        "7/2023",
			PoliceStation: "North",
			Accused: []models.Accused{{
				Status: models.AccusedArrested,
				Warrant: &models.LegalProcess{
					Prayed:      true,
					PrayerDate:  "2024-01-05",
					ReceiptDate: "2024-01-20",
				},
			}},
		}},
		// nothing to report for this one
		{Details: models.CaseDetails{
			CaseNo:        "8/2024",
			PoliceStation: "Central",
			Accused:       []models.Accused{{Status: models.AccusedArrested}},
		}},
	}

	lines := s.DigestLines(cases)

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "3/2024")
	assert.Contains(t, lines[0], "arrest decision pending")
	assert.Contains(t, lines[1], "7/2023")
	assert.Contains(t, lines[1], "warrant outstanding")
}

func TestDigestLinesEmpty(t *testing.T) {
	s := NewScheduler(nil, nil)

	assert.Empty(t, s.DigestLines(nil))
}
