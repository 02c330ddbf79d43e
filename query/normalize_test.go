package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/case-monitor-api/models"
)

func TestNormalizeLegacyCaseStatus(t *testing.T) {
	c := models.Case{Details: models.CaseDetails{CaseStatus: "Decision Pending"}}

	got := Normalize(c)

	assert.Equal(t, models.CaseStatusUnderInvestigation, got.Details.CaseStatus)
	assert.True(t, got.Details.DecisionPending)
	// the input is untouched
	assert.Equal(t, "Decision Pending", c.Details.CaseStatus)
	assert.False(t, c.Details.DecisionPending)
}

func TestNormalizeModernCaseStatusUnchanged(t *testing.T) {
	c := models.Case{Details: models.CaseDetails{CaseStatus: models.CaseStatusDisposed}}

	got := Normalize(c)

	assert.Equal(t, models.CaseStatusDisposed, got.Details.CaseStatus)
	assert.False(t, got.Details.DecisionPending)
}

func TestNormalizeAccusedStatusAliases(t *testing.T) {
	c := models.Case{Details: models.CaseDetails{
		Accused: []models.Accused{
			{Name: "a", Status: "True"},
			{Name: "b", Status: "False"},
			{Name: "c", Status: "Decision Pending"},
			{Name: "d", Status: "Arrested"},
			{Name: "e", Status: "Absconding"},
		},
	}}

	got := Normalize(c)

	want := []string{
		models.AccusedArrested,
		models.AccusedNotArrested,
		models.AccusedDecisionPending,
		models.AccusedArrested,
		"Absconding",
	}
	for i, a := range got.Details.Accused {
		assert.Equal(t, want[i], a.Status, "accused %s", a.Name)
	}
	// the input slice is untouched
	assert.Equal(t, "True", c.Details.Accused[0].Status)
}

func TestNormalizeReportPairs(t *testing.T) {
	c := models.Case{Details: models.CaseDetails{
		Reports: models.Reports{
			SPReports: []models.ReportEntry{{Label: "SP-1", Date: "2024-01-10"}},
			R2:        "2024-02-10",
			PR1:       "2024-01-15",
			PR3:       "2024-03-15",
		},
	}}

	got := Normalize(c).Details.Reports.Pairs

	assert.Len(t, got, 3)
	// the first pair comes from the list, the rest fall back to the flat dates
	assert.Equal(t, "2024-01-10", got[0].SP.Date)
	assert.Equal(t, "SP-1", got[0].SP.Label)
	assert.Equal(t, "2024-01-15", got[0].DSP.Date)
	assert.Equal(t, "2024-02-10", got[1].SP.Date)
	assert.Equal(t, "", got[1].DSP.Date)
	assert.Equal(t, "", got[2].SP.Date)
	assert.Equal(t, "2024-03-15", got[2].DSP.Date)
}
