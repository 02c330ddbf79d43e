package query

import (
	"strings"

	"github.com/opsdesk/case-monitor-api/models"
)

// accusedStatusAliases maps the historical accused status spellings onto the
// three modern values. "True"/"False" predate the three-state status and
// recorded whether the accused had been arrested.
var accusedStatusAliases = map[string]string{
	"arrested":         models.AccusedArrested,
	"true":             models.AccusedArrested,
	"not arrested":     models.AccusedNotArrested,
	"false":            models.AccusedNotArrested,
	"decision pending": models.AccusedDecisionPending,
}

// Normalize reconciles a case's legacy fields once, before the case enters
// the matchers. It returns a copy; the stored record is never mutated.
//
//   - a legacy case-level "Decision Pending" status becomes
//     "Under investigation" with the DecisionPending flag set
//   - accused status aliases are rewritten to their modern spellings
//   - report pairs are built positionally, preferring the spReports and
//     dspReports lists and falling back to the flat legacy r/pr dates
func Normalize(c models.Case) models.Case {
	d := c.Details

	if strings.EqualFold(strings.TrimSpace(d.CaseStatus), models.CaseStatusLegacyPending) {
		d.CaseStatus = models.CaseStatusUnderInvestigation
		d.DecisionPending = true
	}

	if len(d.Accused) > 0 {
		accused := make([]models.Accused, len(d.Accused))
		copy(accused, d.Accused)
		for i := range accused {
			key := strings.ToLower(strings.TrimSpace(accused[i].Status))
			if modern, ok := accusedStatusAliases[key]; ok {
				accused[i].Status = modern
			}
		}
		d.Accused = accused
	}

	d.Reports.Pairs = buildReportPairs(d.Reports)

	c.Details = d
	return c
}

func buildReportPairs(r models.Reports) []models.ReportPair {
	legacySP := []string{r.R1, r.R2, r.R3}
	legacyDSP := []string{r.PR1, r.PR2, r.PR3}

	pairs := make([]models.ReportPair, 3)
	for i := 0; i < 3; i++ {
		if i < len(r.SPReports) {
			pairs[i].SP = r.SPReports[i]
		} else {
			pairs[i].SP = models.ReportEntry{Date: legacySP[i]}
		}
		if i < len(r.DSPReports) {
			pairs[i].DSP = r.DSPReports[i]
		} else {
			pairs[i].DSP = models.ReportEntry{Date: legacyDSP[i]}
		}
	}
	return pairs
}
