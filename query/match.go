package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/opsdesk/case-monitor-api/models"
)

// Matchers are opt-in: an unset criterion never excludes a record. String
// criteria are case-insensitive substring matches; enum criteria compare
// case-insensitively.

// containsFold is a case-insensitive substring test; an empty needle matches
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

// equalsFold is a case-insensitive equality test; an empty want matches
func equalsFold(got, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

// inSet reports membership of v in the selected values; an empty selection
// imposes no constraint.
func inSet(selected []string, v string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

// matchYesNo applies a Yes/No presence criterion to a boolean fact
func matchYesNo(criterion string, fact bool) bool {
	switch strings.ToLower(strings.TrimSpace(criterion)) {
	case "":
		return true
	case "yes":
		return fact
	case "no":
		return !fact
	default:
		return true
	}
}

// matchRange tests a stored date against a date range. With both bounds
// unset the range imposes no constraint; otherwise an absent or unparseable
// date fails. Bounds are inclusive, and an unparseable bound is ignored.
func matchRange(date string, r models.DateRange) bool {
	if r.IsZero() {
		return true
	}
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	if from, ok := parseDate(r.From); ok && t.Before(from) {
		return false
	}
	if to, ok := parseDate(r.To); ok && t.After(to) {
		return false
	}
	return true
}

// parseBound parses a numeric bound carried as a form string; ok is false
// when the bound is unset or unparseable, which deactivates the criterion.
func parseBound(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// withinBounds applies optional min/max bounds to a count. Bounds are applied
// literally, negative values included.
func withinBounds(n int, minS, maxS string) bool {
	if min, ok := parseBound(minS); ok && n < min {
		return false
	}
	if max, ok := parseBound(maxS); ok && n > max {
		return false
	}
	return true
}

// legalProcessFilterActive reports whether any criterion of the slice is set
func legalProcessFilterActive(f models.LegalProcessFilter) bool {
	return f.Prayed != "" ||
		f.ReceivedNotExecuted ||
		f.IssuedOverDays != "" ||
		!f.PrayerDateRange.IsZero() ||
		!f.ReceiptDateRange.IsZero() ||
		!f.ExecutionDateRange.IsZero() ||
		!f.ReturnDateRange.IsZero()
}

// matchLegalProcess applies one legal-process filter slice to an optional
// sub-record. A nil sub-record carries no dates, so any active date criterion
// fails against it; "prayed: No" matches it.
func matchLegalProcess(p *models.LegalProcess, f models.LegalProcessFilter, now time.Time) bool {
	prayed := p != nil && p.Prayed
	if !matchYesNo(f.Prayed, prayed) {
		return false
	}

	var prayerDate, receiptDate, executionDate, returnDate string
	if p != nil {
		prayerDate, receiptDate = p.PrayerDate, p.ReceiptDate
		executionDate, returnDate = p.ExecutionDate, p.ReturnDate
	}

	if f.ReceivedNotExecuted && !(hasDate(receiptDate) && !hasDate(executionDate)) {
		return false
	}
	if f.IssuedOverDays != "" && !olderThan(prayerDate, f.IssuedOverDays, now) {
		return false
	}
	if !matchRange(prayerDate, f.PrayerDateRange) {
		return false
	}
	if !matchRange(receiptDate, f.ReceiptDateRange) {
		return false
	}
	if !matchRange(executionDate, f.ExecutionDateRange) {
		return false
	}
	return matchRange(returnDate, f.ReturnDateRange)
}

// accusedFilterActive reports whether any accused-level criterion is set.
// When none is, the case predicate skips accused matching entirely and the
// result carries no matched accused.
func accusedFilterActive(f models.CaseFilter) bool {
	return f.AccusedName != "" ||
		f.AccusedStatus != "" ||
		f.AccusedAddress != "" ||
		f.AccusedMobile != "" ||
		f.AccusedAadhaar != "" ||
		f.AccusedState != "" ||
		f.AccusedDistrict != "" ||
		f.Notice41AIssued != "" ||
		!f.Notice41ADateRange.IsZero() ||
		legalProcessFilterActive(f.Warrant) ||
		legalProcessFilterActive(f.Proclamation) ||
		legalProcessFilterActive(f.Attachment)
}

// matchAccused applies every active accused-level criterion to one accused
func matchAccused(a models.Accused, f models.CaseFilter, now time.Time) bool {
	if !containsFold(a.Name, f.AccusedName) {
		return false
	}
	if !equalsFold(a.Status, f.AccusedStatus) {
		return false
	}
	if !containsFold(a.Address, f.AccusedAddress) {
		return false
	}
	if !containsFold(a.MobileNumber, f.AccusedMobile) {
		return false
	}
	if !containsFold(a.AadhaarNumber, f.AccusedAadhaar) {
		return false
	}
	if !equalsFold(a.State, f.AccusedState) {
		return false
	}
	if !equalsFold(a.District, f.AccusedDistrict) {
		return false
	}

	issued := a.Notice41A != nil && a.Notice41A.Issued
	if !matchYesNo(f.Notice41AIssued, issued) {
		return false
	}
	if !f.Notice41ADateRange.IsZero() && !matchRange(noticeDate(a.Notice41A), f.Notice41ADateRange) {
		return false
	}

	if !matchLegalProcess(a.Warrant, f.Warrant, now) {
		return false
	}
	if !matchLegalProcess(a.Proclamation, f.Proclamation, now) {
		return false
	}
	return matchLegalProcess(a.Attachment, f.Attachment, now)
}

// noticeDate picks whichever of the three 41A notice dates is present, in
// notice1 -> notice2 -> notice3 order.
func noticeDate(n *models.Notice41A) string {
	if n == nil {
		return ""
	}
	if n.Notice1Date != "" {
		return n.Notice1Date
	}
	if n.Notice2Date != "" {
		return n.Notice2Date
	}
	return n.Notice3Date
}

// matchReportField applies one report-date filter slice to a stored date
func matchReportField(date string, f models.ReportFieldFilter, now time.Time) bool {
	if !matchYesNo(f.Present, hasDate(date)) {
		return false
	}
	if !matchRange(date, f.Range) {
		return false
	}
	if f.OlderThanDays != "" && !olderThan(date, f.OlderThanDays, now) {
		return false
	}
	return true
}

// matchReports applies the report filters to a normalized reports aggregate
func matchReports(r models.Reports, f models.CaseFilter, now time.Time) bool {
	pairFilters := []struct {
		sp, dsp models.ReportFieldFilter
	}{
		{f.R1, f.PR1},
		{f.R2, f.PR2},
		{f.R3, f.PR3},
	}
	for i, pf := range pairFilters {
		var pair models.ReportPair
		if i < len(r.Pairs) {
			pair = r.Pairs[i]
		}
		if !matchReportField(pair.SP.Date, pf.sp, now) {
			return false
		}
		if !matchReportField(pair.DSP.Date, pf.dsp, now) {
			return false
		}
	}

	if !matchReportField(r.Supervision, f.Supervision, now) {
		return false
	}
	if !matchReportField(r.FPR, f.FPR, now) {
		return false
	}
	if !matchReportField(r.FinalOrder, f.FinalOrder, now) {
		return false
	}
	if !matchReportField(r.FinalChargesheet, f.FinalChargesheet, now) {
		return false
	}

	if f.ReportFPRWithoutChargesheet && !(hasDate(r.FPR) && !hasDate(r.FinalChargesheet)) {
		return false
	}
	return true
}

// matchDiary applies the diary criteria to one diary entry
func matchDiary(d models.DiaryEntry, f models.CaseFilter) bool {
	if !containsFold(d.DiaryNo, f.DiaryNo) {
		return false
	}
	return matchRange(d.DiaryDate, f.DiaryDateRange)
}

func diaryFilterActive(f models.CaseFilter) bool {
	return f.DiaryNo != "" || !f.DiaryDateRange.IsZero()
}

// matchCase is the case predicate: every step is an implicit AND, so the
// first failing criterion excludes the case. When accused-level criteria are
// active the matched accused subset is returned; a case with zero matching
// accused is excluded outright.
func matchCase(d models.CaseDetails, f models.CaseFilter, now time.Time) (bool, []models.Accused) {
	var matched []models.Accused
	if accusedFilterActive(f) {
		for _, a := range d.Accused {
			if matchAccused(a, f, now) {
				matched = append(matched, a)
			}
		}
		if len(matched) == 0 {
			return false, nil
		}
	}

	if !containsFold(d.CaseNo, f.CaseNo) {
		return false, nil
	}
	if !equalsFold(d.PoliceStation, f.PoliceStation) {
		return false, nil
	}
	if !equalsFold(d.CrimeHead, f.CrimeHead) {
		return false, nil
	}
	if !containsFold(d.CrimeSection, f.CrimeSection) {
		return false, nil
	}

	if year, ok := parseBound(f.Year); ok && d.Year != year {
		return false, nil
	}
	if from, ok := parseBound(f.YearFrom); ok && d.Year < from {
		return false, nil
	}
	if to, ok := parseBound(f.YearTo); ok && d.Year > to {
		return false, nil
	}
	if before, ok := parseBound(f.YearBefore); ok && d.Year >= before {
		return false, nil
	}
	if after, ok := parseBound(f.YearAfter); ok && d.Year <= after {
		return false, nil
	}

	// Selecting both punishment categories (or none) imposes no constraint.
	if len(f.PunishmentCategories) == 1 && !equalsFold(d.PunishmentCategory, f.PunishmentCategories[0]) {
		return false, nil
	}

	if !inSet(f.CaseStatuses, d.CaseStatus) {
		return false, nil
	}

	if f.DecisionPendingStatus != "" &&
		!strings.EqualFold(DeriveStatus(d.Accused, d.DecisionPending), f.DecisionPendingStatus) {
		return false, nil
	}
	if !equalsFold(d.CaseDecisionStatus, f.CaseDecisionStatus) {
		return false, nil
	}

	// The investigation-status filter only makes sense for cases under
	// investigation; any other case fails it outright.
	if len(f.InvestigationStatuses) > 0 {
		if !strings.EqualFold(d.CaseStatus, models.CaseStatusUnderInvestigation) {
			return false, nil
		}
		if !inSet(f.InvestigationStatuses, d.InvestigationStatus) {
			return false, nil
		}
	}

	if !inSet(f.Priorities, d.Priority) {
		return false, nil
	}
	if f.PropertyProfessionalCrime && !d.IsPropertyProfessionalCrime {
		return false, nil
	}
	if len(f.ReasonsForPendency) > 0 && !intersects(d.ReasonForPendency, f.ReasonsForPendency) {
		return false, nil
	}

	arrested, notArrested := 0, 0
	for _, a := range d.Accused {
		switch {
		case strings.EqualFold(a.Status, models.AccusedArrested):
			arrested++
		case strings.EqualFold(a.Status, models.AccusedNotArrested):
			notArrested++
		}
	}
	if !withinBounds(len(d.Accused), f.TotalAccusedMin, f.TotalAccusedMax) {
		return false, nil
	}
	if !withinBounds(arrested, f.ArrestedAccusedMin, f.ArrestedAccusedMax) {
		return false, nil
	}
	if !withinBounds(notArrested, f.NotArrestedAccusedMin, f.NotArrestedAccusedMax) {
		return false, nil
	}

	if !f.ArrestedDateRange.IsZero() {
		anyArrestInRange := false
		for _, a := range d.Accused {
			if strings.EqualFold(a.Status, models.AccusedArrested) && matchRange(a.ArrestedDate, f.ArrestedDateRange) {
				anyArrestInRange = true
				break
			}
		}
		if !anyArrestInRange {
			return false, nil
		}
	}

	if !matchReports(d.Reports, f, now) {
		return false, nil
	}

	if !matchYesNo(f.FinalChargesheetSubmitted, d.FinalChargesheetSubmitted) {
		return false, nil
	}
	if !matchRange(d.FinalChargesheetSubmissionDate, f.FinalChargesheetDateRange) {
		return false, nil
	}

	if diaryFilterActive(f) {
		anyDiary := false
		for _, entry := range d.CaseDiaries {
			if matchDiary(entry, f) {
				anyDiary = true
				break
			}
		}
		if !anyDiary {
			return false, nil
		}
	}

	return true, matched
}

// intersects reports a non-empty case-insensitive intersection
func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}
