package models

// CaseFilter is the flat filter specification supplied to a search. Every
// field is optional; an absent or zero-valued field imposes no constraint.
// Numeric bounds and day thresholds are carried as strings exactly as the
// search form submits them.
type CaseFilter struct {
	CaseNo        string `json:"caseNo"`
	PoliceStation string `json:"policeStation"`
	CrimeHead     string `json:"crimeHead"`
	CrimeSection  string `json:"crimeSection"`

	Year       string `json:"year"`
	YearFrom   string `json:"yearFrom"`
	YearTo     string `json:"yearTo"`
	YearBefore string `json:"yearBefore"`
	YearAfter  string `json:"yearAfter"`

	PunishmentCategories  []string `json:"punishmentCategories"`
	CaseStatuses          []string `json:"caseStatuses"`
	InvestigationStatuses []string `json:"investigationStatuses"`
	Priorities            []string `json:"priorities"`

	DecisionPendingStatus string `json:"decisionPendingStatus"`
	CaseDecisionStatus    string `json:"caseDecisionStatus"`

	PropertyProfessionalCrime bool     `json:"propertyProfessionalCrime"`
	ReasonsForPendency        []string `json:"reasonsForPendency"`

	TotalAccusedMin       string `json:"totalAccusedMin"`
	TotalAccusedMax       string `json:"totalAccusedMax"`
	ArrestedAccusedMin    string `json:"arrestedAccusedMin"`
	ArrestedAccusedMax    string `json:"arrestedAccusedMax"`
	NotArrestedAccusedMin string `json:"notArrestedAccusedMin"`
	NotArrestedAccusedMax string `json:"notArrestedAccusedMax"`

	ArrestedDateRange DateRange `json:"arrestedDateRange"`

	AccusedName     string `json:"accusedName"`
	AccusedStatus   string `json:"accusedStatus"`
	AccusedAddress  string `json:"accusedAddress"`
	AccusedMobile   string `json:"accusedMobile"`
	AccusedAadhaar  string `json:"accusedAadhaar"`
	AccusedState    string `json:"accusedState"`
	AccusedDistrict string `json:"accusedDistrict"`

	Notice41AIssued    string    `json:"notice41AIssued"` // "Yes", "No" or unset
	Notice41ADateRange DateRange `json:"notice41ADateRange"`

	Warrant      LegalProcessFilter `json:"warrant"`
	Proclamation LegalProcessFilter `json:"proclamation"`
	Attachment   LegalProcessFilter `json:"attachment"`

	R1  ReportFieldFilter `json:"r1"`
	R2  ReportFieldFilter `json:"r2"`
	R3  ReportFieldFilter `json:"r3"`
	PR1 ReportFieldFilter `json:"pr1"`
	PR2 ReportFieldFilter `json:"pr2"`
	PR3 ReportFieldFilter `json:"pr3"`

	Supervision      ReportFieldFilter `json:"supervision"`
	FPR              ReportFieldFilter `json:"fpr"`
	FinalOrder       ReportFieldFilter `json:"finalOrder"`
	FinalChargesheet ReportFieldFilter `json:"finalChargesheet"`

	// ReportFPRWithoutChargesheet requires an FPR date with no final
	// chargesheet date.
	ReportFPRWithoutChargesheet bool `json:"reportFPRWithoutChargesheet"`

	FinalChargesheetSubmitted string    `json:"finalChargesheetSubmitted"` // "Yes", "No" or unset
	FinalChargesheetDateRange DateRange `json:"finalChargesheetDateRange"`

	DiaryNo        string    `json:"diaryNo"`
	DiaryDateRange DateRange `json:"diaryDateRange"`
}

// LegalProcessFilter is the filter slice applied to one legal-process
// sub-record (warrant, proclamation or attachment).
type LegalProcessFilter struct {
	Prayed              string    `json:"prayed"` // "Yes", "No" or unset
	ReceivedNotExecuted bool      `json:"receivedNotExecuted"`
	IssuedOverDays      string    `json:"issuedOverDays"` // tested against the prayer date
	PrayerDateRange     DateRange `json:"prayerDateRange"`
	ReceiptDateRange    DateRange `json:"receiptDateRange"`
	ExecutionDateRange  DateRange `json:"executionDateRange"`
	ReturnDateRange     DateRange `json:"returnDateRange"`
}

// ReportFieldFilter is the filter slice applied to one report date
type ReportFieldFilter struct {
	Present       string    `json:"present"` // "Yes" = date present, "No" = date absent
	Range         DateRange `json:"range"`
	OlderThanDays string    `json:"olderThanDays"`
}

// DateRange bounds a date filter; either side may be empty
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}
