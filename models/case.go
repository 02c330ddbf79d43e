package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Case status values. Legacy records may still carry "Decision Pending" as a
// case-level status; it is folded into StatusUnderInvestigation plus the
// DecisionPending flag when a case is normalized for querying.
const (
	CaseStatusDisposed           = "Disposed"
	CaseStatusUnderInvestigation = "Under investigation"
	CaseStatusLegacyPending      = "Decision Pending"
)

// Accused status values. "True"/"False"/"Not Arrested"/"Decision Pending" are
// historical aliases normalized on read.
const (
	AccusedArrested        = "Arrested"
	AccusedNotArrested     = "Not arrested"
	AccusedDecisionPending = "Decision pending"
)

// Punishment category values.
const (
	PunishmentUpto7Years  = "≤7 yrs"
	PunishmentAbove7Years = ">7 yrs"
)

// Case holds the structure for the case collection in mongo
type Case struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details CaseDetails        `json:"case" bson:"case"`
	Version int32              `json:"__v" bson:"__v"`
}

// CaseDetails holds the structure for the inner case structure as defined in
// the case collection in mongo. Dates are stored as strings as submitted by
// the intake form; unparseable values are treated as absent by the query
// engine.
type CaseDetails struct {
	CaseNo             string `json:"caseNo" bson:"caseNo"`
	Year               int    `json:"year" bson:"year"`
	PoliceStation      string `json:"policeStation" bson:"policeStation"`
	CrimeHead          string `json:"crimeHead" bson:"crimeHead"`
	CrimeSection       string `json:"crimeSection" bson:"crimeSection"`
	PunishmentCategory string `json:"punishmentCategory" bson:"punishmentCategory"`
	CaseDate           string `json:"caseDate" bson:"caseDate"`

	CaseStatus          string `json:"caseStatus" bson:"caseStatus"`
	InvestigationStatus string `json:"investigationStatus" bson:"investigationStatus"` // meaningful only while under investigation
	Priority            string `json:"priority" bson:"priority"`
	CaseDecisionStatus  string `json:"caseDecisionStatus" bson:"caseDecisionStatus"`

	// DecisionPending preserves the legacy case-level "Decision Pending"
	// status for cases recorded before per-accused statuses existed.
	DecisionPending bool `json:"decisionPending" bson:"decisionPending"`

	IsPropertyProfessionalCrime bool     `json:"isPropertyProfessionalCrime" bson:"isPropertyProfessionalCrime"`
	ReasonForPendency           []string `json:"reasonForPendency" bson:"reasonForPendency"`

	FinalChargesheetSubmitted      bool   `json:"finalChargesheetSubmitted" bson:"finalChargesheetSubmitted"`
	FinalChargesheetSubmissionDate string `json:"finalChargesheetSubmissionDate" bson:"finalChargesheetSubmissionDate"`

	Accused              []Accused             `json:"accused" bson:"accused"`
	CaseDiaries          []DiaryEntry          `json:"caseDiaries" bson:"caseDiaries"`
	Reports              Reports               `json:"reports" bson:"reports"`
	ProsecutionSanctions []ProsecutionSanction `json:"prosecutionSanctions" bson:"prosecutionSanctions"`
	FSLEntries           []FSLEntry            `json:"fslEntries" bson:"fslEntries"`
	InjuryReport         *DatedDocument        `json:"injuryReport" bson:"injuryReport"`
	PMReport             *DatedDocument        `json:"pmReport" bson:"pmReport"`
	CompensationProposal *DatedDocument        `json:"compensationProposal" bson:"compensationProposal"`

	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// Accused holds one accused sub-record owned by a case
type Accused struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Status        string             `json:"status" bson:"status"`
	Address       string             `json:"address" bson:"address"`
	MobileNumber  string             `json:"mobileNumber" bson:"mobileNumber"`
	AadhaarNumber string             `json:"aadhaarNumber" bson:"aadhaarNumber"`
	State         string             `json:"state" bson:"state"`
	District      string             `json:"district" bson:"district"`
	ArrestedDate  string             `json:"arrestedDate" bson:"arrestedDate"`
	ArrestedOn    string             `json:"arrestedOn" bson:"arrestedOn"`

	Warrant      *LegalProcess `json:"warrant" bson:"warrant"`
	Proclamation *LegalProcess `json:"proclamation" bson:"proclamation"`
	Attachment   *LegalProcess `json:"attachment" bson:"attachment"`
	Notice41A    *Notice41A    `json:"notice41A" bson:"notice41A"`
}

// LegalProcess is the shared shape for warrant, proclamation and attachment
// sub-records (prayed -> receipt -> execution -> return).
type LegalProcess struct {
	Prayed        bool   `json:"prayed" bson:"prayed"`
	PrayerDate    string `json:"prayerDate" bson:"prayerDate"`
	ReceiptDate   string `json:"receiptDate" bson:"receiptDate"`
	ExecutionDate string `json:"executionDate" bson:"executionDate"`
	ReturnDate    string `json:"returnDate" bson:"returnDate"`
}

// Notice41A holds the 41A notice sub-record for an accused
type Notice41A struct {
	Issued      bool   `json:"issued" bson:"issued"`
	Notice1Date string `json:"notice1Date" bson:"notice1Date"`
	Notice2Date string `json:"notice2Date" bson:"notice2Date"`
	Notice3Date string `json:"notice3Date" bson:"notice3Date"`
}

// Reports is the report aggregate owned by a case. Newer records carry the
// SPReports/DSPReports lists; legacy records carry the flat r1..r3/pr1..pr3
// dates instead. The two are reconciled positionally into Pairs when a case
// is normalized for querying.
type Reports struct {
	SPReports  []ReportEntry `json:"spReports" bson:"spReports"`
	DSPReports []ReportEntry `json:"dspReports" bson:"dspReports"`

	R1  string `json:"r1" bson:"r1"`
	R2  string `json:"r2" bson:"r2"`
	R3  string `json:"r3" bson:"r3"`
	PR1 string `json:"pr1" bson:"pr1"`
	PR2 string `json:"pr2" bson:"pr2"`
	PR3 string `json:"pr3" bson:"pr3"`

	Supervision      string `json:"supervision" bson:"supervision"`
	FPR              string `json:"fpr" bson:"fpr"`
	FinalOrder       string `json:"finalOrder" bson:"finalOrder"`
	FinalChargesheet string `json:"finalChargesheet" bson:"finalChargesheet"`

	// Pairs is filled by normalization and never persisted.
	Pairs []ReportPair `json:"-" bson:"-"`
}

// ReportEntry is one side of a report pair
type ReportEntry struct {
	Label string   `json:"label" bson:"label"`
	Date  string   `json:"date" bson:"date"`
	File  *FileRef `json:"file" bson:"file"`
}

// ReportPair joins the SP-side and DSP-side reports sharing a sequence index
type ReportPair struct {
	SP  ReportEntry `json:"sp" bson:"sp"`
	DSP ReportEntry `json:"dsp" bson:"dsp"`
}

// FileRef carries opaque file-store metadata on a sub-record. The query
// engine never opens or matches against it.
type FileRef struct {
	PublicID         string `json:"public_id" bson:"public_id"`
	SecureURL        string `json:"secure_url" bson:"secure_url"`
	OriginalFilename string `json:"original_filename" bson:"original_filename"`
}

// DiaryEntry holds one case diary entry
type DiaryEntry struct {
	DiaryNo   string `json:"diaryNo" bson:"diaryNo"`
	DiaryDate string `json:"diaryDate" bson:"diaryDate"`
}

// ProsecutionSanction holds one prosecution sanction sub-record
type ProsecutionSanction struct {
	Authority   string   `json:"authority" bson:"authority"`
	RequestDate string   `json:"requestDate" bson:"requestDate"`
	GrantDate   string   `json:"grantDate" bson:"grantDate"`
	File        *FileRef `json:"file" bson:"file"`
}

// FSLEntry holds one forensic science laboratory sub-record
type FSLEntry struct {
	ArticleSentDate    string   `json:"articleSentDate" bson:"articleSentDate"`
	ReportReceivedDate string   `json:"reportReceivedDate" bson:"reportReceivedDate"`
	ArticleDescription string   `json:"articleDescription" bson:"articleDescription"`
	File               *FileRef `json:"file" bson:"file"`
}

// DatedDocument is the shared shape for the injury report, PM report and
// compensation proposal sub-records.
type DatedDocument struct {
	Date    string   `json:"date" bson:"date"`
	Remarks string   `json:"remarks" bson:"remarks"`
	File    *FileRef `json:"file" bson:"file"`
}
