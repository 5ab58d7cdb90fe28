// Package extraction implements the court-calendar pipeline: a daily report
// PDF is handed to the AI boundary, its structured response is normalized into
// typed records, and each record is enriched against the room/personnel
// registry before being returned to the caller.
package extraction

// ExtractRequest is the orchestrator input for one document.
type ExtractRequest struct {
	FilePath string
}

// ExtractedCase is one case row under a calendar entry. All fields are
// normalized: strings trimmed, numerics defaulted, booleans coerced.
type ExtractedCase struct {
	SendingPart        string `json:"sending_part"`
	Defendant          string `json:"defendant"`
	Purpose            string `json:"purpose"`
	TransferDate       string `json:"transfer_date"`
	TopCharge          string `json:"top_charge"`
	Status             string `json:"status"`
	CalendarDate       string `json:"calendar_date"`
	CaseCount          int    `json:"case_count"`
	Attorney           string `json:"attorney"`
	EstimatedFinalDate string `json:"estimated_final_date"`
	IsJuvenile         bool   `json:"is_juvenile"`
}

// ExtractedEntry is one normalized calendar entry as the AI boundary reports
// it, before enrichment. Cases is never nil after normalization.
type ExtractedEntry struct {
	Part        string          `json:"part"`
	Judge       string          `json:"judge"`
	CalendarDay string          `json:"calendar_day"`
	OutDates    []string        `json:"out_dates"`
	Confidence  float64         `json:"confidence"`
	Cases       []ExtractedCase `json:"cases"`
}

// ExtractedSession is one enriched report row. Fields the registry could not
// resolve stay empty rather than guessed, and Confidence is only ever raised
// by enrichment, never lowered.
type ExtractedSession struct {
	PartNumber    string          `json:"part_number"`
	JudgeName     string          `json:"judge_name,omitempty"`
	CalendarWeek  string          `json:"calendar_week,omitempty"`
	CalendarDay   string          `json:"calendar_day,omitempty"`
	AbsenceStatus string          `json:"absence_status,omitempty"`
	AbsenceDates  []string        `json:"absence_dates"`
	RoomNumber    string          `json:"room_number,omitempty"`
	ClerkName     string          `json:"clerk_name,omitempty"`
	Cases         []ExtractedCase `json:"cases"`
	Confidence    float64         `json:"confidence"`
}

// Report is the orchestrator output: report-level metadata, the normalized
// entries, and the enriched per-session view.
type Report struct {
	ReportDate string             `json:"report_date"`
	Building   string             `json:"building"`
	ReportType string             `json:"report_type"`
	Entries    []ExtractedEntry   `json:"entries"`
	Sessions   []ExtractedSession `json:"sessions"`
}
