package audit

import "time"

// Record is one append-only extraction audit row. It captures counts and
// response size, not the extracted content itself.
type Record struct {
	ID                string    `json:"id"`
	FilePath          string    `json:"file_path"`
	ReportDate        string    `json:"report_date"`
	Building          string    `json:"building"`
	PartsExtracted    int       `json:"parts_extracted"`
	TotalCases        int       `json:"total_cases"`
	RawResponseLength int       `json:"raw_response_length"`
	CreatedAt         time.Time `json:"created_at"`
}
