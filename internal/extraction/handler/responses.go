package handler

import "courtcal/internal/extraction"

// ExtractReportResponse is the success envelope for POST /reports/extract.
type ExtractReportResponse struct {
	Success       bool               `json:"success"`
	ExtractedData *extraction.Report `json:"extracted_data"`
}

// FromReport builds the API response from a domain report.
func FromReport(report *extraction.Report) ExtractReportResponse {
	return ExtractReportResponse{Success: true, ExtractedData: report}
}
