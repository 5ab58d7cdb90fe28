package handler

import (
	"strings"

	dErrors "courtcal/pkg/domain-errors"
)

// ExtractReportRequest is the POST /reports/extract body.
type ExtractReportRequest struct {
	FilePath string `json:"filePath"`
}

func (r *ExtractReportRequest) Normalize() {
	r.FilePath = strings.TrimSpace(r.FilePath)
}

func (r *ExtractReportRequest) Validate() error {
	if r.FilePath == "" {
		return dErrors.New(dErrors.CodeBadRequest, "filePath is required")
	}
	return nil
}
