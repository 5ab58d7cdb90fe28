package extraction

import (
	"strconv"
	"strings"
)

// rawReport is the untyped shape the AI boundary returns. Nothing downstream
// sees this type: it is converted into the strict Report/ExtractedEntry
// records in one normalization pass.
type rawReport struct {
	ReportDate any   `json:"report_date"`
	Building   any   `json:"building"`
	ReportType any   `json:"report_type"`
	Entries    []any `json:"entries"`
}

// normalizeEntries converts raw entries into typed records. After this pass
// every string field is defined and trimmed, every numeric field is a number,
// every boolean is a boolean, and every list is non-nil — regardless of what
// the boundary returned.
func normalizeEntries(raw []any) []ExtractedEntry {
	entries := make([]ExtractedEntry, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, ExtractedEntry{
			Part:        toString(m["part"]),
			Judge:       toString(m["judge"]),
			CalendarDay: toString(m["calendar_day"]),
			OutDates:    toStringSlice(m["out_dates"]),
			Confidence:  toFloat(m["confidence"]),
			Cases:       normalizeCases(m["cases"]),
		})
	}
	return entries
}

func normalizeCases(v any) []ExtractedCase {
	items, ok := v.([]any)
	if !ok {
		return []ExtractedCase{}
	}
	cases := make([]ExtractedCase, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cases = append(cases, ExtractedCase{
			SendingPart:        toString(m["sending_part"]),
			Defendant:          toString(m["defendant"]),
			Purpose:            toString(m["purpose"]),
			TransferDate:       toString(m["transfer_date"]),
			TopCharge:          toString(m["top_charge"]),
			Status:             toString(m["status"]),
			CalendarDate:       toString(m["calendar_date"]),
			CaseCount:          toInt(m["case_count"]),
			Attorney:           toString(m["attorney"]),
			EstimatedFinalDate: toString(m["estimated_final_date"]),
			IsJuvenile:         toBool(m["is_juvenile"]),
		})
	}
	return cases
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := toString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "yes" || s == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}
