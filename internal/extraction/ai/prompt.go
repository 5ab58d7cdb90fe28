package ai

import (
	"encoding/json"
	"strings"
)

// buildSystemPrompt encodes the daily report's column semantics and the output
// contract. The prompt is fixed: callers cannot vary it per request, which
// keeps the boundary's behavior auditable.
func buildSystemPrompt() string {
	parts := []string{
		"You are a court calendar parser. The attached document is a daily court-report PDF.",
		"Return ONLY a single JSON object matching the provided JSON Schema. No prose, no markdown.",
		"Each row of the report describes one court part (a courtroom track such as 'Part 22' or 'TAP A').",
		"The first line of the Part/Judge column is ALWAYS the part identifier, never a judge name, even when it resembles one. A part identifier may contain several slash-separated aliases (e.g. 'TAP A / TAP G / GWP1').",
		"Later lines of that column may contain: a calendar-week marker like 'Cal Wk 3' (copy it into calendar_day), short absence status codes such as 'OWN' or 'OUT' (put them in out_dates only if they are dates, otherwise ignore), and absence date ranges like '10/21-10/25' or bare dates like '10/23' (collect them into out_dates).",
		"Copy the raw multi-line Part/Judge cell text into 'part' verbatim, preserving line breaks.",
		"Only fill 'judge' when a judge name is printed elsewhere in the row; never infer one.",
		"For each part, list every case row under 'cases' with the columns as named in the schema.",
		"Set 'confidence' between 0 and 1 reflecting how legible and unambiguous the row was.",
		"Never output null. If a field is not present, omit it or use an empty string.",
	}
	return strings.Join(parts, " ")
}

// buildSchemaMessage renders the schema as its own system message, mirroring
// how the model was prompted during contract design.
func buildSchemaMessage() string {
	b, _ := json.MarshalIndent(BuildCalendarJSONSchema(), "", "  ")
	return "JSON Schema:\n" + string(b)
}
