package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildCalendarJSONSchema returns the output contract for the daily report as
// a JSON-Schema map. It is sent to the model as a structured-output constraint
// and also used locally to validate what came back.
func BuildCalendarJSONSchema() map[string]any {
	caseProps := map[string]any{
		"sending_part":         map[string]any{"type": "string"},
		"defendant":            map[string]any{"type": "string"},
		"purpose":              map[string]any{"type": "string"},
		"transfer_date":        map[string]any{"type": "string"},
		"top_charge":           map[string]any{"type": "string"},
		"status":               map[string]any{"type": "string"},
		"calendar_date":        map[string]any{"type": "string"},
		"case_count":           map[string]any{"type": "integer", "minimum": 0},
		"attorney":             map[string]any{"type": "string"},
		"estimated_final_date": map[string]any{"type": "string"},
		"is_juvenile":          map[string]any{"type": "boolean"},
	}

	entryProps := map[string]any{
		"part":         map[string]any{"type": "string", "minLength": 1},
		"judge":        map[string]any{"type": "string"},
		"calendar_day": map[string]any{"type": "string"},
		"out_dates": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"cases": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":       "object",
				"properties": caseProps,
			},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"report_date": map[string]any{"type": "string"},
			"building":    map[string]any{"type": "string"},
			"report_type": map[string]any{"type": "string"},
			"entries": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": entryProps,
					"required":   []string{"part"},
				},
			},
		},
		"required": []string{"entries"},
	}
}

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
