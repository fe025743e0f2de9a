package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const chartDataSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["labels", "datasets"],
  "properties": {
    "labels": {"type": "array", "items": {"type": "string"}},
    "datasets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["label", "data"],
        "properties": {
          "label": {"type": "string"},
          "data": {"type": "array", "items": {"type": "number"}},
          "backgroundColor": {"type": "string"}
        }
      }
    }
  }
}`

func compileChartSchema() *jsonschema.Schema {
	return jsonschema.MustCompileString("chart_data.schema.json", chartDataSchema)
}

func validateAgainst(schema *jsonschema.Schema, body []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var document interface{}
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := schema.Validate(document); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
