package profile

import (
	"bytes"
	"fmt"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"strings"
	"sync"
)

const schemaResource = "kraken2go-profile.json"

// profileSchema describes the full profile document.
// Additional properties are allowed everywhere to stay forward compatible.
// Curves are not constrained, unusable points are dropped while decoding.
const profileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["preset"],
  "properties": {
    "device": {"type": ["string", "null"]},
    "preset": {
      "type": "object",
      "required": ["logo", "ring"],
      "properties": {
        "logo": {"$ref": "#/$defs/preset"},
        "ring": {"$ref": "#/$defs/preset"}
      }
    },
    "fan_ctl": {"$ref": "#/$defs/curve"},
    "pump_ctl": {"$ref": "#/$defs/curve"}
  },
  "$defs": {
    "preset": {
      "type": "object",
      "required": ["mode", "colors", "speed"],
      "properties": {
        "channel": {"type": "string"},
        "mode": {"type": "string"},
        "speed": {"type": "string"},
        "colors": {
          "type": "array",
          "items": {"type": "string", "pattern": "^#?[0-9a-fA-F]{6}$"}
        }
      }
    },
    "curve": {}
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(profileSchema))
		if err != nil {
			compileErr = fmt.Errorf("failed to unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaResource, doc); err != nil {
			compileErr = fmt.Errorf("failed to add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaResource)
	})
	return compiledSchema, compileErr
}

// validate checks the raw document against the profile schema
func validate(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &MalformedProfileError{Reason: "invalid json", Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return &MalformedProfileError{Reason: "schema violation", Err: err}
	}
	return nil
}
