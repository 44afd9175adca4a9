package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed tools.schema.json
var schemaJSON []byte

const schemaURL = "tools.schema.json"

func compileSchema() (*jsonschema.Schema, error) {
	var schemaObj any
	if err := json.Unmarshal(schemaJSON, &schemaObj); err != nil {
		return nil, fmt.Errorf("schema unmarshal error: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, schemaObj); err != nil {
		return nil, fmt.Errorf("schema compile error: %w", err)
	}
	return c.Compile(schemaURL)
}

// validate checks config content against the embedded tools schema.
func validate(data []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config is not valid JSON: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("config schema validation failed: %w", err)
	}
	return nil
}
