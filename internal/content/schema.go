package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/wizardquiz/internal/quiz"
)

const schemaURL = "schema://wizardquiz/bank.json"

// bankSchema returns the JSON schema a content file must satisfy before it is
// decoded. Option counts and profile completeness are left to quiz.Bank.Validate,
// which reports every problem at once.
func bankSchema() map[string]any {
	var names []any
	for _, c := range quiz.AllCategories() {
		names = append(names, c.String())
	}

	option := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":     map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{"type": "string", "enum": names},
			"points":   map[string]any{"type": "integer", "minimum": 1},
		},
		"required":             []any{"text", "category", "points"},
		"additionalProperties": false,
	}

	profileProps := make(map[string]any, len(names))
	for _, n := range names {
		profileProps[n.(string)] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tagline":     map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
			},
			"additionalProperties": false,
		}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":                map[string]any{"type": "string"},
			"subtitle":             map[string]any{"type": "string"},
			"options_per_question": map[string]any{"type": "integer", "minimum": 2},
			"profiles": map[string]any{
				"type":                 "object",
				"properties":           profileProps,
				"additionalProperties": false,
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt":  map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{"type": "array", "items": option},
					},
					"required":             []any{"prompt", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions", "profiles"},
		"additionalProperties": false,
	}
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the bank schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not Go maps
		// with typed slices, so round-trip through encoding/json.
		defBytes, err := json.Marshal(bankSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded JSON document against the bank schema.
func validateDocument(doc any) error {
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
