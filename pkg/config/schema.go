package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fileSchema is the JSON Schema every pattern-set document must satisfy.
const fileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "enum": ["1"]},
    "include": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "patterns": {
      "type": "array",
      "items": {"$ref": "#/$defs/pattern"}
    }
  },
  "$defs": {
    "pattern": {
      "type": "object",
      "additionalProperties": false,
      "required": ["name", "pattern"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "pattern": {"type": "string"},
        "kind": {"enum": ["default", "path", "url"]},
        "defaultMatch": {"type": "string", "minLength": 1},
        "matches": {
          "type": "object",
          "additionalProperties": {"type": "string"}
        },
        "transformers": {
          "type": "object",
          "additionalProperties": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("patterns.schema.json", strings.NewReader(fileSchema)); err != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("patterns.schema.json")
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded JSON document against the file schema.
func validateDocument(doc any) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("schema compilation error: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var msgs []string
	collectSchemaErrors(verr, &msgs)
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}

// collectSchemaErrors flattens the leaf causes of a validation error.
func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}
