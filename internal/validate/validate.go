// Package validate provides JSON schema validation for generation requests.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var generateRequestSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := schemasFS.ReadFile("schemas/generate_request.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to read generate request schema: %v", err))
	}
	if err := compiler.AddResource("generate_request.schema.json", strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("failed to add generate request schema: %v", err))
	}

	generateRequestSchema, err = compiler.Compile("generate_request.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile generate request schema: %v", err))
	}
}

// ValidationError is a single schema violation with its JSON-pointer location.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no errors"
	}
	var msgs []string
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateGenerateRequestJSON validates a raw POST /api/generate body against the schema
// governing category definitions, the target fact, and generation options.
func ValidateGenerateRequestJSON(data []byte) ValidationErrors {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Path: "", Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	if err := generateRequestSchema.Validate(doc); err != nil {
		return schemaErrorToValidationErrors(err)
	}
	return nil
}

func schemaErrorToValidationErrors(err error) ValidationErrors {
	var errors ValidationErrors
	switch e := err.(type) {
	case *jsonschema.ValidationError:
		errors = append(errors, extractValidationErrors(e)...)
	default:
		errors = append(errors, ValidationError{Message: err.Error()})
	}
	return errors
}

func extractValidationErrors(ve *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors
	if ve.Message != "" {
		errors = append(errors, ValidationError{
			Path:    ve.InstanceLocation,
			Message: ve.Message,
		})
	}
	for _, cause := range ve.Causes {
		errors = append(errors, extractValidationErrors(cause)...)
	}
	return errors
}
