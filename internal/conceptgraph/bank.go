package conceptgraph

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON schema for authored concept-bank files. Subject
// is deliberately a free string here: unknown subjects are an import-time
// skip, not a parse failure.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"concepts": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string", "minLength": 1},
					"subject":        map[string]any{"type": "string", "minLength": 1},
					"topic":          map[string]any{"type": "string"},
					"name":           map[string]any{"type": "string", "minLength": 1},
					"rule_statement": map[string]any{"type": "string"},
					"elements": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"common_traps": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"exceptions": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"policy_rationales": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"difficulty_seed": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"id", "subject", "name"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"concepts"},
	"additionalProperties": false,
}

var (
	compiledBankSchema *jsonschema.Schema
	compileOnce        sync.Once
	compileErr         error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal for a clean representation.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://concept-bank.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledBankSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledBankSchema, compileErr
}

// bankFile mirrors the on-disk concept bank format.
type bankFile struct {
	Concepts []bankConcept `json:"concepts"`
}

// bankConcept keeps subject as a string so unknown subjects survive
// parsing and can be skipped with a reason at import time.
type bankConcept struct {
	ID               string   `json:"id"`
	Subject          string   `json:"subject"`
	Topic            string   `json:"topic"`
	Name             string   `json:"name"`
	RuleStatement    string   `json:"rule_statement"`
	Elements         []string `json:"elements"`
	CommonTraps      []string `json:"common_traps"`
	Exceptions       []string `json:"exceptions"`
	PolicyRationales []string `json:"policy_rationales"`
	DifficultySeed   int      `json:"difficulty_seed"`
	Prerequisites    []string `json:"prerequisites"`
}

// RawConcept is a parsed bank entry whose subject has not yet been
// resolved to the Subject enum.
type RawConcept struct {
	Concept    Concept
	RawSubject string
}

// LoadBank reads and validates a concept-bank JSON file. The file must
// conform to the bank schema; schema failures reject the whole file
// before any record is considered.
func LoadBank(path string) ([]RawConcept, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return ParseBank(data)
}

// ParseBank validates raw JSON against the bank schema and decodes it.
func ParseBank(data []byte) ([]RawConcept, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("bank schema validation failed: %w", err)
	}

	var bank bankFile
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("decode bank file: %w", err)
	}

	raws := make([]RawConcept, 0, len(bank.Concepts))
	for _, bc := range bank.Concepts {
		subj, _ := ParseSubject(bc.Subject)
		raws = append(raws, RawConcept{
			RawSubject: bc.Subject,
			Concept: Concept{
				ID:               bc.ID,
				Subject:          subj,
				Topic:            bc.Topic,
				Name:             bc.Name,
				RuleStatement:    bc.RuleStatement,
				Elements:         bc.Elements,
				CommonTraps:      bc.CommonTraps,
				Exceptions:       bc.Exceptions,
				PolicyRationales: bc.PolicyRationales,
				DifficultySeed:   ClampSeed(bc.DifficultySeed),
				Prerequisites:    bc.Prerequisites,
			},
		})
	}
	return raws, nil
}
