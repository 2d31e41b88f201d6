package explain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/slovo/internal/llm"
)

// ExplanationSchema is the answer shape requested from the model.
var ExplanationSchema = &llm.Schema{
	Name: "word-explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Meaning and usage of the word, in French (1-3 sentences)",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A memory trick in French linking the sound of the word to its meaning",
			},
			"grammar": map[string]any{
				"type":        "string",
				"description": "A brief grammar note in French (gender, aspect, declension), or an empty string",
			},
		},
		"required":             []any{"explanation", "mnemonic", "grammar"},
		"additionalProperties": false,
	},
}

// ErrInvalidAnswer wraps a model answer that is not JSON or does not match
// ExplanationSchema.
var ErrInvalidAnswer = fmt.Errorf("answer does not match %s", ExplanationSchema.Name)

// compiledSchema compiles ExplanationSchema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON document, not Go map literals with
	// typed slices, so round-trip the definition.
	raw, err := json.Marshal(ExplanationSchema.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	url := "schema://" + ExplanationSchema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
})

// decodeAnswer validates raw against ExplanationSchema and decodes it.
func decodeAnswer(raw json.RawMessage) (explanationOutput, error) {
	var out explanationOutput

	sch, err := compiledSchema()
	if err != nil {
		return out, fmt.Errorf("compile %s: %w", ExplanationSchema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	if err := sch.Validate(doc); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	return out, nil
}
