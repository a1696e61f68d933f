package genai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// validatorCache compiles each named schema once; every extraction with
// the same schema name reuses the compiled form. Schema bodies are fixed
// per name within a deployment.
type validatorCache struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

func newValidatorCache() *validatorCache {
	return &validatorCache{compiled: make(map[string]*jsonschema.Schema)}
}

func (vc *validatorCache) get(name string, schemaMap map[string]any) (*jsonschema.Schema, error) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	if s, ok := vc.compiled[name]; ok {
		return s, nil
	}

	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	s, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	vc.compiled[name] = s
	return s, nil
}

// validate checks data against the named schema.
func (vc *validatorCache) validate(name string, schemaMap map[string]any, data []byte) error {
	s, err := vc.get(name, schemaMap)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal extracted json: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema %s: %w", name, err)
	}
	return nil
}
