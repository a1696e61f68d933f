package genai

import (
	"strings"
	"testing"
)

func strictSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required":             []string{"name"},
		"additionalProperties": false,
	}
}

func TestValidatorCacheAcceptsConformingJSON(t *testing.T) {
	vc := newValidatorCache()
	if err := vc.validate("thing", strictSchema(), []byte(`{"name":"ok"}`)); err != nil {
		t.Fatalf("conforming document rejected: %v", err)
	}
}

func TestValidatorCacheRejectsViolations(t *testing.T) {
	vc := newValidatorCache()
	cases := []struct {
		name string
		data string
	}{
		{"missing required field", `{}`},
		{"additional property", `{"name":"ok","extra":1}`},
		{"wrong type", `{"name":42}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := vc.validate("thing", strictSchema(), []byte(tc.data))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "thing") {
				t.Fatalf("error should name the schema: %v", err)
			}
		})
	}
}

func TestValidatorCacheCompilesOncePerName(t *testing.T) {
	vc := newValidatorCache()
	if err := vc.validate("thing", strictSchema(), []byte(`{"name":"ok"}`)); err != nil {
		t.Fatalf("first validation: %v", err)
	}

	// Same name, stricter body: the first compilation wins, so the
	// document that satisfied the original schema still passes.
	stricter := map[string]any{"type": "object", "required": []string{"name", "age"}}
	if err := vc.validate("thing", stricter, []byte(`{"name":"ok"}`)); err != nil {
		t.Fatalf("compiled schema was not reused: %v", err)
	}
}
