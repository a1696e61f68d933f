package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/tabmate/outings-tracker/internal/cache"
)

func testSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"restaurant": map[string]any{"type": "string"},
			"total":      map[string]any{"type": "number"},
		},
		"required": []string{"restaurant", "total"},
	}
}

// same schema with properties declared in a different key order
func permutedSchema() map[string]any {
	return map[string]any{
		"required": []string{"restaurant", "total"},
		"properties": map[string]any{
			"total":      map[string]any{"type": "number"},
			"restaurant": map[string]any{"type": "string"},
		},
		"additionalProperties": false,
		"type":                 "object",
	}
}

func TestCacheKeyCanonicalization(t *testing.T) {
	base, err := CacheKey("prompt", "input", "receipt_info", testSchema())
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}

	permuted, err := CacheKey("prompt", "input", "receipt_info", permutedSchema())
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	if base != permuted {
		t.Fatalf("key order permutation changed the cache key: %s != %s", base, permuted)
	}

	variants := []struct {
		name                      string
		prompt, input, schemaName string
		schema                    map[string]any
	}{
		{"prompt changed", "other", "input", "receipt_info", testSchema()},
		{"input changed", "prompt", "other", "receipt_info", testSchema()},
		{"schema name changed", "prompt", "input", "other", testSchema()},
		{"schema changed", "prompt", "input", "receipt_info", map[string]any{"type": "object"}},
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			k, err := CacheKey(v.prompt, v.input, v.schemaName, v.schema)
			if err != nil {
				t.Fatalf("CacheKey: %v", err)
			}
			if k == base {
				t.Fatalf("expected a different cache key for %s", v.name)
			}
		})
	}
}

func completionHandler(calls *atomic.Int64, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestTextToJSONCacheShortCircuit(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(completionHandler(&calls, `{"restaurant":"Blue Diner","total":42.5}`))
	defer srv.Close()

	store := cache.NewMemoryStore()
	client := NewClient(Config{APIKey: "test", BaseURL: srv.URL}, store, nil)

	first, err := client.TextToJSON(context.Background(), "prompt", "some receipt text", "receipt_info", testSchema())
	if err != nil {
		t.Fatalf("first TextToJSON: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls.Load())
	}

	second, err := client.TextToJSON(context.Background(), "prompt", "some receipt text", "receipt_info", testSchema())
	if err != nil {
		t.Fatalf("second TextToJSON: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("cache hit must not call upstream; calls=%d", calls.Load())
	}
	if string(first) != string(second) {
		t.Fatalf("cached result differs: %s vs %s", first, second)
	}

	// Different input text is a different key and a fresh upstream call.
	if _, err := client.TextToJSON(context.Background(), "prompt", "another receipt", "receipt_info", testSchema()); err != nil {
		t.Fatalf("third TextToJSON: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 upstream calls after distinct input, got %d", calls.Load())
	}
}

func TestTextToJSONSchemaViolationIsFatal(t *testing.T) {
	var calls atomic.Int64
	// "total" missing: violates the declared schema.
	srv := httptest.NewServer(completionHandler(&calls, `{"restaurant":"Blue Diner"}`))
	defer srv.Close()

	store := cache.NewMemoryStore()
	client := NewClient(Config{APIKey: "test", BaseURL: srv.URL}, store, nil)

	_, err := client.TextToJSON(context.Background(), "prompt", "text", "receipt_info", testSchema())
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if store.Len() != 0 {
		t.Fatalf("invalid output must not be cached; entries=%d", store.Len())
	}
}

func TestTextToJSONUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: srv.URL}, cache.NewMemoryStore(), nil)
	_, err := client.TextToJSON(context.Background(), "p", "i", "s", testSchema())
	if err == nil {
		t.Fatal("expected upstream error to propagate")
	}
	if want := fmt.Sprintf("status %d", http.StatusTooManyRequests); !strings.Contains(err.Error(), want) {
		t.Fatalf("error should carry upstream status, got: %v", err)
	}
}
