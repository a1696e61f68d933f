// Package genai wraps the structured-generation service: text in, JSON
// strictly conforming to a declared schema out, with a content-addressed
// result cache in front of the upstream call.
package genai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tabmate/outings-tracker/internal/cache"
)

// Config for the generation client.
type Config struct {
	APIKey  string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL string        // default https://api.openai.com/v1
	Model   string        // e.g. "gpt-4o-mini"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	store      cache.Store
	validators *validatorCache
	logger     *slog.Logger
}

func NewClient(cfg Config, store cache.Store, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		store:      store,
		validators: newValidatorCache(),
		logger:     logger,
	}
}

// CacheKey digests the canonical JSON serialization of the four inputs
// that extraction is a pure function of. encoding/json writes map keys in
// sorted order at every level, so key ordering inside the schema cannot
// change the digest. The model identifier is not part of the key, so
// cached results survive model upgrades.
func CacheKey(prompt, input, schemaName string, schema map[string]any) (string, error) {
	payload, err := json.Marshal(struct {
		Prompt     string         `json:"prompt"`
		Input      string         `json:"input"`
		SchemaName string         `json:"schema_name"`
		Schema     map[string]any `json:"schema"`
	}{
		Prompt:     prompt,
		Input:      input,
		SchemaName: schemaName,
		Schema:     schema,
	})
	if err != nil {
		return "", fmt.Errorf("marshal cache key payload: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// TextToJSON returns JSON conforming exactly to schema for the given
// prompt and input. On a cache hit the upstream service is not invoked.
// A response that fails local schema validation is an extraction failure;
// nothing is cached and no repair is attempted.
func (c *Client) TextToJSON(ctx context.Context, prompt, input, schemaName string, schema map[string]any) ([]byte, error) {
	key, err := CacheKey(prompt, input, schemaName, schema)
	if err != nil {
		return nil, err
	}

	if cached, ok, err := c.store.Get(key); err != nil {
		return nil, err
	} else if ok {
		c.logger.Info("genai.extract.cache_hit", "cache_key", key)
		return cached, nil
	}

	start := time.Now()
	c.logger.Info("genai.extract.start",
		"cache_key", key,
		"model", c.cfg.Model,
		"input_len", len(input),
		"schema", schemaName,
	)

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]any{
			{"role": "system", "content": prompt},
			{"role": "user", "content": input},
		},
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   schemaName,
				"schema": schema,
				"strict": true,
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("genai.extract.http_error",
			"cache_key", key, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := c.validators.validate(schemaName, schema, content); err != nil {
		c.logger.Error("genai.extract.schema_validation_failed",
			"cache_key", key, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if err := c.store.Put(key, content); err != nil {
		return nil, err
	}

	c.logger.Info("genai.extract.ok",
		"cache_key", key,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("genai.http.response_body_close_error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion status %d: %s", resp.StatusCode, raw)
	}
	return raw, nil
}
