// Package receipt turns raw receipt image bytes into a typed, normalized
// record: content hash → object storage upload → cached text detection →
// line reconstruction → cached schema-constrained extraction.
package receipt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/tabmate/outings-tracker/constants"
	"github.com/tabmate/outings-tracker/internal/layout"
)

// Prompt is the fixed system prompt for structured extraction. It is part
// of the extraction cache key, so changing it invalidates prior entries.
const Prompt = "Convert the given text of a receipt into a structured output format"

// TextDetector yields positioned text annotations for an image; the first
// annotation is the whole-image transcription.
type TextDetector interface {
	DetectText(ctx context.Context, content []byte, imageHash string) ([]*visionpb.EntityAnnotation, error)
}

// StructuredGenerator produces JSON strictly conforming to a schema.
type StructuredGenerator interface {
	TextToJSON(ctx context.Context, prompt, input, schemaName string, schema map[string]any) ([]byte, error)
}

// ObjectUploader stores the original image bytes.
type ObjectUploader interface {
	UploadImageBytes(ctx context.Context, bucket, objectName string, data []byte, contentType string) error
}

// Extractor is one pipeline instance. Instances share nothing mutable
// beyond the caches inside the injected clients, so concurrent uploads
// can each run their own.
type Extractor struct {
	vision     TextDetector
	genai      StructuredGenerator
	storage    ObjectUploader
	bucket     string
	yThreshold float64
	logger     *slog.Logger
}

// Result is everything a caller needs to persist one extraction.
type Result struct {
	Receipt   ParsedReceipt
	RawText   string
	Bucket    string
	Key       string
	ImageHash string
}

func NewExtractor(vision TextDetector, genai StructuredGenerator, storage ObjectUploader, bucket string, yThreshold float64, logger *slog.Logger) *Extractor {
	if bucket == "" {
		bucket = "receipts"
	}
	if yThreshold <= 0 {
		yThreshold = layout.DefaultYThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		vision:     vision,
		genai:      genai,
		storage:    storage,
		bucket:     bucket,
		yThreshold: yThreshold,
		logger:     logger,
	}
}

// HashImageBytes computes the content address of an image: identical
// bytes always produce the identical hex digest.
func HashImageBytes(imageBytes []byte) string {
	sum := sha256.Sum256(imageBytes)
	return hex.EncodeToString(sum[:])
}

// Run executes the full pipeline for one image. It is idempotent per
// distinct image: a re-run reproduces the same hash, object name, cached
// OCR result and cached extraction, short-circuiting both upstream calls.
// Run does not check for a previously persisted record; that dedup is the
// caller's responsibility.
func (e *Extractor) Run(ctx context.Context, imageBytes []byte, fileName string) (Result, error) {
	if len(imageBytes) == 0 {
		return Result{}, fmt.Errorf("empty image payload")
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if !constants.IsAllowedExt(ext) {
		return Result{}, fmt.Errorf("unsupported image extension: %q", ext)
	}

	imageHash := HashImageBytes(imageBytes)
	key := imageHash + "." + ext

	e.logger.Info("receipt.extract.start",
		"image_hash", imageHash, "file_name", fileName, "bytes", len(imageBytes))

	// Object names derive from the content hash, so re-uploading an
	// identical image overwrites the same object.
	if err := e.storage.UploadImageBytes(ctx, e.bucket, key, imageBytes, constants.ContentTypeForExt(ext)); err != nil {
		return Result{}, fmt.Errorf("upload image: %w", err)
	}

	annotations, err := e.vision.DetectText(ctx, imageBytes, imageHash)
	if err != nil {
		return Result{}, fmt.Errorf("detect text: %w", err)
	}
	lines := layout.GroupAnnotationsByLines(annotations, e.yThreshold)
	rawText := strings.Join(lines, "\n")

	out, err := e.genai.TextToJSON(ctx, Prompt, rawText, SchemaName, Schema())
	if err != nil {
		return Result{}, fmt.Errorf("structured extraction: %w", err)
	}

	parsed, err := e.ToModel(out)
	if err != nil {
		return Result{}, err
	}

	e.logger.Info("receipt.extract.ok",
		"image_hash", imageHash,
		"restaurant", parsed.Restaurant,
		"lines", len(lines),
		"items", len(parsed.Items),
	)
	return Result{
		Receipt:   parsed,
		RawText:   rawText,
		Bucket:    e.bucket,
		Key:       key,
		ImageHash: imageHash,
	}, nil
}

// ToModel coerces the extractor's JSON output into the typed record. A
// shape violation here is fatal; an unparseable opened timestamp is not.
func (e *Extractor) ToModel(raw []byte) (ParsedReceipt, error) {
	var rec Receipt
	if err := json.Unmarshal(raw, &rec); err != nil {
		return ParsedReceipt{}, fmt.Errorf("decode extracted receipt: %w", err)
	}

	opened := ParseOpened(rec.Opened)
	if opened == nil && rec.Opened != "" {
		e.logger.Warn("receipt.extract.unparseable_opened", "opened", rec.Opened)
	}
	return ParsedReceipt{Receipt: rec, Opened: opened}, nil
}

// openedLayouts are tried in order. Layouts carrying a zone come first so
// offset information is not silently discarded by a laxer match.
var openedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 3:04 PM",
	"01/02/2006 15:04",
	"01/02/2006 3:04 PM",
	"Jan 2, 2006 3:04 PM",
	"2006-01-02",
}

// ParseOpened permissively parses a receipt's opened timestamp. Values
// carrying a timezone are converted to local time and the zone dropped;
// anything unparseable yields nil rather than an error.
func ParseOpened(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, l := range openedLayouts {
		t, err := time.Parse(l, s)
		if err != nil {
			continue
		}
		if l == time.RFC3339 {
			t = t.In(time.Local)
		}
		naive := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
		return &naive
	}
	return nil
}
