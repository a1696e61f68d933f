package receipt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"

	"github.com/tabmate/outings-tracker/internal/cache"
	"github.com/tabmate/outings-tracker/internal/genai"
	"github.com/tabmate/outings-tracker/internal/vision"
)

func TestHashImageBytesDeterministic(t *testing.T) {
	a := HashImageBytes([]byte("same bytes"))
	b := HashImageBytes([]byte("same bytes"))
	if a != b {
		t.Fatalf("identical bytes must hash identically: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars from a 256-bit digest, got %d", len(a))
	}
	if c := HashImageBytes([]byte("other bytes")); c == a {
		t.Fatal("different bytes produced the same hash")
	}
}

func TestParseOpened(t *testing.T) {
	t.Run("rfc3339 with offset drops the zone", func(t *testing.T) {
		got := ParseOpened("2025-04-01T19:07:34+00:00")
		if got == nil {
			t.Fatal("expected a parsed timestamp")
		}
		want, _ := time.Parse(time.RFC3339, "2025-04-01T19:07:34+00:00")
		want = want.In(time.Local)
		if got.Year() != want.Year() || got.Month() != want.Month() ||
			got.Day() != want.Day() || got.Hour() != want.Hour() ||
			got.Minute() != want.Minute() || got.Second() != want.Second() {
			t.Fatalf("expected local wall clock %v, got %v", want, got)
		}
		if got.Location() != time.Local {
			t.Fatalf("expected local (naive) location, got %v", got.Location())
		}
	})

	t.Run("zoneless formats parse as-is", func(t *testing.T) {
		got := ParseOpened("2025-04-01 19:07:34")
		if got == nil {
			t.Fatal("expected a parsed timestamp")
		}
		if got.Hour() != 19 || got.Minute() != 7 {
			t.Fatalf("wall clock mangled: %v", got)
		}
	})

	t.Run("garbage yields nil without error", func(t *testing.T) {
		if got := ParseOpened("not-a-date"); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
		if got := ParseOpened(""); got != nil {
			t.Fatalf("expected nil for empty string, got %v", got)
		}
	})
}

type countingAnnotator struct {
	calls atomic.Int64
	resp  *visionpb.AnnotateImageResponse
}

func (f *countingAnnotator) AnnotateImage(_ context.Context, _ *visionpb.AnnotateImageRequest, _ ...gax.CallOption) (*visionpb.AnnotateImageResponse, error) {
	f.calls.Add(1)
	return f.resp, nil
}

type recordingUploader struct {
	uploads []string
}

func (u *recordingUploader) UploadImageBytes(_ context.Context, bucket, objectName string, _ []byte, _ string) error {
	u.uploads = append(u.uploads, bucket+"/"+objectName)
	return nil
}

func box(text string, x, y int32) *visionpb.EntityAnnotation {
	return &visionpb.EntityAnnotation{
		Description: text,
		BoundingPoly: &visionpb.BoundingPoly{
			Vertices: []*visionpb.Vertex{{X: x, Y: y}, {X: x + 20, Y: y + 8}},
		},
	}
}

func extractedReceiptJSON() string {
	rec := Receipt{
		Restaurant:  "Blue Diner",
		Address:     "12 Main St",
		Opened:      "2025-04-01T19:07:34+00:00",
		OrderNumber: "118",
		OrderType:   "dine-in",
		Table:       "4",
		Server:      "Ada",
		Items: []OrderItem{
			{Name: "Burger", Price: 9.99, Quantity: 1},
		},
		Subtotal:  9.99,
		SalesTax:  0.85,
		Total:     10.84,
		Payment:   PaymentInfo{Method: "card", AmountPaid: 13.0, Tip: 2.16},
		Copy:      "customer",
		OtherFees: []OtherFee{},
	}
	b, _ := json.Marshal(rec)
	return string(b)
}

func TestPipelineIdempotentAcrossRuns(t *testing.T) {
	annotator := &countingAnnotator{
		resp: &visionpb.AnnotateImageResponse{
			TextAnnotations: []*visionpb.EntityAnnotation{
				{Description: "Blue Diner\nBurger 9.99"},
				box("Blue", 0, 0), box("Diner", 60, 2),
				box("Burger", 0, 40), box("9.99", 120, 41),
			},
		},
	}
	ocr := vision.NewWithAnnotator(annotator, cache.NewMemoryStore(), nil)

	var llmCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		llmCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": extractedReceiptJSON()}},
			},
		})
	}))
	defer srv.Close()
	llm := genai.NewClient(genai.Config{APIKey: "test", BaseURL: srv.URL}, cache.NewMemoryStore(), nil)

	uploader := &recordingUploader{}
	extractor := NewExtractor(ocr, llm, uploader, "receipts", 10, nil)

	image := []byte("fake image bytes")
	first, err := extractor.Run(context.Background(), image, "dinner.jpg")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.RawText != "Blue Diner\nBurger 9.99" {
		t.Fatalf("unexpected reconstructed text: %q", first.RawText)
	}
	if first.Key != first.ImageHash+".jpg" || first.Bucket != "receipts" {
		t.Fatalf("unexpected storage location %s/%s", first.Bucket, first.Key)
	}
	if first.Receipt.Restaurant != "Blue Diner" || first.Receipt.Total != 10.84 {
		t.Fatalf("unexpected parsed receipt: %+v", first.Receipt)
	}
	if first.Receipt.Opened == nil {
		t.Fatal("opened should have parsed")
	}

	second, err := extractor.Run(context.Background(), image, "dinner.jpg")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if annotator.calls.Load() != 1 {
		t.Fatalf("second run must hit the OCR cache; upstream calls=%d", annotator.calls.Load())
	}
	if llmCalls.Load() != 1 {
		t.Fatalf("second run must hit the extraction cache; upstream calls=%d", llmCalls.Load())
	}
	if second.ImageHash != first.ImageHash || second.RawText != first.RawText {
		t.Fatal("re-running on identical bytes must reproduce the same result")
	}
	if len(uploader.uploads) != 2 || uploader.uploads[0] != uploader.uploads[1] {
		t.Fatalf("identical images must map to the identical object name: %v", uploader.uploads)
	}
}

func TestPipelineRejectsBadInput(t *testing.T) {
	extractor := NewExtractor(nil, nil, nil, "", 0, nil)
	if _, err := extractor.Run(context.Background(), nil, "x.jpg"); err == nil {
		t.Fatal("empty payload must be rejected before any external call")
	}
	if _, err := extractor.Run(context.Background(), []byte("data"), "notes.txt"); err == nil {
		t.Fatal("non-image extension must be rejected before any external call")
	}
}

func TestToModelShapeViolationIsFatal(t *testing.T) {
	extractor := NewExtractor(nil, nil, nil, "", 0, nil)
	if _, err := extractor.ToModel([]byte("not json")); err == nil {
		t.Fatal("malformed extraction output must fail the pipeline")
	}
}

func TestToModelNullsUnparseableOpened(t *testing.T) {
	extractor := NewExtractor(nil, nil, nil, "", 0, nil)
	var rec Receipt
	_ = json.Unmarshal([]byte(extractedReceiptJSON()), &rec)
	rec.Opened = "sometime after dark"
	raw, _ := json.Marshal(rec)

	parsed, err := extractor.ToModel(raw)
	if err != nil {
		t.Fatalf("unparseable opened must not fail the pipeline: %v", err)
	}
	if parsed.Opened != nil {
		t.Fatalf("expected nil opened, got %v", parsed.Opened)
	}
	if parsed.Restaurant != "Blue Diner" {
		t.Fatal("rest of the record must survive the nulled field")
	}
}
