package vision

import (
	"context"
	"errors"
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"

	"github.com/tabmate/outings-tracker/internal/cache"
)

type fakeAnnotator struct {
	calls int
	resp  *visionpb.AnnotateImageResponse
	err   error
}

func (f *fakeAnnotator) AnnotateImage(_ context.Context, _ *visionpb.AnnotateImageRequest, _ ...gax.CallOption) (*visionpb.AnnotateImageResponse, error) {
	f.calls++
	return f.resp, f.err
}

func sampleResponse() *visionpb.AnnotateImageResponse {
	return &visionpb.AnnotateImageResponse{
		TextAnnotations: []*visionpb.EntityAnnotation{
			{Description: "Burger 9.99"},
			{
				Description: "Burger",
				BoundingPoly: &visionpb.BoundingPoly{
					Vertices: []*visionpb.Vertex{{X: 0, Y: 0}, {X: 40, Y: 10}},
				},
			},
			{
				Description: "9.99",
				BoundingPoly: &visionpb.BoundingPoly{
					Vertices: []*visionpb.Vertex{{X: 100, Y: 0}, {X: 140, Y: 10}},
				},
			},
		},
	}
}

func TestDetectTextCachesByImageHash(t *testing.T) {
	fake := &fakeAnnotator{resp: sampleResponse()}
	store := cache.NewMemoryStore()
	client := NewWithAnnotator(fake, store, nil)

	const hash = "deadbeef"
	first, err := client.DetectText(context.Background(), []byte("img"), hash)
	if err != nil {
		t.Fatalf("first DetectText: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 annotations, got %d", len(first))
	}
	if fake.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", fake.calls)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 cache entry, got %d", store.Len())
	}

	second, err := client.DetectText(context.Background(), []byte("img"), hash)
	if err != nil {
		t.Fatalf("second DetectText: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("cache hit must not call upstream; calls=%d", fake.calls)
	}
	if len(second) != len(first) || second[0].GetDescription() != first[0].GetDescription() {
		t.Fatalf("cached annotations differ: %v vs %v", second, first)
	}
}

type fakeBatchClient struct {
	calls  int
	lastN  int
	resp   *visionpb.BatchAnnotateImagesResponse
	err    error
	closed bool
}

func (f *fakeBatchClient) BatchAnnotateImages(_ context.Context, req *visionpb.BatchAnnotateImagesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error) {
	f.calls++
	f.lastN = len(req.GetRequests())
	return f.resp, f.err
}

func (f *fakeBatchClient) Close() error {
	f.closed = true
	return nil
}

func TestBatchAnnotatorSingleImage(t *testing.T) {
	fake := &fakeBatchClient{
		resp: &visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{sampleResponse()},
		},
	}
	adapter := batchAnnotator{client: fake}

	resp, err := adapter.AnnotateImage(context.Background(), &visionpb.AnnotateImageRequest{
		Image: &visionpb.Image{Content: []byte("img")},
		Features: []*visionpb.Feature{
			{Type: visionpb.Feature_TEXT_DETECTION},
		},
	})
	if err != nil {
		t.Fatalf("AnnotateImage: %v", err)
	}
	if fake.calls != 1 || fake.lastN != 1 {
		t.Fatalf("expected a single one-element batch; calls=%d size=%d", fake.calls, fake.lastN)
	}
	if got := len(resp.GetTextAnnotations()); got != 3 {
		t.Fatalf("expected the first batch response, got %d annotations", got)
	}
}

func TestBatchAnnotatorEmptyResponse(t *testing.T) {
	adapter := batchAnnotator{client: &fakeBatchClient{resp: &visionpb.BatchAnnotateImagesResponse{}}}
	if _, err := adapter.AnnotateImage(context.Background(), &visionpb.AnnotateImageRequest{}); err == nil {
		t.Fatal("expected error for empty batch response")
	}
}

func TestBatchAnnotatorClose(t *testing.T) {
	fake := &fakeBatchClient{resp: &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{}},
	}}
	client := NewWithAnnotator(batchAnnotator{client: fake}, cache.NewMemoryStore(), nil)
	if err := client.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fake.closed {
		t.Fatal("Close must reach the underlying client")
	}
}

func TestDetectTextNoText(t *testing.T) {
	fake := &fakeAnnotator{resp: &visionpb.AnnotateImageResponse{}}
	client := NewWithAnnotator(fake, cache.NewMemoryStore(), nil)

	anns, err := client.DetectText(context.Background(), []byte("blank"), "cafe0")
	if err != nil {
		t.Fatalf("DetectText: %v", err)
	}
	if len(anns) != 0 {
		t.Fatalf("expected no annotations, got %d", len(anns))
	}
}

func TestDetectTextUpstreamFailure(t *testing.T) {
	fake := &fakeAnnotator{err: errors.New("boom")}
	store := cache.NewMemoryStore()
	client := NewWithAnnotator(fake, store, nil)

	if _, err := client.DetectText(context.Background(), []byte("img"), "ffff"); err == nil {
		t.Fatal("expected upstream error to propagate")
	}
	if store.Len() != 0 {
		t.Fatalf("failed call must not be cached; entries=%d", store.Len())
	}
}
