// Package vision wraps Google Cloud Vision text detection behind a
// content-addressed result cache keyed by image hash.
package vision

import (
	"context"
	"fmt"
	"log/slog"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/tabmate/outings-tracker/internal/cache"
)

// Annotator is the slice of the Cloud Vision client the OCR wrapper
// depends on; *visionapi.ImageAnnotatorClient satisfies it.
type Annotator interface {
	AnnotateImage(ctx context.Context, req *visionpb.AnnotateImageRequest, opts ...gax.CallOption) (*visionpb.AnnotateImageResponse, error)
}

// Client performs text detection with a persistent cache in front of the
// upstream service. Identical images (same hash) never re-invoke it.
type Client struct {
	annotator Annotator
	store     cache.Store
	logger    *slog.Logger
}

// New dials the Cloud Vision API. Credentials come from the ambient
// GOOGLE_APPLICATION_CREDENTIALS environment.
func New(ctx context.Context, store cache.Store, logger *slog.Logger) (*Client, error) {
	client, err := visionapi.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create vision client: %w", err)
	}
	return NewWithAnnotator(batchAnnotator{client: client}, store, logger), nil
}

// batchClient is the slice of the v2 API client the adapter needs; the
// v2 surface only exposes batch calls.
type batchClient interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

// batchAnnotator adapts the batch-only v2 client to the single-image
// Annotator surface by sending one-element batches.
type batchAnnotator struct {
	client batchClient
}

func (b batchAnnotator) AnnotateImage(ctx context.Context, req *visionpb.AnnotateImageRequest, opts ...gax.CallOption) (*visionpb.AnnotateImageResponse, error) {
	resp, err := b.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{req},
	}, opts...)
	if err != nil {
		return nil, err
	}
	responses := resp.GetResponses()
	if len(responses) == 0 {
		return nil, fmt.Errorf("empty batch annotate response")
	}
	return responses[0], nil
}

func (b batchAnnotator) Close() error { return b.client.Close() }

// NewWithAnnotator wires an explicit annotator; tests inject fakes here.
func NewWithAnnotator(annotator Annotator, store cache.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{annotator: annotator, store: store, logger: logger}
}

// Close releases the upstream connection when the annotator owns one.
func (c *Client) Close() error {
	if closer, ok := c.annotator.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// DetectText returns the raw text annotations for an image: the first is
// the whole-image transcription, the rest are positioned words. An image
// with no detectable text yields an empty slice.
//
// Results are cached by imageHash; on a hit the upstream service is not
// called. Upstream failures propagate without retry.
func (c *Client) DetectText(ctx context.Context, content []byte, imageHash string) ([]*visionpb.EntityAnnotation, error) {
	if cached, ok, err := c.store.Get(imageHash); err != nil {
		return nil, err
	} else if ok {
		var resp visionpb.AnnotateImageResponse
		if err := protojson.Unmarshal(cached, &resp); err != nil {
			return nil, fmt.Errorf("decode cached vision response %s: %w", imageHash, err)
		}
		c.logger.Info("vision.detect.cache_hit", "image_hash", imageHash)
		return resp.GetTextAnnotations(), nil
	}

	c.logger.Info("vision.detect.call", "image_hash", imageHash, "bytes", len(content))
	resp, err := c.annotator.AnnotateImage(ctx, &visionpb.AnnotateImageRequest{
		Image: &visionpb.Image{Content: content},
		Features: []*visionpb.Feature{
			{Type: visionpb.Feature_TEXT_DETECTION},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("detect text: %w", err)
	}
	if resp.GetError() != nil {
		return nil, fmt.Errorf("detect text: upstream error: %s", resp.GetError().GetMessage())
	}

	raw, err := protojson.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode vision response: %w", err)
	}
	if err := c.store.Put(imageHash, raw); err != nil {
		return nil, err
	}

	return resp.GetTextAnnotations(), nil
}
