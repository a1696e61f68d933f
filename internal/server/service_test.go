package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tabmate/outings-tracker/gen/ent"
	outingsv1 "github.com/tabmate/outings-tracker/gen/proto/outings/v1"
	"github.com/tabmate/outings-tracker/internal/common"
	"github.com/tabmate/outings-tracker/internal/receipt"
	"github.com/tabmate/outings-tracker/internal/repository"
)

type fakeOutings struct {
	existing map[uuid.UUID]bool
}

func (f *fakeOutings) Create(ctx context.Context, name string) (*ent.Outing, error) {
	id := uuid.New()
	f.existing[id] = true
	return &ent.Outing{ID: id, Name: name, CreatedAt: time.Now()}, nil
}

func (f *fakeOutings) List(ctx context.Context) ([]repository.OutingSummary, error) {
	var out []repository.OutingSummary
	for id := range f.existing {
		out = append(out, repository.OutingSummary{ID: id})
	}
	return out, nil
}

func (f *fakeOutings) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func (f *fakeOutings) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if !f.existing[id] {
		return common.ErrNotFound
	}
	delete(f.existing, id)
	return nil
}

type fakeReceipts struct {
	byHash map[string]*repository.ReceiptRecord
	saves  int
}

func (f *fakeReceipts) GetByImageHash(ctx context.Context, hash string) (*repository.ReceiptRecord, error) {
	return f.byHash[hash], nil
}

func (f *fakeReceipts) GetByID(ctx context.Context, id uuid.UUID) (*repository.ReceiptRecord, error) {
	for _, rec := range f.byHash {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeReceipts) SaveExtraction(ctx context.Context, outingID uuid.UUID, fileName string, res receipt.Result) (*repository.ReceiptRecord, error) {
	f.saves++
	rec := &repository.ReceiptRecord{
		ID:         uuid.New(),
		OutingID:   outingID,
		Bucket:     res.Bucket,
		Key:        res.Key,
		FileName:   fileName,
		ImageHash:  res.ImageHash,
		RawText:    res.RawText,
		Restaurant: res.Receipt.Restaurant,
		Total:      res.Receipt.Total,
		CreatedAt:  time.Now(),
	}
	f.byHash[res.ImageHash] = rec
	return rec, nil
}

func (f *fakeReceipts) ListForOuting(ctx context.Context, outingID uuid.UUID) ([]repository.OutingReceiptSummary, error) {
	var out []repository.OutingReceiptSummary
	for _, rec := range f.byHash {
		if rec.OutingID == outingID {
			out = append(out, repository.OutingReceiptSummary{
				ID:         rec.ID,
				Restaurant: rec.Restaurant,
				Total:      rec.Total,
			})
		}
	}
	return out, nil
}

func (f *fakeReceipts) ListRecordsForOuting(ctx context.Context, outingID uuid.UUID) ([]*repository.ReceiptRecord, error) {
	var out []*repository.ReceiptRecord
	for _, rec := range f.byHash {
		if rec.OutingID == outingID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakePipeline struct {
	runs int
}

func (f *fakePipeline) Run(ctx context.Context, imageBytes []byte, fileName string) (receipt.Result, error) {
	f.runs++
	hash := receipt.HashImageBytes(imageBytes)
	return receipt.Result{
		Receipt: receipt.ParsedReceipt{
			Receipt: receipt.Receipt{Restaurant: "Blue Diner", Total: 12.45},
		},
		RawText:   "Blue Diner\nBurger 9.99",
		Bucket:    "receipts",
		Key:       hash + ".jpg",
		ImageHash: hash,
	}, nil
}

type fakeStorage struct {
	lastTTL time.Duration
}

func (f *fakeStorage) UploadImageBytes(ctx context.Context, bucket, objectName string, data []byte, contentType string) error {
	return nil
}

func (f *fakeStorage) PresignedURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error) {
	f.lastTTL = ttl
	return "https://storage.example/" + bucket + "/" + objectName, nil
}

func newTestService(outingID uuid.UUID) (*OutingsService, *fakeReceipts, *fakePipeline) {
	receipts := &fakeReceipts{byHash: map[string]*repository.ReceiptRecord{}}
	pipeline := &fakePipeline{}
	svc := NewOutingsService(
		&fakeOutings{existing: map[uuid.UUID]bool{outingID: true}},
		receipts,
		pipeline,
		&fakeStorage{},
		nil,
		30*time.Minute,
		slog.Default(),
	)
	return svc, receipts, pipeline
}

func TestUploadReceiptDedup(t *testing.T) {
	outingID := uuid.New()
	svc, receipts, pipeline := newTestService(outingID)
	ctx := context.Background()

	req := &outingsv1.UploadReceiptRequest{
		OutingId: outingID.String(),
		FileName: "dinner.jpg",
		Content:  []byte("fake-image-bytes"),
	}

	first, err := svc.UploadReceipt(ctx, req)
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	if first.GetExisting() {
		t.Fatal("first upload reported existing=true")
	}
	if pipeline.runs != 1 {
		t.Fatalf("pipeline runs after first upload = %d, want 1", pipeline.runs)
	}

	second, err := svc.UploadReceipt(ctx, req)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if !second.GetExisting() {
		t.Fatal("second upload of identical bytes should report existing=true")
	}
	if pipeline.runs != 1 {
		t.Fatalf("pipeline runs after duplicate upload = %d, want 1", pipeline.runs)
	}
	if receipts.saves != 1 {
		t.Fatalf("persisted saves = %d, want 1", receipts.saves)
	}
	if first.GetReceipt().GetId() != second.GetReceipt().GetId() {
		t.Fatal("duplicate upload returned a different receipt id")
	}
}

func TestUploadReceiptValidation(t *testing.T) {
	outingID := uuid.New()
	svc, _, _ := newTestService(outingID)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *outingsv1.UploadReceiptRequest
	}{
		{"missing outing id", &outingsv1.UploadReceiptRequest{FileName: "a.jpg", Content: []byte("x")}},
		{"bad outing id", &outingsv1.UploadReceiptRequest{OutingId: "nope", FileName: "a.jpg", Content: []byte("x")}},
		{"missing file name", &outingsv1.UploadReceiptRequest{OutingId: outingID.String(), Content: []byte("x")}},
		{"empty content", &outingsv1.UploadReceiptRequest{OutingId: outingID.String(), FileName: "a.jpg"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.UploadReceipt(ctx, tc.req); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestUploadReceiptUnknownOuting(t *testing.T) {
	svc, _, pipeline := newTestService(uuid.New())
	ctx := context.Background()

	_, err := svc.UploadReceipt(ctx, &outingsv1.UploadReceiptRequest{
		OutingId: uuid.NewString(),
		FileName: "a.jpg",
		Content:  []byte("x"),
	})
	if err == nil {
		t.Fatal("expected not-found error for unknown outing")
	}
	if pipeline.runs != 0 {
		t.Fatal("pipeline must not run for unknown outing")
	}
}

func TestCreateOutingRequiresName(t *testing.T) {
	svc, _, _ := newTestService(uuid.New())
	if _, err := svc.CreateOuting(context.Background(), &outingsv1.CreateOutingRequest{Name: "  "}); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestDeleteOutingNotFound(t *testing.T) {
	svc, _, _ := newTestService(uuid.New())
	_, err := svc.DeleteOuting(context.Background(), &outingsv1.DeleteOutingRequest{OutingId: uuid.NewString()})
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestGetReceiptPresignedURL(t *testing.T) {
	outingID := uuid.New()
	svc, receipts, _ := newTestService(outingID)
	ctx := context.Background()

	rec := &repository.ReceiptRecord{
		ID:        uuid.New(),
		OutingID:  outingID,
		Bucket:    "receipts",
		Key:       "abc.jpg",
		ImageHash: "abc",
	}
	receipts.byHash["abc"] = rec

	store := svc.storage.(*fakeStorage)

	resp, err := svc.GetReceipt(ctx, &outingsv1.GetReceiptRequest{
		ReceiptId:     rec.ID.String(),
		UrlTtlSeconds: 600,
	})
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if resp.GetImageUrl() == "" {
		t.Fatal("expected a presigned url")
	}
	if store.lastTTL != 600*time.Second {
		t.Fatalf("request ttl not honored: %v", store.lastTTL)
	}

	defaulted, err := svc.GetReceipt(ctx, &outingsv1.GetReceiptRequest{ReceiptId: rec.ID.String()})
	if err != nil {
		t.Fatalf("get receipt without ttl: %v", err)
	}
	if defaulted.GetImageUrl() == "" {
		t.Fatal("expected a presigned url with the server default ttl")
	}
	if store.lastTTL != 30*time.Minute {
		t.Fatalf("server default ttl not applied: %v", store.lastTTL)
	}
}
