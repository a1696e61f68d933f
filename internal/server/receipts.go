package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	outingsv1 "github.com/tabmate/outings-tracker/gen/proto/outings/v1"
	"github.com/tabmate/outings-tracker/internal/common"
	"github.com/tabmate/outings-tracker/internal/receipt"
	"github.com/tabmate/outings-tracker/internal/repository"
)

// UploadReceipt implements the full intake path: dedup by content hash,
// then the extraction pipeline, then persistence. A hash hit returns the
// stored record without touching OCR, generation or object storage.
func (s *OutingsService) UploadReceipt(ctx context.Context, req *outingsv1.UploadReceiptRequest) (*outingsv1.UploadReceiptResponse, error) {
	outingID, err := parseOutingID(req.GetOutingId())
	if err != nil {
		return nil, err
	}
	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		return nil, common.InvalidArgumentError("file_name is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	if exists, err := s.outings.Exists(ctx, outingID); err != nil {
		s.logger.Error("outing lookup failed", "outing_id", outingID, "error", err)
		return nil, common.InternalError("outing lookup failed")
	} else if !exists {
		return nil, common.NotFoundError("outing not found")
	}

	hash := receipt.HashImageBytes(content)
	existing, err := s.receipts.GetByImageHash(ctx, hash)
	if err != nil {
		s.logger.Error("dedup lookup failed", "image_hash", hash, "error", err)
		return nil, common.InternalError("dedup lookup failed")
	}
	if existing != nil {
		s.logger.Info("upload.dedup_hit", "image_hash", hash, "receipt_id", existing.ID)
		return &outingsv1.UploadReceiptResponse{
			Receipt:  toProtoReceipt(existing),
			Existing: true,
		}, nil
	}

	s.logger.Info("upload.start", "outing_id", outingID, "file_name", fileName, "image_hash", hash)
	res, err := s.pipeline.Run(ctx, content, fileName)
	if err != nil {
		s.logger.Error("upload.pipeline_failed", "image_hash", hash, "error", err)
		return nil, common.InvalidArgumentErrorf("extract receipt: %v", err)
	}

	rec, err := s.receipts.SaveExtraction(ctx, outingID, fileName, res)
	if err != nil {
		s.logger.Error("upload.persist_failed", "image_hash", hash, "error", err)
		return nil, common.InternalError("persist receipt failed")
	}

	return &outingsv1.UploadReceiptResponse{
		Receipt:  toProtoReceipt(rec),
		Existing: false,
	}, nil
}

func (s *OutingsService) GetReceipt(ctx context.Context, req *outingsv1.GetReceiptRequest) (*outingsv1.GetReceiptResponse, error) {
	raw := strings.TrimSpace(req.GetReceiptId())
	if raw == "" {
		return nil, common.InvalidArgumentError("receipt_id is required")
	}
	receiptID, err := uuid.Parse(raw)
	if err != nil {
		return nil, common.InvalidArgumentError("receipt_id must be a UUID")
	}

	rec, err := s.receipts.GetByID(ctx, receiptID)
	if err != nil {
		s.logger.Error("get receipt failed", "receipt_id", receiptID, "error", err)
		return nil, common.InternalError("get receipt failed")
	}
	if rec == nil {
		return nil, common.NotFoundError("receipt not found")
	}

	ttl := s.presignTTL
	if secs := req.GetUrlTtlSeconds(); secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	url, err := s.storage.PresignedURL(ctx, rec.Bucket, rec.Key, ttl)
	if err != nil {
		s.logger.Error("presign failed", "receipt_id", receiptID, "key", rec.Key, "error", err)
		return nil, common.InternalError("presign image url failed")
	}

	return &outingsv1.GetReceiptResponse{
		Receipt:  toProtoReceipt(rec),
		ImageUrl: url,
	}, nil
}

func (s *OutingsService) ListReceipts(ctx context.Context, req *outingsv1.ListReceiptsRequest) (*outingsv1.ListReceiptsResponse, error) {
	outingID, err := parseOutingID(req.GetOutingId())
	if err != nil {
		return nil, err
	}

	summaries, err := s.receipts.ListForOuting(ctx, outingID)
	if err != nil {
		s.logger.Error("list receipts failed", "outing_id", outingID, "error", err)
		return nil, common.InternalError("list receipts failed")
	}

	out := make([]*outingsv1.ReceiptSummary, 0, len(summaries))
	for _, r := range summaries {
		out = append(out, &outingsv1.ReceiptSummary{
			Id:         r.ID.String(),
			Restaurant: r.Restaurant,
			ItemCount:  int32(r.ItemCount),
			Total:      r.Total,
		})
	}
	return &outingsv1.ListReceiptsResponse{Receipts: out}, nil
}

func toProtoReceipt(rec *repository.ReceiptRecord) *outingsv1.Receipt {
	items := make([]*outingsv1.OrderItem, len(rec.Items))
	for i, it := range rec.Items {
		items[i] = &outingsv1.OrderItem{Name: it.Name, Price: it.Price, Quantity: int32(it.Quantity)}
	}
	fees := make([]*outingsv1.OtherFee, len(rec.OtherFees))
	for i, f := range rec.OtherFees {
		fees[i] = &outingsv1.OtherFee{Name: f.Name, Price: f.Price}
	}

	opened := ""
	if rec.Opened != nil {
		opened = rec.Opened.Format(time.RFC3339)
	}

	return &outingsv1.Receipt{
		Id:          rec.ID.String(),
		OutingId:    rec.OutingID.String(),
		Restaurant:  rec.Restaurant,
		Address:     rec.Address,
		Opened:      opened,
		OrderNumber: rec.OrderNumber,
		OrderType:   rec.OrderType,
		Table:       rec.Table,
		Server:      rec.Server,
		Items:       items,
		Subtotal:    rec.Subtotal,
		SalesTax:    rec.SalesTax,
		Total:       rec.Total,
		Payment: &outingsv1.PaymentInfo{
			Method:     rec.Payment.Method,
			AmountPaid: rec.Payment.AmountPaid,
			Tip:        rec.Payment.Tip,
		},
		Copy:      rec.Copy,
		OtherFees: fees,
		ImageHash: rec.ImageHash,
		ObjectKey: rec.Key,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339Nano),
	}
}
