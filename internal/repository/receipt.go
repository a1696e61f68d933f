package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tabmate/outings-tracker/gen/ent"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
	"github.com/tabmate/outings-tracker/internal/receipt"
)

// ReceiptRecord is the persisted view of one extracted receipt, joined
// with its image row. The service layer and exporter consume this shape.
type ReceiptRecord struct {
	ID        uuid.UUID
	OutingID  uuid.UUID
	Bucket    string
	Key       string
	FileName  string
	ImageHash string
	RawText   string

	Restaurant  string
	Address     string
	Opened      *time.Time
	OrderNumber string
	OrderType   string
	Table       string
	Server      string
	Items       []receipt.OrderItem
	Subtotal    float64
	SalesTax    float64
	Total       float64
	Payment     receipt.PaymentInfo
	Copy        string
	OtherFees   []receipt.OtherFee
	CreatedAt   time.Time
}

// OutingReceiptSummary is the per-outing receipt listing.
type OutingReceiptSummary struct {
	ID         uuid.UUID
	Restaurant string
	ItemCount  int
	Total      float64
}

type ReceiptRepository interface {
	// GetByImageHash returns the record for a content hash, or nil when
	// no receipt with that hash has been persisted. This is the dedup
	// check callers run before invoking the extraction pipeline.
	GetByImageHash(ctx context.Context, hash string) (*ReceiptRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReceiptRecord, error)
	// SaveExtraction persists one pipeline result (image row, receipt
	// row, items, fees) in a single transaction.
	SaveExtraction(ctx context.Context, outingID uuid.UUID, fileName string, res receipt.Result) (*ReceiptRecord, error)
	ListForOuting(ctx context.Context, outingID uuid.UUID) ([]OutingReceiptSummary, error)
	// ListRecordsForOuting returns the full joined records, in upload
	// order. The exporter consumes this.
	ListRecordsForOuting(ctx context.Context, outingID uuid.UUID) ([]*ReceiptRecord, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{client: client, logger: logger}
}

func (r *receiptRepository) GetByImageHash(ctx context.Context, hash string) (*ReceiptRecord, error) {
	img, err := r.client.ReceiptImage.Query().
		Where(receiptimage.Hash(hash)).
		WithReceipt(func(q *ent.ReceiptQuery) {
			q.WithItems().WithFees()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to query receipt by hash", "hash", hash, "error", err)
		return nil, err
	}
	return toRecord(img), nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*ReceiptRecord, error) {
	rec, err := r.client.Receipt.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	img, err := rec.QueryImage().
		WithReceipt(func(q *ent.ReceiptQuery) {
			q.WithItems().WithFees()
		}).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toRecord(img), nil
}

func (r *receiptRepository) SaveExtraction(ctx context.Context, outingID uuid.UUID, fileName string, res receipt.Result) (*ReceiptRecord, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	rollback := func(err error) (*ReceiptRecord, error) {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		return nil, err
	}

	img, err := tx.ReceiptImage.Create().
		SetOutingID(outingID).
		SetBucket(res.Bucket).
		SetKey(res.Key).
		SetRawText(res.RawText).
		SetFileName(fileName).
		SetHash(res.ImageHash).
		Save(ctx)
	if err != nil {
		return rollback(fmt.Errorf("save receipt image: %w", err))
	}

	rec := res.Receipt
	builder := tx.Receipt.Create().
		SetImage(img).
		SetRestaurant(rec.Restaurant).
		SetAddress(rec.Address).
		SetOrderNumber(rec.OrderNumber).
		SetOrderType(rec.OrderType).
		SetTableNumber(rec.Table).
		SetServer(rec.Server).
		SetSubtotal(rec.Subtotal).
		SetSalesTax(rec.SalesTax).
		SetTotal(rec.Total).
		SetPaymentMethod(rec.Payment.Method).
		SetPaymentAmountPaid(rec.Payment.AmountPaid).
		SetPaymentTip(rec.Payment.Tip).
		SetCopy(rec.Copy)
	if rec.Opened != nil {
		builder = builder.SetOpened(*rec.Opened)
	}
	saved, err := builder.Save(ctx)
	if err != nil {
		return rollback(fmt.Errorf("save receipt: %w", err))
	}

	for _, item := range rec.Items {
		if _, err := tx.OrderItem.Create().
			SetReceipt(saved).
			SetName(item.Name).
			SetPrice(item.Price).
			SetQuantity(item.Quantity).
			Save(ctx); err != nil {
			return rollback(fmt.Errorf("save order item: %w", err))
		}
	}
	for _, fee := range rec.OtherFees {
		if _, err := tx.OtherFee.Create().
			SetReceipt(saved).
			SetName(fee.Name).
			SetPrice(fee.Price).
			Save(ctx); err != nil {
			return rollback(fmt.Errorf("save other fee: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	r.logger.Info("extraction persisted",
		"receipt_id", saved.ID,
		"outing_id", outingID,
		"image_hash", res.ImageHash,
		"items", len(rec.Items),
	)
	return r.GetByImageHash(ctx, res.ImageHash)
}

func (r *receiptRepository) ListForOuting(ctx context.Context, outingID uuid.UUID) ([]OutingReceiptSummary, error) {
	images, err := r.client.ReceiptImage.Query().
		Where(receiptimage.OutingID(outingID)).
		WithReceipt(func(q *ent.ReceiptQuery) {
			q.WithItems()
		}).
		Order(ent.Asc(receiptimage.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts for outing", "outing_id", outingID, "error", err)
		return nil, err
	}

	var result []OutingReceiptSummary
	for _, img := range images {
		rec := img.Edges.Receipt
		if rec == nil {
			continue
		}
		result = append(result, OutingReceiptSummary{
			ID:         rec.ID,
			Restaurant: rec.Restaurant,
			ItemCount:  len(rec.Edges.Items),
			Total:      rec.Total,
		})
	}
	return result, nil
}

func (r *receiptRepository) ListRecordsForOuting(ctx context.Context, outingID uuid.UUID) ([]*ReceiptRecord, error) {
	images, err := r.client.ReceiptImage.Query().
		Where(receiptimage.OutingID(outingID)).
		WithReceipt(func(q *ent.ReceiptQuery) {
			q.WithItems().WithFees()
		}).
		Order(ent.Asc(receiptimage.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*ReceiptRecord, 0, len(images))
	for _, img := range images {
		if rec := toRecord(img); rec != nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func toRecord(img *ent.ReceiptImage) *ReceiptRecord {
	rec := img.Edges.Receipt
	if rec == nil {
		return nil
	}

	items := make([]receipt.OrderItem, len(rec.Edges.Items))
	for i, it := range rec.Edges.Items {
		items[i] = receipt.OrderItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}
	fees := make([]receipt.OtherFee, len(rec.Edges.Fees))
	for i, f := range rec.Edges.Fees {
		fees[i] = receipt.OtherFee{Name: f.Name, Price: f.Price}
	}

	return &ReceiptRecord{
		ID:          rec.ID,
		OutingID:    img.OutingID,
		Bucket:      img.Bucket,
		Key:         img.Key,
		FileName:    img.FileName,
		ImageHash:   img.Hash,
		RawText:     img.RawText,
		Restaurant:  rec.Restaurant,
		Address:     rec.Address,
		Opened:      rec.Opened,
		OrderNumber: rec.OrderNumber,
		OrderType:   rec.OrderType,
		Table:       rec.TableNumber,
		Server:      rec.Server,
		Items:       items,
		Subtotal:    rec.Subtotal,
		SalesTax:    rec.SalesTax,
		Total:       rec.Total,
		Payment: receipt.PaymentInfo{
			Method:     rec.PaymentMethod,
			AmountPaid: rec.PaymentAmountPaid,
			Tip:        rec.PaymentTip,
		},
		Copy:      rec.Copy,
		OtherFees: fees,
		CreatedAt: rec.CreatedAt,
	}
}
