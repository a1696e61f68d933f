package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	outingsv1 "github.com/tabmate/outings-tracker/gen/proto/outings/v1"
	"github.com/tabmate/outings-tracker/internal/common"
	"github.com/tabmate/outings-tracker/internal/export"
	"github.com/tabmate/outings-tracker/internal/receipt"
	"github.com/tabmate/outings-tracker/internal/repository"
	"github.com/tabmate/outings-tracker/internal/storage"
)

// Pipeline runs the hash/upload/OCR/extract sequence for one image.
type Pipeline interface {
	Run(ctx context.Context, imageBytes []byte, fileName string) (receipt.Result, error)
}

type OutingsService struct {
	outingsv1.UnimplementedOutingsServiceServer
	outings    repository.OutingRepository
	receipts   repository.ReceiptRepository
	pipeline   Pipeline
	storage    storage.Storage
	exporter   *export.Service
	presignTTL time.Duration
	logger     *slog.Logger
}

func NewOutingsService(
	outings repository.OutingRepository,
	receipts repository.ReceiptRepository,
	pipeline Pipeline,
	st storage.Storage,
	exporter *export.Service,
	presignTTL time.Duration,
	logger *slog.Logger,
) *OutingsService {
	if presignTTL <= 0 {
		presignTTL = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OutingsService{
		outings:    outings,
		receipts:   receipts,
		pipeline:   pipeline,
		storage:    st,
		exporter:   exporter,
		presignTTL: presignTTL,
		logger:     logger,
	}
}

func (s *OutingsService) CreateOuting(ctx context.Context, req *outingsv1.CreateOutingRequest) (*outingsv1.CreateOutingResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	o, err := s.outings.Create(ctx, name)
	if err != nil {
		s.logger.Error("create outing failed", "name", name, "error", err)
		return nil, common.InternalError("create outing failed")
	}

	return &outingsv1.CreateOutingResponse{
		Outing: &outingsv1.Outing{
			Id:        o.ID.String(),
			Name:      o.Name,
			CreatedAt: o.CreatedAt.Format(time.RFC3339Nano),
		},
	}, nil
}

func (s *OutingsService) ListOutings(ctx context.Context, _ *outingsv1.ListOutingsRequest) (*outingsv1.ListOutingsResponse, error) {
	summaries, err := s.outings.List(ctx)
	if err != nil {
		s.logger.Error("list outings failed", "error", err)
		return nil, common.InternalError("list outings failed")
	}

	out := make([]*outingsv1.Outing, 0, len(summaries))
	for _, o := range summaries {
		out = append(out, &outingsv1.Outing{
			Id:            o.ID.String(),
			Name:          o.Name,
			CreatedAt:     o.CreatedAt.Format(time.RFC3339Nano),
			TotalReceipts: int32(o.TotalReceipts),
		})
	}
	return &outingsv1.ListOutingsResponse{Outings: out}, nil
}

func (s *OutingsService) DeleteOuting(ctx context.Context, req *outingsv1.DeleteOutingRequest) (*outingsv1.DeleteOutingResponse, error) {
	outingID, err := parseOutingID(req.GetOutingId())
	if err != nil {
		return nil, err
	}

	if err := s.outings.SoftDelete(ctx, outingID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("outing not found")
		}
		s.logger.Error("delete outing failed", "outing_id", outingID, "error", err)
		return nil, common.InternalError("delete outing failed")
	}
	return &outingsv1.DeleteOutingResponse{}, nil
}

func parseOutingID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("outing_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("outing_id must be a UUID")
	}
	return id, nil
}
