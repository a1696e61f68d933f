package server

import (
	"context"

	outingsv1 "github.com/tabmate/outings-tracker/gen/proto/outings/v1"
	"github.com/tabmate/outings-tracker/internal/common"
)

func (s *OutingsService) ExportOuting(ctx context.Context, req *outingsv1.ExportOutingRequest) (*outingsv1.ExportOutingResponse, error) {
	outingID, err := parseOutingID(req.GetOutingId())
	if err != nil {
		return nil, err
	}

	if exists, err := s.outings.Exists(ctx, outingID); err != nil {
		s.logger.Error("outing lookup failed", "outing_id", outingID, "error", err)
		return nil, common.InternalError("outing lookup failed")
	} else if !exists {
		return nil, common.NotFoundError("outing not found")
	}

	xlsx, err := s.exporter.ExportOutingXLSX(ctx, outingID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "outing_id", outingID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &outingsv1.ExportOutingResponse{Xlsx: xlsx}, nil
}
