package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tabmate/outings-tracker/internal/repository"
)

// Service is a tiny façade over the receipt repository that produces
// XLSX bytes for outing exports.
type Service struct {
	receipts repository.ReceiptRepository
	logger   *slog.Logger
}

func NewService(receipts repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receipts: receipts, logger: logger}
}

// ExportOutingXLSX returns an XLSX workbook (as bytes) with one row per
// receipt in the outing.
func (s *Service) ExportOutingXLSX(ctx context.Context, outingID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.receipts.ListRecordsForOuting(ctx, outingID)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Opened",
		"Restaurant",
		"Items",
		"Subtotal",
		"Sales Tax",
		"Tip",
		"Other Fees",
		"Total",
		"Payment Method",
		"Object Key",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if r.Opened != nil {
			write(1, r.Opened.Format("2006-01-02 15:04"))
		} else {
			write(1, "")
		}
		write(2, r.Restaurant)

		names := make([]string, len(r.Items))
		for i, it := range r.Items {
			names[i] = it.Name
		}
		write(3, truncate(strings.Join(names, ", "), 140))

		write(4, r.Subtotal)
		write(5, r.SalesTax)
		write(6, r.Payment.Tip)

		var fees float64
		for _, fee := range r.OtherFees {
			fees += fee.Price
		}
		write(7, fees)

		write(8, r.Total)
		write(9, r.Payment.Method)
		write(10, r.Key)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // opened
	_ = f.SetColWidth(sheet, "B", "B", 28) // restaurant
	_ = f.SetColWidth(sheet, "C", "C", 48) // items
	_ = f.SetColWidth(sheet, "D", "H", 12) // money columns
	_ = f.SetColWidth(sheet, "I", "I", 16) // method
	_ = f.SetColWidth(sheet, "J", "J", 48) // key

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"outing_id", outingID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
