package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"asset-console/internal/catalog"
	"asset-console/pkg/types"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ExportServiceInterface interface {
	ExportRmaRecords(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error)
}

// ExportService renders the currently filtered RMA list into a spreadsheet.
// The export honours exactly the filters the user sees on screen.
type ExportService struct {
	rma    RmaServiceInterface
	logger *zap.Logger
	now    func() time.Time
}

func NewExportService(rma RmaServiceInterface, logger *zap.Logger) ExportServiceInterface {
	return &ExportService{rma: rma, logger: logger, now: time.Now}
}

var rmaExportHeaders = []string{
	"RMA ID", "Ticket", "Site", "Serial Number", "Device Type",
	"Status", "Replacement Source", "Installation", "Faulty Item Action", "Created At",
}

func (s *ExportService) ExportRmaRecords(ctx context.Context, filter types.Filter) (*bytes.Buffer, string, error) {
	records, err := s.rma.GetFilteredRecords(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "RMA"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, header := range rmaExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("write export header: %w", err)
		}
	}

	for row, r := range records {
		values := []interface{}{
			r.ID,
			r.TicketRef,
			r.SiteID,
			r.OriginalAsset.SerialNumber,
			r.OriginalAsset.DeviceType,
			catalog.LabelFor(r.Status).Label,
			r.ReplacementSource,
			r.InstallationStatus,
			r.FaultyItemAction,
			r.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("write export row %d: %w", row+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("serialize export: %w", err)
	}

	fileName := fmt.Sprintf("rma-export-%s.xlsx", s.now().Format("2006-01-02"))
	s.logger.Info("rma export generated",
		zap.Int("rows", len(records)),
		zap.String("file", fileName),
	)
	return buf, fileName, nil
}
