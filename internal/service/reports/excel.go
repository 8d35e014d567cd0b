package reports

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/domain/models"
	"github.com/labstockease/insights/internal/service/analytics"
)

const (
	reorderSheet  = "Reorder"
	lowStockSheet = "Low Stock"
)

// Service renders analytics results as downloadable Excel workbooks. The
// workbook is assembled fully in memory and never touches disk.
type Service struct {
	analytics *analytics.Service
	logger    *zap.Logger
}

// NewService wires a report service instance.
func NewService(analyticsSvc *analytics.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{analytics: analyticsSvc, logger: logger}
}

// StockReport builds a workbook with one sheet of reorder recommendations
// and one of low-stock items from a fresh scan.
func (s *Service) StockReport(ctx context.Context) ([]byte, error) {
	reorder, err := s.analytics.ReorderRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}

	risk, err := s.analytics.RiskItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeItemSheet(f, reorderSheet, reorder); err != nil {
		return nil, err
	}

	lowStock := make([]models.ClassedItem, 0, len(risk.LowStock))
	for _, item := range risk.LowStock {
		lowStock = append(lowStock, item.ClassedItem)
	}
	if err := writeItemSheet(f, lowStockSheet, lowStock); err != nil {
		return nil, err
	}

	// Drop the default sheet so the report opens on the reorder view.
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(reorderSheet); err == nil {
		f.SetActiveSheet(index)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("stock report: serialize workbook: %w", err)
	}

	s.logger.Debug("stock report generated",
		zap.Int("reorder_rows", len(reorder)),
		zap.Int("low_stock_rows", len(lowStock)))

	return buf.Bytes(), nil
}

func writeItemSheet(f *excelize.File, sheet string, items []models.ClassedItem) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("stock report: create sheet %s: %w", sheet, err)
	}

	headers := []any{"Item Code", "Item Name", "Class", "Current Quantity", "Min Stock Level", "Unit"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("stock report: write header on %s: %w", sheet, err)
	}

	for i, item := range items {
		row := []any{
			item.ItemCode,
			item.ItemName,
			string(item.Class),
			item.CurrentQuantity,
			item.MinStockLevel,
			item.UnitOfMeasure,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("stock report: write row on %s: %w", sheet, err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 24)
	_ = f.SetColWidth(sheet, "C", "F", 16)
	return nil
}
