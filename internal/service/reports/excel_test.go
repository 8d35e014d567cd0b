package reports

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/labstockease/insights/internal/domain/models"
	"github.com/labstockease/insights/internal/repository/memory"
	"github.com/labstockease/insights/internal/service/analytics"
)

func TestStockReport(t *testing.T) {
	store := memory.NewStore()
	store.AddItem("chemistrychemicals", models.Item{
		ID:            primitive.NewObjectID(),
		ItemCode:      "CH-300",
		ItemName:      "Sulfuric Acid",
		MinStockLevel: 8,
		UnitOfMeasure: "L",
	})
	store.AddItem("chemistrybooks", models.Item{
		ID:              primitive.NewObjectID(),
		ItemCode:        "BK-001",
		ItemName:        "Organic Chemistry",
		CurrentQuantity: 12,
		MinStockLevel:   2,
		UnitOfMeasure:   "pcs",
	})

	svc := NewService(analytics.NewService(store, nil), nil)

	workbook, err := svc.StockReport(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, workbook)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Reorder")
	assert.Contains(t, sheets, "Low Stock")
	assert.NotContains(t, sheets, "Sheet1")

	header, err := f.GetCellValue("Reorder", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Item Code", header)

	// Only the understocked chemical qualifies; the well-stocked book must
	// not appear.
	code, err := f.GetCellValue("Reorder", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CH-300", code)

	name, err := f.GetCellValue("Low Stock", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Sulfuric Acid", name)

	empty, err := f.GetCellValue("Reorder", "A3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
