package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/labstockease/insights/internal/domain/models"
	"github.com/labstockease/insights/internal/repository/memory"
	"github.com/labstockease/insights/internal/server/handlers"
	"github.com/labstockease/insights/internal/server/router"
	"github.com/labstockease/insights/internal/service/analytics"
	"github.com/labstockease/insights/internal/service/reports"
)

func testEngine(store *memory.Store) http.Handler {
	svc := analytics.NewService(store, nil)
	handler := handlers.NewAnalyticsHandler(svc, reports.NewService(svc, nil), nil)
	return router.New(handler, nil)
}

func get(t *testing.T, engine http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestForecastEndpoint(t *testing.T) {
	t.Run("UnknownItemIs404", func(t *testing.T) {
		rec := get(t, testEngine(memory.NewStore()), "/forecast/CH-404")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "item not found", body["error"])
	})

	t.Run("ForecastPayload", func(t *testing.T) {
		store := memory.NewStore()
		itemID := primitive.NewObjectID()
		quantity := 4.0
		store.AddItem("chemistrychemicals", models.Item{ID: itemID, ItemCode: "CH-900"})
		store.Requisitions = append(store.Requisitions, models.Requisition{
			ID:                primitive.NewObjectID(),
			DateOfRequirement: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			RequestedBy:       primitive.NewObjectID(),
			Items: []models.RequisitionLine{
				{Class: models.ClassChemicals, Item: itemID, UnitOfMeasure: "ml", QuantityRequired: &quantity},
			},
		})

		rec := get(t, testEngine(store), "/forecast/CH-900")
		require.Equal(t, http.StatusOK, rec.Code)

		var forecast models.Forecast
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forecast))
		assert.Equal(t, "CH-900", forecast.ItemCode)
		assert.Equal(t, "2025-08", forecast.ForecastMonth)
		assert.Equal(t, 4.0, forecast.PredictedQuantity)
		assert.Equal(t, "ml", forecast.UnitOfMeasure)
	})
}

func TestUserSuggestionsEndpoint(t *testing.T) {
	t.Run("UnknownUserIs404", func(t *testing.T) {
		rec := get(t, testEngine(memory.NewStore()), "/user-suggestions/ghost@lab.edu")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFullScanEndpoints(t *testing.T) {
	engine := testEngine(memory.NewStore())

	t.Run("EmptyScansReturnEmptyCollections", func(t *testing.T) {
		rec := get(t, engine, "/risk-items")
		require.Equal(t, http.StatusOK, rec.Code)

		var report models.RiskReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Empty(t, report.LowStock)
		assert.Empty(t, report.Anomalies)

		rec = get(t, engine, "/expiry-risk")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"risk_items": []}`, rec.Body.String())

		rec = get(t, engine, "/reorder-recommendations")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"reorder_recommendations": []}`, rec.Body.String())
	})

	t.Run("Healthz", func(t *testing.T) {
		rec := get(t, engine, "/healthz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestStockReportEndpoint(t *testing.T) {
	store := memory.NewStore()
	store.AddItem("chemistrychemicals", models.Item{
		ID:            primitive.NewObjectID(),
		ItemCode:      "CH-310",
		ItemName:      "Phenolphthalein",
		MinStockLevel: 3,
	})

	rec := get(t, testEngine(store), "/reports/stock.xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "stock_report.xlsx")
	assert.NotZero(t, rec.Body.Len())
}
