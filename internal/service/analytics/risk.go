package analytics

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/domain/models"
)

const (
	// ExpiryHorizonDays is the inclusive alert window; already-expired
	// batches (negative days) are always inside it.
	ExpiryHorizonDays = 5
	// anomalyThreshold is the z-score above which a stock deficit counts as
	// an outlier.
	anomalyThreshold = 1.5
)

// ExpiryRisk scans every restock collection and flags batches expiring
// within the alert horizon.
func (s *Service) ExpiryRisk(ctx context.Context) ([]models.ExpiryRisk, error) {
	now := s.now()
	flagged := make([]models.ExpiryRisk, 0)

	for _, class := range models.ScanOrder {
		collection, ok := models.RestockCollections[class]
		if !ok {
			continue
		}

		batches, err := s.store.ListRestocks(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("scan restocks for %s: %w", class, err)
		}

		for _, batch := range batches {
			if batch.ExpirationDate == nil {
				continue
			}
			days := int(batch.ExpirationDate.Sub(now).Hours() / 24)
			if days > ExpiryHorizonDays {
				continue
			}
			flagged = append(flagged, models.ExpiryRisk{
				ID:                batch.ID.Hex(),
				Class:             class,
				DaysToExpiry:      days,
				QuantityPurchased: batch.QuantityPurchased,
				ExpirationDate:    batch.ExpirationDate.Format("2006-01-02"),
				Location:          batch.Location,
			})
		}
	}

	s.logger.Debug("expiry risk scan completed", zap.Int("flagged", len(flagged)))
	return flagged, nil
}

// ReorderRecommendations scans every item collection and flags items at or
// below their minimum stock level.
func (s *Service) ReorderRecommendations(ctx context.Context) ([]models.ClassedItem, error) {
	recommendations := make([]models.ClassedItem, 0)

	for _, class := range models.ScanOrder {
		items, err := s.store.ListItems(ctx, models.ItemCollections[class])
		if err != nil {
			return nil, fmt.Errorf("scan items for %s: %w", class, err)
		}

		for _, item := range items {
			if item.CurrentQuantity <= item.MinStockLevel {
				recommendations = append(recommendations, classedItem(item, class))
			}
		}
	}

	s.logger.Debug("reorder scan completed", zap.Int("flagged", len(recommendations)))
	return recommendations, nil
}

// RiskItems scores every item's stock deficit against the population and
// reports items already below threshold plus statistical outliers. An item
// can appear in both lists.
func (s *Service) RiskItems(ctx context.Context) (*models.RiskReport, error) {
	var scanned []models.ScoredItem

	for _, class := range models.ScanOrder {
		items, err := s.store.ListItems(ctx, models.ItemCollections[class])
		if err != nil {
			return nil, fmt.Errorf("scan items for %s: %w", class, err)
		}
		for _, item := range items {
			scanned = append(scanned, models.ScoredItem{
				ClassedItem: classedItem(item, class),
				StockDiff:   item.MinStockLevel - item.CurrentQuantity,
			})
		}
	}

	report := &models.RiskReport{
		LowStock:  make([]models.LowStockItem, 0),
		Anomalies: make([]models.ScoredItem, 0),
	}
	if len(scanned) == 0 {
		return report, nil
	}

	diffs := make([]float64, len(scanned))
	for i, item := range scanned {
		diffs[i] = item.StockDiff
	}

	// Population standard deviation (divide by N): a single item or a
	// constant population has zero spread and every score stays 0.
	mean, meanErr := stats.Mean(diffs)
	stddev, stdErr := stats.StandardDeviationPopulation(diffs)

	for i := range scanned {
		score := 0.0
		if meanErr == nil && stdErr == nil && stddev != 0 {
			score = (scanned[i].StockDiff - mean) / stddev
		}
		scanned[i].AnomalyScore = sanitize(score)
		scanned[i].StockDiff = sanitize(scanned[i].StockDiff)

		if scanned[i].CurrentQuantity <= scanned[i].MinStockLevel {
			report.LowStock = append(report.LowStock, models.LowStockItem{
				ClassedItem: scanned[i].ClassedItem,
				StockDiff:   scanned[i].StockDiff,
			})
		}
		if scanned[i].AnomalyScore > anomalyThreshold {
			report.Anomalies = append(report.Anomalies, scanned[i])
		}
	}

	s.logger.Debug("risk scan completed",
		zap.Int("scanned", len(scanned)),
		zap.Int("low_stock", len(report.LowStock)),
		zap.Int("anomalies", len(report.Anomalies)))

	return report, nil
}

func classedItem(item models.Item, class models.InventoryClass) models.ClassedItem {
	return models.ClassedItem{
		ID:              item.ID.Hex(),
		Class:           class,
		ItemCode:        item.ItemCode,
		ItemName:        item.ItemName,
		CurrentQuantity: item.CurrentQuantity,
		MinStockLevel:   item.MinStockLevel,
		UnitOfMeasure:   item.UnitOfMeasure,
	}
}

// sanitize replaces NaN and infinite values with 0 so results always
// serialize cleanly.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
