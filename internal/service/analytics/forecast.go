package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/domain/models"
)

const monthLayout = "2006-01"

type demandRecord struct {
	date          time.Time
	quantity      float64
	unitOfMeasure string
}

// ForecastDemand predicts next month's requisition demand for the item with
// the given code by fitting a linear trend to its monthly requisition totals.
func (s *Service) ForecastDemand(ctx context.Context, itemCode string) (*models.Forecast, error) {
	itemID, err := s.resolveItemID(ctx, itemCode)
	if err != nil {
		return nil, err
	}

	requisitions, err := s.store.ListRequisitionsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("load requisitions for item %s: %w", itemCode, err)
	}

	var records []demandRecord
	for _, req := range requisitions {
		for _, line := range req.Items {
			if line.Item == itemID && line.QuantityRequired != nil {
				records = append(records, demandRecord{
					date:          req.DateOfRequirement,
					quantity:      *line.QuantityRequired,
					unitOfMeasure: line.UnitOfMeasure,
				})
			}
		}
	}

	if len(records) == 0 {
		return nil, ErrNoData
	}

	months, totals := groupByMonth(records)

	// The regression input is the zero-based position in the observed month
	// sequence, not a calendar feature, so the fit tracks elapsed observation
	// order regardless of calendar gaps.
	xs := make([]float64, len(totals))
	for i := range totals {
		xs[i] = float64(i)
	}
	slope, intercept := fitLine(xs, totals)
	predicted := intercept + slope*float64(len(totals))

	lastMonth := months[len(months)-1]
	forecast := &models.Forecast{
		ItemCode:          itemCode,
		ForecastMonth:     lastMonth.AddDate(0, 1, 0).Format(monthLayout),
		PredictedQuantity: math.Round(predicted*100) / 100,
		// Units are not reconciled; the first contributing record wins.
		UnitOfMeasure: records[0].unitOfMeasure,
	}

	s.logger.Debug("demand forecast computed",
		zap.String("item_code", itemCode),
		zap.Int("months", len(months)),
		zap.Float64("predicted", forecast.PredictedQuantity))

	return forecast, nil
}

// resolveItemID scans the item collections in resolution order and returns
// the first record matching the code. Codes are only unique per class, so
// the scan order is load-bearing.
func (s *Service) resolveItemID(ctx context.Context, itemCode string) (primitive.ObjectID, error) {
	for _, class := range models.ResolutionOrder {
		item, err := s.store.FindItemByCode(ctx, models.ItemCollections[class], itemCode)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("resolve item code %s: %w", itemCode, err)
		}
		if item != nil {
			return item.ID, nil
		}
	}
	return primitive.NilObjectID, ErrItemNotFound
}

// groupByMonth sums quantities per calendar month and returns the months in
// chronological order alongside their totals.
func groupByMonth(records []demandRecord) ([]time.Time, []float64) {
	sums := make(map[time.Time]float64)
	for _, rec := range records {
		month := time.Date(rec.date.Year(), rec.date.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[month] += rec.quantity
	}

	months := make([]time.Time, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	totals := make([]float64, len(months))
	for i, month := range months {
		totals[i] = sums[month]
	}
	return months, totals
}

// fitLine is an ordinary least-squares fit of y on x. A single point is a
// degenerate fit: zero slope through the point.
func fitLine(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	if len(xs) < 2 {
		if len(ys) == 1 {
			return 0, ys[0]
		}
		return 0, 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return 0, meanY
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX
	return slope, intercept
}
