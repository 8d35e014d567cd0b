package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/domain/models"
	"github.com/labstockease/insights/internal/service/analytics"
	"github.com/labstockease/insights/pkg/clients/webhook"
)

// Digest is the stock-alert payload delivered to the alert webhook. It is
// assembled from a fresh scan every run; nothing is persisted.
type Digest struct {
	GeneratedAt  time.Time             `json:"generated_at"`
	ExpiringSoon []models.ExpiryRisk   `json:"expiring_soon"`
	LowStock     []models.LowStockItem `json:"low_stock"`
	Anomalies    []models.ScoredItem   `json:"anomalies"`
	Summary      string                `json:"summary"`
}

// Empty reports whether the digest carries no alerts.
func (d Digest) Empty() bool {
	return len(d.ExpiringSoon) == 0 && len(d.LowStock) == 0 && len(d.Anomalies) == 0
}

// Service builds and delivers scheduled stock-alert digests.
type Service struct {
	analytics *analytics.Service
	client    webhook.Client
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a digest service. The client may be nil, in which case
// SendDigest only logs what it would have delivered.
func NewService(analyticsSvc *analytics.Service, client webhook.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{analytics: analyticsSvc, client: client, logger: logger, now: time.Now}
}

// BuildDigest recomputes expiry risk and the risk report and folds them into
// a single digest.
func (s *Service) BuildDigest(ctx context.Context) (*Digest, error) {
	expiring, err := s.analytics.ExpiryRisk(ctx)
	if err != nil {
		return nil, fmt.Errorf("build digest: %w", err)
	}

	report, err := s.analytics.RiskItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("build digest: %w", err)
	}

	digest := &Digest{
		GeneratedAt:  s.now(),
		ExpiringSoon: expiring,
		LowStock:     report.LowStock,
		Anomalies:    report.Anomalies,
	}
	digest.Summary = fmt.Sprintf("%d batches expiring within %d days, %d items low on stock, %d anomalies",
		len(digest.ExpiringSoon), analytics.ExpiryHorizonDays, len(digest.LowStock), len(digest.Anomalies))

	return digest, nil
}

// SendDigest builds the digest and posts it to the alert webhook. Clean scans
// send nothing. Delivery failures are returned for the caller to log; there
// is no retry.
func (s *Service) SendDigest(ctx context.Context) error {
	digest, err := s.BuildDigest(ctx)
	if err != nil {
		return err
	}

	if digest.Empty() {
		s.logger.Info("stock digest clean, nothing to send")
		return nil
	}

	if s.client == nil {
		s.logger.Info("no alert webhook configured, skipping delivery",
			zap.String("summary", digest.Summary))
		return nil
	}

	if err := s.client.Post(ctx, digest); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	s.logger.Info("stock digest delivered", zap.String("summary", digest.Summary))
	return nil
}
