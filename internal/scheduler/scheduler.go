package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/metrics"
	"github.com/labstockease/insights/internal/service/notify"
)

// Scheduler runs the stock-alert digest on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	digestSvc *notify.Service
	schedule  string
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(schedule string, digestSvc *notify.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		digestSvc: digestSvc,
		schedule:  schedule,
		logger:    logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.runDigest); err != nil {
		s.logger.Error("failed to schedule stock digest", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	s.logger.Info("running scheduled stock digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.digestSvc.SendDigest(ctx); err != nil {
		metrics.IncDigestRun("error")
		s.logger.Error("scheduled stock digest failed", zap.Error(err))
		return
	}
	metrics.IncDigestRun("ok")
}
