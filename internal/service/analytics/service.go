package analytics

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/repository/mongodb"
)

// Operation failures reported to the caller. Full-scan operations never
// return these; an empty scan is a valid result.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNoData       = errors.New("no requisition history available")
)

// Service derives inventory intelligence from the record store. Every
// operation is stateless and recomputes from current data on each call.
type Service struct {
	store  mongodb.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new analytics service instance.
func NewService(store mongodb.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}
