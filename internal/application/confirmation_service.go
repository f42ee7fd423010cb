package application

import (
	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/domain"
)

// NoOrderMessage is shown when there is no usable confirmation record.
const NoOrderMessage = "No order details available."

// ConfirmationService reads the most recent order for the confirmation view.
type ConfirmationService struct {
	confirmations domain.ConfirmationStore
	logger        *zap.Logger
}

func NewConfirmationService(confirmations domain.ConfirmationStore, logger *zap.Logger) *ConfirmationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationService{confirmations: confirmations, logger: logger}
}

// Load returns the most recent order. A missing, unreadable or malformed
// record yields (nil, false). The record is left in place.
func (s *ConfirmationService) Load() (*domain.Order, bool) {
	order, err := s.confirmations.Load()
	if err != nil {
		s.logger.Warn("ignoring unreadable order confirmation", zap.Error(err))
		return nil, false
	}
	if order == nil {
		return nil, false
	}
	if order.ID.IsZero() {
		s.logger.Warn("ignoring order confirmation without id")
		return nil, false
	}
	return order, true
}
