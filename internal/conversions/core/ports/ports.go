package ports

import (
	"context"

	"conversions-adapter/internal/conversions/core/domain"
)

type OutcomeRecorderPort interface {
	// RecordOutcome:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> already recorded for (event_id, kind)
	//   created = false, err != nil -> DB error
	RecordOutcome(ctx context.Context, o *domain.Outcome) (created bool, err error)
}

// SenderPort performs a single HTTP exchange for a request descriptor. It
// must not retry.
type SenderPort interface {
	Send(ctx context.Context, req *domain.RequestDescriptor) (*domain.DeliveryResult, error)
}

type TranslationObserver interface {
	ObserveTranslation(kind, reason string)
	ObserveDelivery(statusCode int)
}
