package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"conversions-adapter/internal/conversions/core/domain"
	"conversions-adapter/internal/conversions/core/ports"

	"go.uber.org/zap"
)

var ErrDeliveryFailed = errors.New("delivery failed")

type EventTranslator interface {
	Execute(ctx context.Context, in TranslateEventInput) (*domain.RequestDescriptor, error)
}

// DeliverEventUseCase translates an event and sends the resulting request
// once. Retries and batching belong to the caller.
type DeliverEventUseCase struct {
	translate EventTranslator
	sender    ports.SenderPort
	observer  ports.TranslationObserver
	logger    *zap.Logger
}

func NewDeliverEventUseCase(
	translate EventTranslator,
	sender ports.SenderPort,
	observer ports.TranslationObserver,
	logger *zap.Logger,
) *DeliverEventUseCase {
	return &DeliverEventUseCase{
		translate: translate,
		sender:    sender,
		observer:  observer,
		logger:    logger,
	}
}

func (uc *DeliverEventUseCase) Execute(ctx context.Context, in TranslateEventInput) (*domain.DeliveryResult, error) {
	req, err := uc.translate.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	if req.ForwardClientHeaders {
		req.Headers = withClientHeaders(req.Headers, in.ClientHeaders)
	}

	res, err := uc.sender.Send(ctx, req)
	if err != nil {
		uc.observe(0)
		uc.logger.Error("provider request failed",
			zap.String("event_id", in.Event.UUID),
			zap.String("kind", string(in.Kind)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	uc.observe(res.StatusCode)
	uc.logger.Info("provider request sent",
		zap.String("event_id", in.Event.UUID),
		zap.String("kind", string(in.Kind)),
		zap.Int("status_code", res.StatusCode),
	)

	return res, nil
}

func (uc *DeliverEventUseCase) observe(statusCode int) {
	if uc.observer != nil {
		uc.observer.ObserveDelivery(statusCode)
	}
}

// withClientHeaders appends client headers whose names are not already set.
// Computed headers such as content-type always win.
func withClientHeaders(headers, client []domain.Header) []domain.Header {
	out := slices.Clone(headers)
	for _, h := range client {
		if slices.ContainsFunc(out, func(e domain.Header) bool { return strings.EqualFold(e.Name, h.Name) }) {
			continue
		}
		out = append(out, h)
	}
	return out
}
