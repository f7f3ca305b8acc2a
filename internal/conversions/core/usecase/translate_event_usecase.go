package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"conversions-adapter/internal/conversions/core/domain"
	"conversions-adapter/internal/conversions/core/ports"
	"conversions-adapter/internal/conversions/core/translator"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrUnknownKind  = errors.New("unknown event kind")
	ErrMissingEvent = errors.New("event is required")
)

type TranslateEventInput struct {
	Kind     domain.EventType
	Event    *domain.Event
	Settings domain.Dict

	// ClientHeaders are the visitor's request headers, attached on delivery
	// when the translated request asks for them.
	ClientHeaders []domain.Header
}

// TranslateEventUseCase dispatches an event to the translator entry point
// for its kind and reports the outcome. recorder and observer are optional.
type TranslateEventUseCase struct {
	translator *translator.Translator
	recorder   ports.OutcomeRecorderPort
	observer   ports.TranslationObserver
	logger     *zap.Logger
}

func NewTranslateEventUseCase(
	tr *translator.Translator,
	recorder ports.OutcomeRecorderPort,
	observer ports.TranslationObserver,
	logger *zap.Logger,
) *TranslateEventUseCase {
	return &TranslateEventUseCase{
		translator: tr,
		recorder:   recorder,
		observer:   observer,
		logger:     logger,
	}
}

func (uc *TranslateEventUseCase) Execute(ctx context.Context, in TranslateEventInput) (*domain.RequestDescriptor, error) {
	if in.Event == nil {
		return nil, ErrMissingEvent
	}

	var translate func(*domain.Event, domain.Dict) (*domain.RequestDescriptor, error)
	switch in.Kind {
	case domain.EventTypePage:
		translate = uc.translator.Page
	case domain.EventTypeTrack:
		translate = uc.translator.Track
	case domain.EventTypeUser:
		translate = uc.translator.User
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}

	req, err := translate(in.Event, in.Settings)
	reason := translator.Reason(err)

	if uc.observer != nil {
		uc.observer.ObserveTranslation(string(in.Kind), reason)
	}
	uc.record(ctx, in, err)

	fields := []zap.Field{
		zap.String("event_id", in.Event.UUID),
		zap.String("kind", string(in.Kind)),
	}
	if err != nil {
		uc.logger.Warn("event rejected", append(fields, zap.String("reason", reason), zap.Error(err))...)
		return nil, err
	}

	uc.logger.Info("event translated", fields...)
	return req, nil
}

func (uc *TranslateEventUseCase) record(ctx context.Context, in TranslateEventInput, translateErr error) {
	if uc.recorder == nil {
		return
	}
	if in.Event.UUID == "" {
		uc.logger.Debug("outcome not recorded: event has no id", zap.String("kind", string(in.Kind)))
		return
	}

	o := buildOutcome(in, translateErr)
	created, err := uc.recorder.RecordOutcome(ctx, o)
	if err != nil {
		uc.logger.Error("failed to record outcome",
			zap.String("event_id", o.EventID),
			zap.String("kind", string(o.Kind)),
			zap.Error(err),
		)
		return
	}
	if !created {
		uc.logger.Debug("outcome already recorded", zap.String("event_id", o.EventID))
	}
}

func buildOutcome(in TranslateEventInput, translateErr error) *domain.Outcome {
	ev := in.Event
	destinationID, _ := in.Settings.Get(translator.SettingDestinationID)

	o := &domain.Outcome{
		EventID:       ev.UUID,
		Kind:          in.Kind,
		EventName:     outcomeEventName(in.Kind, ev),
		DestinationID: destinationID,
		Status:        domain.OutcomeTranslated,
		EventTime:     time.Unix(ev.Timestamp, 0).UTC(),
		CustomKeys:    []string{},
	}

	if translateErr != nil {
		o.Status = domain.OutcomeRejected
		o.Reason = translator.Reason(translateErr)
		return o
	}

	o.CustomKeys = customKeys(in.Kind, ev)
	return o
}

func outcomeEventName(kind domain.EventType, ev *domain.Event) string {
	switch kind {
	case domain.EventTypePage:
		return translator.PageViewEventName
	case domain.EventTypeTrack:
		if ev.Data.Track != nil {
			return ev.Data.Track.Name
		}
	}
	return ""
}

// customKeys lists the custom_data keys sent for ev, sorted.
func customKeys(kind domain.EventType, ev *domain.Event) []string {
	var props domain.Dict
	var keys []string

	switch kind {
	case domain.EventTypePage:
		page := ev.Data.Page
		props = page.Properties
		if page.Name != "" {
			keys = append(keys, "page_name")
		}
		if page.Category != "" {
			keys = append(keys, "page_category")
		}
		if page.Title != "" {
			keys = append(keys, "page_title")
		}
	case domain.EventTypeTrack:
		props = ev.Data.Track.Properties
	}

	keys = append(keys, lo.Map(props, func(p [2]string, _ int) string { return p[0] })...)
	keys = lo.Uniq(keys)
	slices.Sort(keys)
	return keys
}
