package usecase

import (
	"context"
	"errors"

	"conversions-adapter/internal/outcomes/core/domain"
	"conversions-adapter/internal/outcomes/core/ports"
)

var (
	ErrInvalidStatsQuery = errors.New("invalid stats query")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrInvalidGroupBy    = errors.New("invalid group_by value")
	ErrInvalidInterval   = errors.New("invalid interval for time grouping")
)

type GetOutcomeStatsInput struct {
	EventName string
	From      int64
	To        int64

	DestinationID *string
	GroupBy       string // "", "reason", "time"
	Interval      string // "hour" / "day", required when GroupBy is "time"
}

type GetOutcomeStatsUseCase struct {
	reader ports.StatsReaderPort
}

func NewGetOutcomeStatsUseCase(reader ports.StatsReaderPort) *GetOutcomeStatsUseCase {
	return &GetOutcomeStatsUseCase{reader: reader}
}

// Execute validates the query and hands it to the stats reader.
func (uc *GetOutcomeStatsUseCase) Execute(ctx context.Context, in GetOutcomeStatsInput) (*domain.OutcomeStats, error) {
	if in.EventName == "" {
		return nil, ErrInvalidStatsQuery
	}

	if in.From <= 0 || in.To <= 0 || in.From > in.To {
		return nil, ErrInvalidTimeRange
	}

	switch in.GroupBy {
	case "", "reason":
	case "time":
		if in.Interval != "hour" && in.Interval != "day" {
			return nil, ErrInvalidInterval
		}
	default:
		return nil, ErrInvalidGroupBy
	}

	return uc.reader.QueryStats(ctx, ports.StatsFilter{
		EventName:     in.EventName,
		From:          in.From,
		To:            in.To,
		DestinationID: in.DestinationID,
		GroupBy:       in.GroupBy,
		Interval:      in.Interval,
	})
}
