package ports

import (
	"context"

	"conversions-adapter/internal/outcomes/core/domain"
)

type StatsFilter struct {
	EventName     string
	From          int64
	To            int64
	DestinationID *string // optional
	GroupBy       string  // "", "reason", "time"
	Interval      string  // "hour" / "day", only with GroupBy = "time"
}

type StatsReaderPort interface {
	QueryStats(ctx context.Context, f StatsFilter) (*domain.OutcomeStats, error)
}
