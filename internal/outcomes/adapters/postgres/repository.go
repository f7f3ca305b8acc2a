package postgres

import (
	"context"
	"fmt"
	"time"

	"conversions-adapter/internal/outcomes/core/domain"
	"conversions-adapter/internal/outcomes/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ ports.StatsReaderPort = (*StatsRepository)(nil)

const countColumns = `
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE status = 'translated') AS translated,
    COUNT(*) FILTER (WHERE status = 'rejected') AS rejected`

func (r *StatsRepository) QueryStats(ctx context.Context, f ports.StatsFilter) (*domain.OutcomeStats, error) {
	fromTime := time.Unix(f.From, 0).UTC()
	toTime := time.Unix(f.To, 0).UTC()

	where := "event_name = $1 AND event_time BETWEEN $2 AND $3"
	args := []any{f.EventName, fromTime, toTime}

	if f.DestinationID != nil {
		where += " AND destination_id = $4"
		args = append(args, *f.DestinationID)
	}

	res := &domain.OutcomeStats{
		EventName: f.EventName,
		From:      f.From,
		To:        f.To,
		GroupBy:   f.GroupBy,
	}

	switch f.GroupBy {
	case "":
		return r.queryTotals(ctx, where, args, res)
	case "reason":
		// translated rows carry no reason and are grouped under "translated"
		query := `
SELECT
    COALESCE(reason, 'translated') AS reason,` + countColumns + `
FROM translation_outcomes
WHERE ` + where + `
GROUP BY 1
ORDER BY 1`
		return r.queryGroups(ctx, query, args, res, scanKey)
	case "time":
		if f.Interval != "hour" && f.Interval != "day" {
			return nil, fmt.Errorf("unsupported interval: %s", f.Interval)
		}
		query := fmt.Sprintf(`
SELECT
    date_trunc('%s', event_time) AS bucket,%s
FROM translation_outcomes
WHERE %s
GROUP BY bucket
ORDER BY bucket
`, f.Interval, countColumns, where)
		return r.queryGroups(ctx, query, args, res, scanBucket)
	default:
		return nil, fmt.Errorf("unsupported group_by: %s", f.GroupBy)
	}
}

func (r *StatsRepository) queryTotals(
	ctx context.Context,
	where string,
	args []any,
	res *domain.OutcomeStats,
) (*domain.OutcomeStats, error) {
	query := `
SELECT` + countColumns + `
FROM translation_outcomes
WHERE ` + where

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&res.Total, &res.Translated, &res.Rejected); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// keyScanner scans one grouped row and returns its group key.
type keyScanner func(rows RowScanner, g *domain.StatsGroup) error

func scanKey(rows RowScanner, g *domain.StatsGroup) error {
	return rows.Scan(&g.Key, &g.Total, &g.Translated, &g.Rejected)
}

func scanBucket(rows RowScanner, g *domain.StatsGroup) error {
	var ts time.Time
	if err := rows.Scan(&ts, &g.Total, &g.Translated, &g.Rejected); err != nil {
		return err
	}
	g.Key = ts.UTC().Format(time.RFC3339)
	return nil
}

func (r *StatsRepository) queryGroups(
	ctx context.Context,
	query string,
	args []any,
	res *domain.OutcomeStats,
	scan keyScanner,
) (*domain.OutcomeStats, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var g domain.StatsGroup
		if err := scan(rows, &g); err != nil {
			return nil, err
		}

		res.Groups = append(res.Groups, g)
		res.Total += g.Total
		res.Translated += g.Translated
		res.Rejected += g.Rejected
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}
