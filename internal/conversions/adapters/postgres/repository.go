package postgres

import (
	"context"

	"conversions-adapter/internal/conversions/core/domain"
	"conversions-adapter/internal/conversions/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OutcomeRepository struct {
	db DB
}

func NewOutcomeRepository(db DB) *OutcomeRepository {
	return &OutcomeRepository{db: db}
}

var _ ports.OutcomeRecorderPort = (*OutcomeRepository)(nil)

const insertOutcomeSQL = `
INSERT INTO translation_outcomes (
    id,
    event_id,
    event_kind,
    event_name,
    destination_id,
    status,
    reason,
    custom_keys,
    event_time
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9
)
ON CONFLICT (event_id, event_kind) DO NOTHING;
`

func (r *OutcomeRepository) RecordOutcome(ctx context.Context, o *domain.Outcome) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertOutcomeSQL,
		uuid.New(),
		o.EventID,
		string(o.Kind),
		nullable(o.EventName),
		nullable(o.DestinationID),
		string(o.Status),
		nullable(o.Reason),
		pq.Array(o.CustomKeys),
		o.EventTime,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// 0 rows: outcome for (event_id, event_kind) already stored
	return rows > 0, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
