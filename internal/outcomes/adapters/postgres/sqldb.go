package postgres

import (
	"context"
	"database/sql"
)

// sqlRows adapts *sql.Rows to RowScanner.
type sqlRows struct {
	*sql.Rows
}

type sqlDB struct {
	db *sql.DB
}

// NewSQLDB wraps a pooled connection for the stats repository.
func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{Rows: rows}, nil
}
