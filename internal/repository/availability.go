package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AvailabilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAvailabilityRepo(db *dbpg.DB) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AvailabilityRepository) FindRange(ctx context.Context, from, to time.Time) ([]domain.DayCapacity, error) {
	query := `SELECT id, date, available, available_total, version
			  FROM availability
			  WHERE date BETWEEN $1 AND $2
			  ORDER BY date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("find availability range: %w", err)
	}
	defer rows.Close()

	var res []domain.DayCapacity
	for rows.Next() {
		var day domain.DayCapacity
		if err = rows.Scan(&day.ID, &day.Date, &day.Remaining, &day.Total, &day.Version); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		res = append(res, day)
	}

	return res, rows.Err()
}

// SaveAll commits the whole batch or nothing: any stale row version aborts the
// transaction with ErrConcurrencyConflict.
func (r *AvailabilityRepository) SaveAll(ctx context.Context, days []domain.DayCapacity) error {
	if len(days) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE availability
			  SET available = $2, version = version + 1
			  WHERE id = $1 AND version = $3`

	for _, day := range days {
		result, err := tx.ExecContext(ctx, query, day.ID, day.Remaining, day.Version)
		if err != nil {
			return fmt.Errorf("update availability %s: %w", day.Date.Format(domain.DateLayout), err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("availability rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: availability %s",
				domain.ErrConcurrencyConflict, day.Date.Format(domain.DateLayout))
		}
	}

	return tx.Commit()
}

func (r *AvailabilityRepository) EnsureRange(ctx context.Context, from, to time.Time, total int) (int, error) {
	query := `INSERT INTO availability (date, available, available_total, version)
			  SELECT d::date, $3, $3, 0
			  FROM generate_series($1::date, $2::date, interval '1 day') AS d
			  ON CONFLICT (date) DO NOTHING`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, from, to, total)
	if err != nil {
		return 0, fmt.Errorf("ensure availability range: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("availability rows affected: %w", err)
	}

	return int(inserted), nil
}
