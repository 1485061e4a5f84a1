package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservation (id, name, email, arrival_date, departure_date, create_date, update_date, version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.Name, res.Email, res.ArrivalDate, res.DepartureDate,
		res.CreatedAt, res.UpdatedAt, res.Version,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, name, email, arrival_date, departure_date, create_date, update_date, cancel_date, version
			  FROM reservation
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	var cancelled sql.NullTime
	if err = row.Scan(
		&res.ID, &res.Name, &res.Email, &res.ArrivalDate, &res.DepartureDate,
		&res.CreatedAt, &res.UpdatedAt, &cancelled, &res.Version,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrReservationNotFound, id)
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	if cancelled.Valid {
		res.CancelledAt = &cancelled.Time
	}

	return &res, nil
}

func (r *ReservationRepository) FindActiveOverlap(ctx context.Context, email string, from, to time.Time, excludeID string) ([]*domain.Reservation, error) {
	// half-open stays: [arrival, departure) intersects [from, to)
	query := `SELECT id, name, email, arrival_date, departure_date, create_date, update_date, cancel_date, version
			  FROM reservation
			  WHERE email = $1
			    AND cancel_date IS NULL
			    AND arrival_date < $3
			    AND departure_date > $2
			    AND ($4 = '' OR id <> $4)
			  ORDER BY arrival_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, email, from, to, excludeID)
	if err != nil {
		return nil, fmt.Errorf("find overlapping reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var item domain.Reservation
		var cancelled sql.NullTime
		if err = rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.ArrivalDate, &item.DepartureDate,
			&item.CreatedAt, &item.UpdatedAt, &cancelled, &item.Version,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		if cancelled.Valid {
			item.CancelledAt = &cancelled.Time
		}
		res = append(res, &item)
	}

	return res, rows.Err()
}

// Update bumps the version; a stale version in res means someone else saved
// first and the write is rejected with ErrConcurrencyConflict.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservation
			  SET name = $2, email = $3, arrival_date = $4, departure_date = $5,
			      update_date = $6, cancel_date = $7, version = version + 1
			  WHERE id = $1 AND version = $8`

	var cancelled sql.NullTime
	if res.CancelledAt != nil {
		cancelled = sql.NullTime{Time: *res.CancelledAt, Valid: true}
	}

	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.Name, res.Email, res.ArrivalDate, res.DepartureDate,
		res.UpdatedAt, cancelled, res.Version,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if affected == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM reservation WHERE id = $1)`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, res.ID)
		if checkErr == nil {
			checkErr = row.Scan(&exists)
		}
		if checkErr != nil {
			return fmt.Errorf("check reservation existence: %w", checkErr)
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrReservationNotFound, res.ID)
		}
		return fmt.Errorf("%w: reservation %s", domain.ErrConcurrencyConflict, res.ID)
	}

	res.Version++
	return nil
}
