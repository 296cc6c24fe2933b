package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, type, event_date, price, total_seats, booked_seats, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Type, e.Date, e.Price, e.TotalSeats, e.BookedSeats, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, name, type, event_date, price, total_seats, booked_seats, created_at, updated_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.Type, &e.Date, &e.Price,
		&e.TotalSeats, &e.BookedSeats, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, name, type, event_date, price, total_seats, booked_seats, created_at, updated_at
			  FROM events
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Name, &e.Type, &e.Date, &e.Price,
			&e.TotalSeats, &e.BookedSeats, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// Update applies a partial patch under a row lock so concurrent bookings
// cannot slip the counter above a lowered total_seats.
func (r *EventRepository) Update(ctx context.Context, id string, patch domain.UpdateEventInput) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT id, name, type, event_date, price, total_seats, booked_seats, created_at, updated_at
			  FROM events
			  WHERE id = $1
			  FOR UPDATE`

	var e domain.Event
	if err = tx.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Type, &e.Date, &e.Price,
		&e.TotalSeats, &e.BookedSeats, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Price != nil {
		e.Price = *patch.Price
	}
	if patch.TotalSeats != nil {
		e.TotalSeats = *patch.TotalSeats
	}

	if e.TotalSeats < e.BookedSeats {
		return nil, domain.ErrCapacityBelowBooked
	}

	e.UpdatedAt = time.Now().UTC()

	update := `UPDATE events
			   SET name = $2, type = $3, event_date = $4, price = $5, total_seats = $6, updated_at = $7
			   WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, update,
		e.ID, e.Name, e.Type, e.Date, e.Price, e.TotalSeats, e.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &e, nil
}
