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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create reserves seats and records the booking in one transaction.
//
// The availability check and the counter increment are a single conditional
// UPDATE: concurrent requests serialize on the row lock and the condition is
// re-evaluated after each commit, so the counter can never exceed total_seats.
// Returns the seats remaining after this booking.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	reserve := `UPDATE events
				SET booked_seats = booked_seats + $2, updated_at = now()
				WHERE id = $1 AND booked_seats + $2 <= total_seats
				RETURNING total_seats - booked_seats`

	var seatsLeft int
	err = tx.QueryRowContext(ctx, reserve, b.EventID, b.Seats).Scan(&seatsLeft)
	if errors.Is(err, sql.ErrNoRows) {
		// No row updated: the event is gone or the seats do not fit.
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, check, b.EventID).Scan(&exists); err != nil {
			return 0, fmt.Errorf("check event: %w", err)
		}
		if !exists {
			return 0, domain.ErrEventNotFound
		}
		return 0, domain.ErrNotEnoughSeats
	}
	if err != nil {
		return 0, fmt.Errorf("reserve seats: %w", err)
	}

	insert := `INSERT INTO bookings (id, event_id, user_id, username, seats, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, insert,
		b.ID, b.EventID, b.UserID, b.Username, b.Seats, b.CreatedAt,
	); err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return seatsLeft, nil
}

func (r *BookingRepository) SeatCounterDrift(ctx context.Context) ([]domain.SeatDrift, error) {
	query := `SELECT e.id, e.booked_seats, COALESCE(SUM(b.seats), 0) AS actual
			  FROM events e
			  LEFT JOIN bookings b ON b.event_id = e.id
			  GROUP BY e.id
			  HAVING e.booked_seats <> COALESCE(SUM(b.seats), 0)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("seat counter drift: %w", err)
	}
	defer rows.Close()

	var res []domain.SeatDrift
	for rows.Next() {
		var d domain.SeatDrift
		if err = rows.Scan(&d.EventID, &d.BookedSeats, &d.ActualSeats); err != nil {
			return nil, fmt.Errorf("scan drift: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}
