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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert finds or creates the user in one statement. DO UPDATE makes
// RETURNING yield the existing row when the username is already taken, so
// concurrent first logins resolve to the same user.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (id, username, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
			  RETURNING id, username, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, u.ID, u.Username, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	var out domain.User
	if err = row.Scan(&out.ID, &out.Username, &out.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, created_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
