package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new user row. Username uniqueness is enforced by the
// database constraint, not by a pre-check, so concurrent registrations of
// the same name resolve at commit time.
func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, user.Username, user.Password).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Debug().Str("username", user.Username).Msg("username already taken")
			return nil, model.ErrUsernameTaken
		}
		r.logger.Error().Err(err).Str("username", user.Username).Msg("failed to insert user")
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &user, nil
}

// GetByCredentials retrieves the user matching both username and password
// exactly (case-sensitive equality).
func (r *userRepository) GetByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE username = $1 AND password = $2
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, username, password).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("username", username).Msg("no user matched credentials")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("username", username).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}
