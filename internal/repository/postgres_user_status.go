package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

type PostgresUserStatusRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserStatusRepository(db *pgxpool.Pool) *PostgresUserStatusRepository {
	return &PostgresUserStatusRepository{
		db: db,
	}
}

// GetStatusOfUser resolves users without a stored status to basic.
func (p *PostgresUserStatusRepository) GetStatusOfUser(ctx context.Context, userID domain.UserID) (domain.Tier, error) {
	query := `SELECT status FROM user_statuses WHERE user_id = $1`

	var tier domain.Tier

	err := p.db.QueryRow(ctx, query, string(userID)).Scan(&tier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TierBasic, nil
		}

		return "", err
	}

	return tier, nil
}

// UpsertStatus records a tier change for a user, typically when a
// subscription event arrives from the payment system.
func (p *PostgresUserStatusRepository) UpsertStatus(ctx context.Context, userID domain.UserID, tier domain.Tier) error {
	query := `
		INSERT INTO user_statuses (user_id, status)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET status = EXCLUDED.status, updated_at = NOW()
	`

	_, err := p.db.Exec(ctx, query, string(userID), string(tier))

	return err
}
