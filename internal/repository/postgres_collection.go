package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so the same repository
// code serves pooled and transaction-scoped calls.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresCollectionRepository stores MovieCollections as a collection row
// plus one row per movie, rewritten as a whole on every save.
type PostgresCollectionRepository struct {
	db      DBTX
	pool    *pgxpool.Pool
	factory *domain.MovieCollectionFactory
}

func NewPostgresCollectionRepository(pool *pgxpool.Pool, factory *domain.MovieCollectionFactory) *PostgresCollectionRepository {
	return &PostgresCollectionRepository{
		db:      pool,
		pool:    pool,
		factory: factory,
	}
}

func (p *PostgresCollectionRepository) FindUserMovieCollection(
	ctx context.Context,
	tier domain.Tier,
	timezone string,
	userID domain.UserID,
) (*domain.MovieCollection, error) {
	query := `
		SELECT user_id, timezone
		FROM movie_collections
		WHERE user_id = $1 AND timezone = $2
	`

	snapshot := domain.MovieCollectionSnapshot{}

	err := p.db.QueryRow(ctx, query, string(userID), timezone).Scan(&snapshot.UserID, &snapshot.Timezone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	query = `
		SELECT movie_id, title, create_time
		FROM collection_movies
		WHERE user_id = $1 AND timezone = $2
		ORDER BY position
	`

	rows, err := p.db.Query(ctx, query, string(userID), timezone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		err = rows.Scan(&movie.ID, &movie.Title, &movie.CreateTime)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	snapshot.Movies = movies

	return p.factory.RestoreMovieCollection(tier, snapshot)
}

func (p *PostgresCollectionRepository) SaveCollection(ctx context.Context, collection *domain.MovieCollection) error {
	snapshot := collection.Snapshot()

	query := `
		INSERT INTO movie_collections (user_id, timezone)
		VALUES ($1, $2)
		ON CONFLICT (user_id, timezone) DO NOTHING
	`

	_, err := p.db.Exec(ctx, query, string(snapshot.UserID), snapshot.Timezone)
	if err != nil {
		return err
	}

	query = `DELETE FROM collection_movies WHERE user_id = $1 AND timezone = $2`

	_, err = p.db.Exec(ctx, query, string(snapshot.UserID), snapshot.Timezone)
	if err != nil {
		return err
	}

	query = `
		INSERT INTO collection_movies (movie_id, user_id, timezone, position, title, create_time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, movie := range snapshot.Movies {
		_, err = p.db.Exec(ctx, query,
			string(movie.ID),
			string(snapshot.UserID),
			snapshot.Timezone,
			i,
			movie.Title,
			movie.CreateTime,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateMovie
			}

			return err
		}
	}

	return nil
}

// WithTransaction runs fn against a repository bound to a serializable
// transaction. Concurrent saves of the same collection surface as
// serialization failures here rather than as lost updates.
func (p *PostgresCollectionRepository) WithTransaction(
	ctx context.Context,
	fn func(ctx context.Context, repo domain.MovieCollectionRepository) error,
) error {
	if p.pool == nil {
		// Already transaction-scoped; join the ongoing unit of work.
		return fn(ctx, p)
	}

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}

	txRepo := &PostgresCollectionRepository{db: tx, factory: p.factory}

	err = fn(ctx, txRepo)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
