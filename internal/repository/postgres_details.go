package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

type PostgresDetailsRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDetailsRepository(db *pgxpool.Pool) *PostgresDetailsRepository {
	return &PostgresDetailsRepository{
		db: db,
	}
}

func (p *PostgresDetailsRepository) Save(ctx context.Context, id domain.MovieID, details domain.MovieDetails) error {
	query := `
		INSERT INTO movie_details (movie_id, title, released, genre, director)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (movie_id) DO UPDATE
		SET title = EXCLUDED.title,
			released = EXCLUDED.released,
			genre = EXCLUDED.genre,
			director = EXCLUDED.director
	`

	_, err := p.db.Exec(ctx, query, string(id), details.Title, details.Released, details.Genre, details.Director)

	return err
}

func (p *PostgresDetailsRepository) Find(ctx context.Context, id domain.MovieID) (*domain.MovieDetails, error) {
	query := `
		SELECT title, released, genre, director
		FROM movie_details
		WHERE movie_id = $1
	`

	var details domain.MovieDetails

	err := p.db.QueryRow(ctx, query, string(id)).Scan(
		&details.Title,
		&details.Released,
		&details.Genre,
		&details.Director,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &details, nil
}
