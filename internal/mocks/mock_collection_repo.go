package mocks

import (
	"context"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

type MockCollectionRepo struct {
	domain.MovieCollectionRepository
	FindUserMovieCollectionFunc func(ctx context.Context, tier domain.Tier, timezone string, userID domain.UserID) (*domain.MovieCollection, error)
	SaveCollectionFunc          func(ctx context.Context, collection *domain.MovieCollection) error
	WithTransactionFunc         func(ctx context.Context, fn func(ctx context.Context, repo domain.MovieCollectionRepository) error) error
}

func (m *MockCollectionRepo) FindUserMovieCollection(
	ctx context.Context,
	tier domain.Tier,
	timezone string,
	userID domain.UserID,
) (*domain.MovieCollection, error) {
	return m.FindUserMovieCollectionFunc(ctx, tier, timezone, userID)
}

func (m *MockCollectionRepo) SaveCollection(ctx context.Context, collection *domain.MovieCollection) error {
	return m.SaveCollectionFunc(ctx, collection)
}

// WithTransaction runs fn against the mock itself when no override is set.
func (m *MockCollectionRepo) WithTransaction(
	ctx context.Context,
	fn func(ctx context.Context, repo domain.MovieCollectionRepository) error,
) error {
	if m.WithTransactionFunc != nil {
		return m.WithTransactionFunc(ctx, fn)
	}

	return fn(ctx, m)
}
