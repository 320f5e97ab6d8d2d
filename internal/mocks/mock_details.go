package mocks

import (
	"context"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

type MockDetailsRepo struct {
	domain.DetailsRepository
	SaveFunc func(ctx context.Context, id domain.MovieID, details domain.MovieDetails) error
	FindFunc func(ctx context.Context, id domain.MovieID) (*domain.MovieDetails, error)
}

func (m *MockDetailsRepo) Save(ctx context.Context, id domain.MovieID, details domain.MovieDetails) error {
	return m.SaveFunc(ctx, id, details)
}

func (m *MockDetailsRepo) Find(ctx context.Context, id domain.MovieID) (*domain.MovieDetails, error) {
	return m.FindFunc(ctx, id)
}

type MockDetailsService struct {
	domain.DetailsService
	FetchDetailsFunc func(ctx context.Context, title string) (domain.MovieDetails, error)
}

func (m *MockDetailsService) FetchDetails(ctx context.Context, title string) (domain.MovieDetails, error) {
	return m.FetchDetailsFunc(ctx, title)
}
