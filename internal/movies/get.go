package movies

import (
	"context"
	"log/slog"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

// MovieView is one row of the read model: a movie joined with its fetched
// details.
type MovieView struct {
	ID       domain.MovieID
	Title    string
	Released string
	Genre    string
	Director string
}

// GetMoviesService assembles the movies of a user's collection together with
// their details. Movies whose details have not been persisted yet, because a
// saga is in flight or its rollback failed, are omitted from the result.
type GetMoviesService struct {
	collections domain.MovieCollectionRepository
	details     domain.DetailsRepository
	statuses    domain.UserStatusRepository
	logger      *slog.Logger
}

func NewGetMoviesService(
	collections domain.MovieCollectionRepository,
	details domain.DetailsRepository,
	statuses domain.UserStatusRepository,
	logger *slog.Logger,
) *GetMoviesService {
	return &GetMoviesService{
		collections: collections,
		details:     details,
		statuses:    statuses,
		logger:      logger,
	}
}

// GetMovies returns the displayable movies of the user in insertion order. A
// user without a collection gets an empty list, not an error.
func (s *GetMoviesService) GetMovies(ctx context.Context, userID domain.UserID) ([]MovieView, error) {
	tier, err := s.statuses.GetStatusOfUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to resolve user status", "user_id", string(userID), "error", err)
		return nil, ErrServiceUnavailable
	}

	collection, err := s.collections.FindUserMovieCollection(ctx, tier, policyTimezone, userID)
	if err != nil {
		s.logger.Error("failed to load movie collection", "user_id", string(userID), "error", err)
		return nil, ErrServiceUnavailable
	}

	if collection == nil {
		return []MovieView{}, nil
	}

	snapshot := collection.Snapshot()
	views := make([]MovieView, 0, len(snapshot.Movies))

	for _, movie := range snapshot.Movies {
		details, err := s.details.Find(ctx, movie.ID)
		if err != nil {
			s.logger.Error("failed to load movie details", "movie_id", string(movie.ID), "error", err)
			return nil, ErrServiceUnavailable
		}

		if details == nil {
			continue
		}

		views = append(views, MovieView{
			ID:       movie.ID,
			Title:    details.Title,
			Released: details.Released,
			Genre:    details.Genre,
			Director: details.Director,
		})
	}

	return views, nil
}
