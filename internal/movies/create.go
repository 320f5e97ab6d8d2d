package movies

import (
	"context"
	"errors"
	"log/slog"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

// ErrServiceUnavailable is the uniform "try again" error for every
// infrastructure failure. Callers never see the underlying cause; it is
// logged here instead.
var ErrServiceUnavailable = errors.New("service unavailable")

// policyTimezone is the zone the creation policy is evaluated in. Collections
// are currently always created and looked up with it.
const policyTimezone = "UTC"

// CreateMovieService coordinates the create-movie saga: resolve the user's
// tier, create and persist the movie transactionally, fetch details from the
// external catalog, persist the details. A failure after the collection was
// persisted triggers the compensating rollback of the movie.
type CreateMovieService struct {
	collections domain.MovieCollectionRepository
	factory     *domain.MovieCollectionFactory
	details     domain.DetailsRepository
	catalog     domain.DetailsService
	statuses    domain.UserStatusRepository
	logger      *slog.Logger
}

func NewCreateMovieService(
	collections domain.MovieCollectionRepository,
	factory *domain.MovieCollectionFactory,
	details domain.DetailsRepository,
	catalog domain.DetailsService,
	statuses domain.UserStatusRepository,
	logger *slog.Logger,
) *CreateMovieService {
	return &CreateMovieService{
		collections: collections,
		factory:     factory,
		details:     details,
		catalog:     catalog,
		statuses:    statuses,
		logger:      logger,
	}
}

// CreateMovie runs the saga for one title. Domain failures (duplicate title,
// exhausted quota) are returned as-is; every infrastructure failure is
// collapsed to ErrServiceUnavailable.
func (s *CreateMovieService) CreateMovie(ctx context.Context, title string, userID domain.UserID) (domain.MovieID, error) {
	tier, err := s.statuses.GetStatusOfUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to resolve user status", "user_id", string(userID), "error", err)
		return "", ErrServiceUnavailable
	}

	movieID, err := s.createMovieInTransaction(ctx, tier, userID, title)
	if err != nil {
		return "", err
	}

	details, err := s.catalog.FetchDetails(ctx, title)
	if err != nil {
		s.logger.Error("failed to fetch movie details", "title", title, "error", err)
		s.rollbackMovieInTransaction(ctx, tier, userID, title)
		return "", ErrServiceUnavailable
	}

	if err := s.details.Save(ctx, movieID, details); err != nil {
		s.logger.Error("failed to save movie details", "title", title, "error", err)
		s.rollbackMovieInTransaction(ctx, tier, userID, title)
		return "", ErrServiceUnavailable
	}

	return movieID, nil
}

func (s *CreateMovieService) createMovieInTransaction(
	ctx context.Context,
	tier domain.Tier,
	userID domain.UserID,
	title string,
) (domain.MovieID, error) {
	var movieID domain.MovieID

	err := s.collections.WithTransaction(ctx, func(ctx context.Context, collections domain.MovieCollectionRepository) error {
		collection, err := collections.FindUserMovieCollection(ctx, tier, policyTimezone, userID)
		if err != nil {
			s.logger.Error("failed to load movie collection", "user_id", string(userID), "error", err)
			return ErrServiceUnavailable
		}

		if collection == nil {
			collection, err = s.factory.CreateMovieCollection(tier, policyTimezone, userID)
			if err != nil {
				return ErrServiceUnavailable
			}
		}

		movie, err := collection.CreateMovie(title)
		if err != nil {
			return err
		}

		if err := collections.SaveCollection(ctx, collection); err != nil {
			s.logger.Error("failed to save movie collection", "user_id", string(userID), "error", err)
			return ErrServiceUnavailable
		}

		movieID = movie.ID

		return nil
	})
	if err != nil {
		return "", err
	}

	return movieID, nil
}

// rollbackMovieInTransaction is the compensating action of the saga. Its own
// failures are swallowed on purpose: the caller already gets
// ErrServiceUnavailable, and surfacing an inconsistent-state warning on top
// of it would not make the response more actionable. A failed rollback can
// leave a movie without details behind; such entries are never exposed by the
// read path.
func (s *CreateMovieService) rollbackMovieInTransaction(
	ctx context.Context,
	tier domain.Tier,
	userID domain.UserID,
	title string,
) {
	err := s.collections.WithTransaction(ctx, func(ctx context.Context, collections domain.MovieCollectionRepository) error {
		collection, err := collections.FindUserMovieCollection(ctx, tier, policyTimezone, userID)
		if err != nil {
			return err
		}

		if collection == nil {
			return domain.ErrMovieDoesNotExist
		}

		if err := collection.RollbackMovie(title); err != nil {
			return err
		}

		return collections.SaveCollection(ctx, collection)
	})
	if err != nil {
		s.logger.Error("failed to roll back movie after saga failure",
			"title", title,
			"user_id", string(userID),
			"error", err,
		)
	}
}
