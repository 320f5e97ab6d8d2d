package domain

import (
	"context"
	"time"
)

// MovieCollection is the aggregate root owning the ordered movies of one
// user. It enforces title uniqueness and the creation policy bound to the
// user's tier; persistence is the caller's responsibility.
type MovieCollection struct {
	userID   UserID
	timezone string
	loc      *time.Location
	policy   CreateMoviePolicy
	movies   []Movie
	now      func() time.Time
}

// MovieCollectionSnapshot is the persistence shape of a MovieCollection: the
// full ordered movie list plus the identity of the owner. Repositories store
// and reload collections exclusively through snapshots.
type MovieCollectionSnapshot struct {
	UserID   UserID
	Timezone string
	Movies   []Movie
}

// CreateMovie appends a new movie with the given title. Duplicate titles are
// rejected before the policy is consulted, so a caller hitting both
// conditions at once always sees ErrDuplicateMovie. Titles are compared by
// exact string match.
func (c *MovieCollection) CreateMovie(title string) (Movie, error) {
	for _, movie := range c.movies {
		if movie.Title == title {
			return Movie{}, ErrDuplicateMovie
		}
	}

	if err := c.policy.CanCreate(c.movies, c.loc, c.now()); err != nil {
		return Movie{}, err
	}

	movie := Movie{
		ID:         NewMovieID(),
		Title:      title,
		CreateTime: c.now(),
	}

	c.movies = append(c.movies, movie)

	return movie, nil
}

// RollbackMovie removes the movie with the given title. It exists solely as
// the compensating action of the create saga, which only knows the title
// after a downstream failure; it is not a general deletion API.
func (c *MovieCollection) RollbackMovie(title string) error {
	for i, movie := range c.movies {
		if movie.Title == title {
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			return nil
		}
	}

	return ErrMovieDoesNotExist
}

// ListMovies returns the titles in insertion order.
func (c *MovieCollection) ListMovies() []string {
	titles := make([]string, len(c.movies))
	for i, movie := range c.movies {
		titles[i] = movie.Title
	}

	return titles
}

func (c *MovieCollection) UserID() UserID {
	return c.userID
}

func (c *MovieCollection) Timezone() string {
	return c.timezone
}

// Snapshot returns a deep copy of the collection state for persistence.
func (c *MovieCollection) Snapshot() MovieCollectionSnapshot {
	movies := make([]Movie, len(c.movies))
	copy(movies, c.movies)

	return MovieCollectionSnapshot{
		UserID:   c.userID,
		Timezone: c.timezone,
		Movies:   movies,
	}
}

// MovieCollectionRepository persists whole MovieCollection snapshots.
//
// FindUserMovieCollection returns (nil, nil) when the user has no collection
// yet; the tier and timezone are part of the lookup key because the policy is
// bound to the collection at load time. WithTransaction runs fn against a
// transaction-scoped repository: all finds and saves inside fn form a single
// atomic unit of work, committed when fn returns nil and rolled back when it
// returns an error.
type MovieCollectionRepository interface {
	FindUserMovieCollection(ctx context.Context, tier Tier, timezone string, userID UserID) (*MovieCollection, error)
	SaveCollection(ctx context.Context, collection *MovieCollection) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MovieCollectionRepository) error) error
}
