package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is the opaque identifier of an authenticated user. How it is issued
// and verified is not this package's concern.
type UserID string

// MovieID identifies a single movie inside a collection. It is assigned by
// the server at creation time; the zero value means "not created yet".
type MovieID string

func NewMovieID() MovieID {
	return MovieID(uuid.NewString())
}

// Movie is one entry of a MovieCollection. It is immutable once constructed
// by MovieCollection.CreateMovie.
type Movie struct {
	ID         MovieID
	Title      string
	CreateTime time.Time
}

// Tier is the subscription status of a user, governing the movie creation
// policy bound to their collection.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)
