package domain

import (
	"fmt"
	"time"
)

// MovieCollectionFactory builds MovieCollections with the creation policy
// selected by tier. The clock is injectable so that policy evaluation can be
// pinned in tests.
type MovieCollectionFactory struct {
	now func() time.Time
}

func NewMovieCollectionFactory() *MovieCollectionFactory {
	return &MovieCollectionFactory{now: time.Now}
}

func NewMovieCollectionFactoryWithClock(now func() time.Time) *MovieCollectionFactory {
	return &MovieCollectionFactory{now: now}
}

// CreateMovieCollection returns a fresh empty collection for the user.
// Timezone must be a valid IANA zone name.
func (f *MovieCollectionFactory) CreateMovieCollection(tier Tier, timezone string, userID UserID) (*MovieCollection, error) {
	return f.RestoreMovieCollection(tier, MovieCollectionSnapshot{
		UserID:   userID,
		Timezone: timezone,
	})
}

// RestoreMovieCollection reconstitutes a collection from a persisted
// snapshot, binding the policy for the given tier. An unknown tier falls back
// to the basic policy, matching the user status lookup's default.
func (f *MovieCollectionFactory) RestoreMovieCollection(tier Tier, snapshot MovieCollectionSnapshot) (*MovieCollection, error) {
	loc, err := time.LoadLocation(snapshot.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid collection timezone %q: %w", snapshot.Timezone, err)
	}

	movies := make([]Movie, len(snapshot.Movies))
	copy(movies, snapshot.Movies)

	return &MovieCollection{
		userID:   snapshot.UserID,
		timezone: snapshot.Timezone,
		loc:      loc,
		policy:   policyForTier(tier),
		movies:   movies,
		now:      f.now,
	}, nil
}

func policyForTier(tier Tier) CreateMoviePolicy {
	if tier == TierPremium {
		return PremiumUserPolicy{}
	}

	return BasicUserPolicy{}
}
