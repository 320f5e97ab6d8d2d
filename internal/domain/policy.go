package domain

import "time"

// basicMonthlyLimit is the number of movies a basic user may create within
// one calendar month.
const basicMonthlyLimit = 5

// CreateMoviePolicy decides whether a new movie may be added to a collection
// holding the given movies at the given instant. A nil return allows the
// creation; a non-nil return is one of the policy errors from errors.go.
type CreateMoviePolicy interface {
	CanCreate(movies []Movie, loc *time.Location, now time.Time) error
}

// BasicUserPolicy limits basic users to basicMonthlyLimit movies per calendar
// month. The month is evaluated in the collection's timezone, not in UTC, so
// users near a large UTC offset see the boundary roll over at their local
// midnight.
type BasicUserPolicy struct{}

func (BasicUserPolicy) CanCreate(movies []Movie, loc *time.Location, now time.Time) error {
	if numberOfMoviesInMonth(movies, loc, now) >= basicMonthlyLimit {
		return ErrTooManyMoviesInAMonth
	}

	return nil
}

func numberOfMoviesInMonth(movies []Movie, loc *time.Location, now time.Time) int {
	localNow := now.In(loc)

	count := 0
	for _, movie := range movies {
		localCreateTime := movie.CreateTime.In(loc)

		if localCreateTime.Year() == localNow.Year() && localCreateTime.Month() == localNow.Month() {
			count++
		}
	}

	return count
}

// PremiumUserPolicy places no limit on movie creation.
type PremiumUserPolicy struct{}

func (PremiumUserPolicy) CanCreate([]Movie, *time.Location, time.Time) error {
	return nil
}
