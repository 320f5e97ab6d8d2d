package domain

import "context"

// MovieDetails holds the descriptive data fetched from the external catalog.
// It is stored independently of the collection and joined by MovieID at read
// time.
type MovieDetails struct {
	Title    string
	Released string
	Genre    string
	Director string
}

// DetailsService fetches details for a title from the external catalog.
// "Not found", "unauthorized" and transport failures are not distinguished;
// all of them surface as a non-nil error.
type DetailsService interface {
	FetchDetails(ctx context.Context, title string) (MovieDetails, error)
}

// DetailsRepository persists fetched details keyed by movie identity.
// Find returns (nil, nil) when no details exist for the movie yet.
type DetailsRepository interface {
	Save(ctx context.Context, id MovieID, details MovieDetails) error
	Find(ctx context.Context, id MovieID) (*MovieDetails, error)
}
