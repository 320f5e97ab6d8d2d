package domain

import "errors"

var (
	ErrDuplicateMovie        = errors.New("a movie with the same title already exists in the collection")
	ErrTooManyMoviesInAMonth = errors.New("too many movies created in a month")
	ErrCannotCreateMovie     = errors.New("cannot create a movie")
	ErrMovieDoesNotExist     = errors.New("the movie does not exist in the collection")
)
