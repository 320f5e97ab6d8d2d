package app

import (
	"errors"
	"net/http"

	"github.com/moviekeeper/movie-collection-service/api"
	"github.com/moviekeeper/movie-collection-service/internal/domain"
	"github.com/moviekeeper/movie-collection-service/internal/movies"
)

func (app *Application) CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userID := app.contextGetUserID(r)

	movieID, err := app.createMovies.CreateMovie(r.Context(), input.Title, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateMovie):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrTooManyMoviesInAMonth),
			errors.Is(err, domain.ErrCannotCreateMovie):
			app.forbiddenResponse(w, r, err)
		default:
			app.serviceUnavailableResponse(w, r, err)
		}
		return
	}

	resp := api.CreateMovieResponse{
		ID: string(movieID),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMoviesHandler(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUserID(r)

	views, err := app.getMovies.GetMovies(r.Context(), userID)
	if err != nil {
		app.serviceUnavailableResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieResponses(views),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponses(views []movies.MovieView) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(views))

	for i, view := range views {
		responses[i] = api.MovieResponse{
			ID:       string(view.ID),
			Title:    view.Title,
			Released: view.Released,
			Genre:    view.Genre,
			Director: view.Director,
		}
	}

	return responses
}
