package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
	"github.com/moviekeeper/movie-collection-service/internal/mocks"
	"github.com/moviekeeper/movie-collection-service/internal/movies"
	appvalidator "github.com/moviekeeper/movie-collection-service/internal/validator"
)

type testMocks struct {
	collections *mocks.MockCollectionRepo
	details     *mocks.MockDetailsRepo
	catalog     *mocks.MockDetailsService
	statuses    *mocks.MockUserStatusRepo
	factory     *domain.MovieCollectionFactory
}

func newTestApplication(t *testing.T) (*Application, *testMocks) {
	t.Helper()

	m := &testMocks{
		collections: &mocks.MockCollectionRepo{},
		details:     &mocks.MockDetailsRepo{},
		catalog:     &mocks.MockDetailsService{},
		statuses:    &mocks.MockUserStatusRepo{},
		factory:     domain.NewMovieCollectionFactory(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &Application{
		config:       Config{Env: "test"},
		logger:       logger,
		validator:    appvalidator.NewValidator(),
		createMovies: movies.NewCreateMovieService(m.collections, m.factory, m.details, m.catalog, m.statuses, logger),
		getMovies:    movies.NewGetMoviesService(m.collections, m.details, m.statuses, logger),
	}

	return app, m
}

func executeRequest(t *testing.T, app *Application, method, url, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewBufferString(raw)
		} else {
			jsonData, err := json.Marshal(body)
			if err != nil {
				t.Fatal(err)
			}
			reader = bytes.NewReader(jsonData)
		}
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")

	if userID != "" {
		r.Header.Set("X-User-Id", userID)
	}

	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, r)

	return w
}
