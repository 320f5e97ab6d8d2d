package integration_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moviekeeper/movie-collection-service/internal/app"
	"github.com/moviekeeper/movie-collection-service/internal/repository"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "movie_collection"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	omdbAPIKey = "validTestApiKey"
)

// omdbResponses is the catalog served by the stub OMDb server. Titles not
// listed here get a "Movie not found!" response.
var omdbResponses = map[string]string{
	"Batman":          `{"Title": "Batman", "Released": "23 Jun 1989", "Genre": "Action, Adventure", "Director": "Tim Burton", "Response": "True"}`,
	"Batman Returns":  `{"Title": "Batman Returns", "Released": "19 Jun 1992", "Genre": "Action, Crime, Fantasy", "Director": "Tim Burton", "Response": "True"}`,
	"Batman Forever":  `{"Title": "Batman Forever", "Released": "16 Jun 1995", "Genre": "Action, Adventure", "Director": "Joel Schumacher", "Response": "True"}`,
	"Batman & Robin":  `{"Title": "Batman & Robin", "Released": "20 Jun 1997", "Genre": "Action, Sci-Fi", "Director": "Joel Schumacher", "Response": "True"}`,
	"Batman Begins":   `{"Title": "Batman Begins", "Released": "15 Jun 2005", "Genre": "Action, Crime, Drama", "Director": "Christopher Nolan", "Response": "True"}`,
	"The Dark Knight": `{"Title": "The Dark Knight", "Released": "18 Jul 2008", "Genre": "Action, Crime, Drama", "Director": "Christopher Nolan", "Response": "True"}`,
}

type TestApp struct {
	App        *app.Application
	DB         *pgxpool.Pool
	StatusRepo *repository.PostgresUserStatusRepository
	cleanup    func()
}

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
	omdbStub       *httptest.Server
	server         *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	redisContainer, err := getCacheContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	s.dbContainer = postgresContainer
	s.cacheContainer = redisContainer

	s.omdbStub = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("apikey") != omdbAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"Response": "False", "Error": "Invalid API key!"}`)
			return
		}

		body, ok := omdbResponses[r.URL.Query().Get("t")]
		if !ok {
			fmt.Fprint(w, `{"Response": "False", "Error": "Movie not found!"}`)
			return
		}

		fmt.Fprint(w, body)
	}))

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
		DB: app.DBConfig{
			DSN:          postgresContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          redisContainer.ConnectionString,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Omdb: app.OmdbConfig{
			BaseURL: s.omdbStub.URL,
			APIKey:  omdbAPIKey,
			Timeout: 5 * time.Second,
		},
	}

	testApp, err := newTestApp(cfg)
	if err != nil {
		s.T().Fatalf("cannot initialize app: %s", err)
	}

	s.app = testApp
	s.server = httptest.NewServer(testApp.App.Routes())
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.omdbStub != nil {
		s.omdbStub.Close()
	}
	if s.app != nil {
		s.app.cleanup()
	}
	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	application, appCleanup, err := app.NewApplication(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		appCleanup()
		return nil, err
	}

	return &TestApp{
		App:        application,
		DB:         db,
		StatusRepo: repository.NewPostgresUserStatusRepository(db),
		cleanup: func() {
			db.Close()
			appCleanup()
		},
	}, nil
}

// truncateTables resets the stored state between tests.
func (s *BaseSuite) truncateTables() {
	ctx := context.Background()

	tables := []string{"collection_movies", "movie_collections", "movie_details", "user_statuses"}

	for _, table := range tables {
		_, err := s.app.DB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		s.Require().NoError(err)
	}
}
