package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moviekeeper/movie-collection-service/internal/domain"
	"github.com/moviekeeper/movie-collection-service/internal/movies"
	"github.com/moviekeeper/movie-collection-service/internal/omdb"
	"github.com/moviekeeper/movie-collection-service/internal/repository"
	appvalidator "github.com/moviekeeper/movie-collection-service/internal/validator"
	"github.com/moviekeeper/movie-collection-service/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	createMovies *movies.CreateMovieService
	getMovies    *movies.GetMoviesService
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Omdb             OmdbConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type OmdbConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL (empty disables the details cache)")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Omdb.BaseURL, "omdb-base-url", "https://www.omdbapi.com", "OMDb API base URL")
	flag.StringVar(&cfg.Omdb.APIKey, "omdb-api-key", "", "OMDb API key")
	flag.DurationVar(&cfg.Omdb.Timeout, "omdb-timeout", 10*time.Second, "OMDb request timeout")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, cleanup, err := NewApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return err
	}
	defer cleanup()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.Serve()
}

// NewApplication wires the repositories, the external catalog client and the
// use-case services together. The returned cleanup closes the connection
// pools.
func NewApplication(cfg Config, logger *slog.Logger) (*Application, func(), error) {
	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	factory := domain.NewMovieCollectionFactory()

	collectionRepo := repository.NewPostgresCollectionRepository(db, factory)
	detailsRepo := repository.NewPostgresDetailsRepository(db)
	statusRepo := repository.NewPostgresUserStatusRepository(db)

	catalog := omdb.NewClient(cfg.Omdb.BaseURL, cfg.Omdb.APIKey, cfg.Omdb.Timeout, redisClient, logger)

	app := &Application{
		config:       cfg,
		logger:       logger,
		db:           db,
		redis:        redisClient,
		validator:    appvalidator.NewValidator(),
		createMovies: movies.NewCreateMovieService(collectionRepo, factory, detailsRepo, catalog, statusRepo, logger),
		getMovies:    movies.NewGetMoviesService(collectionRepo, detailsRepo, statusRepo, logger),
	}

	cleanup := func() {
		db.Close()
		if redisClient != nil {
			redisClient.Close()
		}
	}

	return app, cleanup, nil
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newRedisClient(cfg Config) (redis.UniversalClient, error) {
	if cfg.Redis.URL == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

// Redis exposes the cache client for integration tests and diagnostics.
func (app *Application) Redis() redis.UniversalClient {
	return app.redis
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("movie-collection-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Use(app.requireUser)
		r.Post("/", app.CreateMovieHandler)
		r.Get("/", app.GetMoviesHandler)
	})

	return r
}
