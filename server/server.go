// Package server boots the process: backing stores, migrations, jobs and the
// HTTP listener, and tears them down again on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"MediSure/config"
	"MediSure/config/db"
	"MediSure/config/jwt"
	"MediSure/config/logger"
	"MediSure/config/redis"
	"MediSure/jobs"
	"MediSure/repository"
	"MediSure/services"
	"MediSure/session"
	"MediSure/util"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	Config *config.Config

	// CacheEnabled connects redis for the scan report cache even when
	// sessions live elsewhere.
	CacheEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	MigrationEnabled bool
	MigrationHandler func(ctx context.Context) error

	JobsEnabled bool
	JobsHandler func(app *App) (*cron.Cron, error)

	WebServerPreHandler func(r *gin.Engine, app *App)
}

// App is everything a handler or job needs once the stores are up.
type App struct {
	Config   *config.Config
	Repos    repository.Repositories
	Sessions session.Store
	Services *services.Services
}

func GetDefaultOptions(cfg *config.Config) Options {
	return Options{
		Config:           cfg,
		CacheEnabled:     cfg.StoreBackend == config.StoreMongo,
		WebServerEnabled: true,
		WebServerPort:    cfg.Port,
		MigrationEnabled: cfg.StoreBackend == config.StoreMongo,
		JobsEnabled:      cfg.JobsEnabled,
	}
}

/*
* Connect mongo when either store lives there
* Connect redis for sessions, or for the cache when asked
* A redis failure is fatal for sessions but only disables the cache
 */
func Bootstrap(ctx context.Context, cfg *config.Config, cacheEnabled bool) (*App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.StoreBackend == config.StoreMongo || cfg.SessionBackend == config.StoreMongo {
		if err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase); err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { db.Disconnect(context.Background()) })
	}

	if cfg.SessionBackend == config.StoreRedis || cacheEnabled {
		if err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			if cfg.SessionBackend == config.StoreRedis {
				cleanup()
				return nil, func() {}, err
			}
			logger.Log.Warn("Redis unavailable, scan report cache disabled", zap.Error(err))
		} else {
			closers = append(closers, redis.Close)
		}
	}

	app := &App{Config: cfg}
	switch cfg.StoreBackend {
	case config.StoreMongo:
		app.Repos = repository.NewMongoRepositories()
	case config.StoreMemory:
		app.Repos = repository.NewMemoryRepositories()
	default:
		cleanup()
		return nil, func() {}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	switch cfg.SessionBackend {
	case config.StoreRedis:
		app.Sessions = session.NewRedisStore(redis.Rdb, cfg.SessionTTL)
	case config.StoreMongo:
		app.Sessions = session.NewMongoStore(db.OpenCollections(util.SessionCollection), cfg.SessionTTL)
	case config.StoreMemory:
		app.Sessions = session.NewMemoryStore(cfg.SessionTTL)
	default:
		cleanup()
		return nil, func() {}, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	var cache services.ReportCache
	if redis.Rdb != nil {
		cache = redis.NewCache(redis.Rdb, cfg.CacheTTL)
	}
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.SessionTTL)
	app.Services = services.New(app.Repos, app.Sessions, tokens, cache, cfg.ImageBaseURL)

	return app, cleanup, nil
}

// NewEngine builds the gin engine with recovery and request logging.
func NewEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware())
	return r
}

/*
* Bring up the stores, then migrations, then jobs, then the listener
* Block until a signal arrives and shut everything down in reverse
 */
func Start(opts Options) error {
	cfg := opts.Config
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := Bootstrap(ctx, cfg, opts.CacheEnabled)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(ctx); err != nil {
			return err
		}
	}

	if opts.JobsEnabled && opts.JobsHandler != nil {
		scheduler, err := opts.JobsHandler(app)
		if err != nil {
			return err
		}
		defer jobs.Stop(scheduler)
	}

	if !opts.WebServerEnabled {
		<-ctx.Done()
		return nil
	}

	r := NewEngine(cfg)
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r, app)
	}

	srv := &http.Server{
		Addr:              ":" + opts.WebServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server listening", zap.String("port", opts.WebServerPort), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
