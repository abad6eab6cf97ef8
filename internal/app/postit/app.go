package postit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/postit/internal/cache"
	"github.com/magabrotheeeer/postit/internal/config"
	"github.com/magabrotheeeer/postit/internal/lib/jwt"
	"github.com/magabrotheeeer/postit/internal/lib/password"
	"github.com/magabrotheeeer/postit/internal/lib/sl"
	"github.com/magabrotheeeer/postit/internal/migrations"
	authservice "github.com/magabrotheeeer/postit/internal/services/auth"
	noteservice "github.com/magabrotheeeer/postit/internal/services/note"
	"github.com/magabrotheeeer/postit/internal/storage/memory"
	"github.com/magabrotheeeer/postit/internal/storage/postgresql"
)

const shutdownTimeout = 15 * time.Second

// Storage - хранилище пользователей и заметок.
type Storage interface {
	authservice.UserRepository
	noteservice.Repository
	Ping(ctx context.Context) error
}

// App - HTTP-сервер со всеми зависимостями.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []func() error
}

// New создаёт хранилище, кэш, сервисы и маршрутизатор по конфигу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.postit.New"
	app := &App{logger: logger}

	storage, err := app.openStorage(ctx, cfg)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var noteCache noteservice.Cache = cache.Noop{}
	if cfg.CacheEnabled() {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, redisCache.Close)
		noteCache = redisCache
		logger.Info("note cache enabled", slog.String("address", cfg.AddressRedis))
	}

	key := []byte(cfg.JWTSecretKey)
	if len(key) == 0 {
		if key, err = jwt.NewKey(); err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("generated random token signing key")
	}

	authService := authservice.NewService(
		storage,
		password.NewHasher(cfg.PasswordCost),
		jwt.NewMaker(key, cfg.Issuer, cfg.TokenTTL),
		logger,
	)
	noteService := noteservice.NewService(storage, noteCache, cfg.NoteTTL, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, noteService, storage, newRegistry())

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	if cfg.Storage == config.StorageMemory {
		a.logger.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	}

	db, err := postgresql.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	return db, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler возвращает корневой HTTP-обработчик.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to release resource", sl.Err(err))
		}
	}
	a.closers = nil
}
