package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ticketbooking/internal/config"
	"github.com/GlebRadaev/ticketbooking/internal/handlers"
	"github.com/GlebRadaev/ticketbooking/internal/pg"
	"github.com/GlebRadaev/ticketbooking/internal/repo"
	"github.com/GlebRadaev/ticketbooking/internal/service"
	"github.com/GlebRadaev/ticketbooking/internal/storage"
	"github.com/GlebRadaev/ticketbooking/pkg/auth"
	"github.com/GlebRadaev/ticketbooking/pkg/logger"
)

const redisKeyPrefix = "ticketbooking:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	ledger *service.Ledger
	repo   *repo.Repositories

	closers []func()
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	backend, err := a.buildBackend(ctx)
	if err != nil {
		a.close()
		return err
	}
	store := storage.New(backend, storage.WithStrictShape(cfg.StrictShape))

	a.repo = repo.New(store, cfg.AccountsResource, cfg.OrdersResource)
	if err := a.repo.Load(ctx); err != nil {
		zap.L().Error("load ledger failed: ", zap.Error(err))
		a.close()
		return fmt.Errorf("can't load ledger: %w", err)
	}
	a.ledger = service.New(a.repo)
	a.api = handlers.New(a.ledger, auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

func (a *Application) buildBackend(ctx context.Context) (storage.Backend, error) {
	switch a.cfg.Storage {
	case config.StorageFile:
		return storage.NewFileBackend(a.cfg.DataDir), nil
	case config.StoragePostgres:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		return storage.NewPostgresBackend(pg.New(pool)), nil
	case config.StorageRedis:
		client, err := getRedisClient(ctx, a.cfg)
		if err != nil {
			zap.L().Error("connect redis failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't connect redis: %w", err)
		}
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				zap.L().Error("close redis failed: ", zap.Error(err))
			}
		})
		return storage.NewRedisBackend(client, redisKeyPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported storage: %s", a.cfg.Storage)
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func getRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: corsHandler(a.cfg, router),
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// corsHandler exposes the Authorization header so browser clients can read
// the token returned by login.
func corsHandler(cfg *config.Config, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Authorization"},
		MaxAge:         300,
	}).Handler(next)
}

// close releases storage connections in reverse order of creation.
func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
