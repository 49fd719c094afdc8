// Package server wires configuration, storage, services and transports
// together and runs them until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/registerface/internal/cryptox"
	"github.com/dmitrijs2005/registerface/internal/logging"
	"github.com/dmitrijs2005/registerface/internal/server/config"
	"github.com/dmitrijs2005/registerface/internal/server/lockout"
	"github.com/dmitrijs2005/registerface/internal/server/metrics"
	"github.com/dmitrijs2005/registerface/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/registerface/internal/server/services"
	"github.com/dmitrijs2005/registerface/internal/server/storage"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/registerface/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	metrics         *metrics.Metrics
	userService     *services.UserService
	snapshotService *services.SnapshotService
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(c.LogFormat, os.Stdout)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sealer, err := cryptox.NewSealer([]byte(c.SecretKey))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sealer init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager(sealer)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	st, err := storage.NewS3Storage(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	m := metrics.New()

	us := services.NewUserService(db, rm, c,
		services.WithLockout(lockout.New(c.MaxFailedLogins, c.LockoutCooldown)),
		services.WithLoginObserver(m),
		services.WithLogger(logger),
	)
	ss := services.NewSnapshotService(db, rm, st, c)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		metrics:         m,
		userService:     us,
		snapshotService: ss,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.snapshotService, app.config.SecretKey, app.metrics)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := metrics.NewServer(app.config.MetricsAddr, app.metrics, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until SIGINT, SIGTERM or SIGQUIT, or until one of the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
