// Package server initializes and runs the WhatsUT chat server.
// It opens the store, applies migrations, selects the blob backend, wires
// the coordinator and serves it over gRPC until a signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/auth"
	"github.com/dmitrijs2005/whatsut/internal/server/blobstore"
	"github.com/dmitrijs2005/whatsut/internal/server/callbacks"
	"github.com/dmitrijs2005/whatsut/internal/server/config"
	"github.com/dmitrijs2005/whatsut/internal/server/coordinator"
	"github.com/dmitrijs2005/whatsut/internal/server/presence"
	"github.com/dmitrijs2005/whatsut/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/whatsut/internal/server/services"

	gs "github.com/dmitrijs2005/whatsut/internal/server/grpc"
)

var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}

	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	callbacks *callbacks.Registry
	grpc      *gs.GRPCServer
}

// NewApp connects to the store and builds every component. An unreachable
// store is an error; the caller treats it as fatal.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db unreachable: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	blobs, err := newBlobStore(ctx, c, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	users := services.NewUserService(db, rm, auth.NewBcryptHasher(), c)
	registry := callbacks.NewRegistry(&callbacks.GRPCDialer{}, c.CallbackTimeout, logger)

	coord := coordinator.New(coordinator.Deps{
		Users:       users,
		Messages:    services.NewMessageService(db, rm),
		Files:       services.NewFileService(db, rm, blobs, c.MaxFileSize, logger),
		Memberships: services.NewMembershipService(db, rm, logger),
		Bans:        services.NewBanService(db, rm, logger),
		Presence:    presence.NewTracker(c.PresenceTTL),
		Callbacks:   registry,
		Logger:      logger,
	})

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, coord, users, c.SecretKey, gs.Options{
		RequireToken: c.RequireToken,
		MaxFileSize:  c.MaxFileSize,
	})

	return &App{config: c, logger: logger, db: db, callbacks: registry, grpc: srv}, nil
}

// newBlobStore keeps payloads in Postgres unless an S3 endpoint is
// configured.
func newBlobStore(ctx context.Context, c *config.Config, db *sql.DB) (blobstore.Store, error) {
	if c.S3BaseEndpoint == "" {
		return blobstore.NewPostgresStore(db), nil
	}
	return blobstore.NewS3Store(ctx, blobstore.S3Config{
		RootUser:     c.S3RootUser,
		RootPassword: c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})
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
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// drains callback deliveries and closes the store.
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

	wg.Wait()

	if err := app.callbacks.Close(); err != nil {
		app.logger.Error(ctx, "closing callbacks", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
