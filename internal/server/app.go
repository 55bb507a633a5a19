// Package server initializes and runs the application: it opens the
// database, applies migrations, wires the services and starts the HTTP
// server with graceful shutdown.
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

	"github.com/edgcastillo/saveddit/internal/cryptox"
	"github.com/edgcastillo/saveddit/internal/logging"
	"github.com/edgcastillo/saveddit/internal/reddit"
	"github.com/edgcastillo/saveddit/internal/server/config"
	srvhttp "github.com/edgcastillo/saveddit/internal/server/http"
	"github.com/edgcastillo/saveddit/internal/server/repositories/repomanager"
	"github.com/edgcastillo/saveddit/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	userService   *services.UserService
	redditService *services.RedditService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	encKey, err := cryptox.ParseKey(cfg.EncryptionKeyHex)
	if err != nil {
		return nil, fmt.Errorf("encryption key error: %w", err)
	}

	rc := reddit.NewClient(cfg.RedditClientID, cfg.RedditClientSecret, cfg.RedditUserAgent, cfg.ExternalCallTimeout)

	us := services.NewUserService(db, rm, cfg)
	rs := services.NewRedditService(db, rm, rc, rc, encKey, cfg)

	return &App{
		config:        cfg,
		logger:        logger,
		db:            db,
		userService:   us,
		redditService: rs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := srvhttp.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.redditService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
