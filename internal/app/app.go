package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/nikfrants/biketransfer/internal/bot"
	"github.com/nikfrants/biketransfer/internal/catalog"
	"github.com/nikfrants/biketransfer/internal/config"
	"github.com/nikfrants/biketransfer/internal/handler"
	"github.com/nikfrants/biketransfer/internal/middleware"
	"github.com/nikfrants/biketransfer/internal/notification"
	"github.com/nikfrants/biketransfer/internal/repository"
	"github.com/nikfrants/biketransfer/internal/router"
	"github.com/nikfrants/biketransfer/internal/scheduler"
	"github.com/nikfrants/biketransfer/internal/service"
	"github.com/nikfrants/biketransfer/internal/session"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	bot        *bot.Bot
	scheduler  *scheduler.Scheduler
	catalogs   *catalog.Provider
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BikeTransfer",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initCatalog(); err != nil {
		return nil, fmt.Errorf("init catalog: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initCatalog() error {
	c, err := catalog.Load(a.cfg.Catalog.Path)
	if err != nil {
		return err
	}

	a.catalogs = catalog.NewProvider(c)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "catalog loaded",
		logger.String("path", a.cfg.Catalog.Path),
		logger.Int("events", len(c.Events())),
	)

	return nil
}

func (a *App) initServices() error {
	applicationRepo := repository.NewApplicationRepo(a.db)
	profileRepo := repository.NewProfileRepo(a.db)

	api, err := tgbotapi.NewBotAPI(a.cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}

	notifier := notification.NewTelegramNotifier(api, a.cfg.Telegram.AdminChatIDs, a.log)

	flow := service.NewFlowService(a.catalogs, profileRepo, applicationRepo, notifier, a.log)

	sessions := session.NewStore()
	a.bot = bot.New(api, flow, sessions, a.log)

	a.scheduler = scheduler.New(
		sessions,
		a.cfg.Sessions.SweepInterval,
		a.cfg.Sessions.IdleTTL,
		a.log,
	)

	applicationService := service.NewApplicationService(applicationRepo)
	profileService := service.NewProfileService(profileRepo)

	h := handler.NewHandler(applicationService, profileService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)
	go a.watchReload(ctx)

	errCh := make(chan error, 2)

	go func() {
		if err := a.bot.Run(ctx); err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("telegram bot: %w", err)
		}
	}()

	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// watchReload re-reads the catalog file on SIGHUP, swapping it in
// atomically so in-flight conversations keep a consistent snapshot.
func (a *App) watchReload(ctx context.Context) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			c, err := catalog.Load(a.cfg.Catalog.Path)
			if err != nil {
				a.log.Error("catalog reload failed, keeping previous catalog",
					logger.String("path", a.cfg.Catalog.Path),
					logger.String("error", err.Error()),
				)
				continue
			}
			a.catalogs.Replace(c)
			a.log.Info("catalog reloaded",
				logger.Int("events", len(c.Events())),
			)
		}
	}
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
