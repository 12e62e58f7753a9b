package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/golang-cz/devslog"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-cms/config"
	_ "github.com/daniilsolovey/blog-cms/docs"
	"github.com/daniilsolovey/blog-cms/internal/app"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database]")
	flJWTSecret   = flag.String("jwt-secret", "", "token signing secret, overrides [Auth] Secret")
	flMigrate     = flag.Bool("migrate", true, "apply database migrations on startup")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blog CMS API
// @version 1.0
// @description Personal blog CMS: articles, tags, comments, projects, profile and stats
// @host localhost:3001
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.ApplyDatabaseURL(*flDatabaseURL))
	}
	if *flJWTSecret != "" {
		cfg.Auth.Secret = *flJWTSecret
	}
	exitOnError(cfg.Validate())

	ctx := context.Background()

	if *flMigrate {
		exitOnError(migrate(ctx))
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service := app.New(&cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context) error {
	m, err := db.NewMigrator(&cfg.Database, cfg.App.MigrationsDir, lg)
	if err != nil {
		return err
	}
	defer m.Close()

	return m.Up(ctx)
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(devslog.NewHandler(os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
