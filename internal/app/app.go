package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-cms/config"
	"github.com/daniilsolovey/blog-cms/internal/auth"
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/daniilsolovey/blog-cms/internal/rest"
	"github.com/daniilsolovey/blog-cms/internal/rpc"
)

const rpcPath = "/v1/rpc/"

type App struct {
	DB     db.DB
	Logger *slog.Logger
	Echo   *echo.Echo
	RPC    *zenrpc.Server
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(dbConnect)
	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.ExpiresIn.Duration)

	articles := blog.NewArticleManager(repo)
	tags := blog.NewTagManager(repo)
	projects := blog.NewProjectManager(repo)
	profile := blog.NewProfileManager(repo)

	handler := rest.NewHandler(rest.Services{
		Articles: articles,
		Tags:     tags,
		Comments: blog.NewCommentManager(repo, blog.NewSanitizer()),
		Projects: projects,
		Profile:  profile,
		Stats:    blog.NewStatsManager(repo),
		Auth:     blog.NewAuthManager(repo, auth.NewHasher(auth.DefaultCost), tokens),
	}, tokens, repo, rest.Options{
		AllowOrigins: cfg.Server.AllowOrigins,
		BodyLimit:    cfg.Server.BodyLimit,
		RateLimit: rest.RateLimitOptions{
			Enabled: cfg.RateLimit.Enabled,
			RPS:     cfg.RateLimit.RPS,
			Burst:   cfg.RateLimit.Burst,
		},
	}, logger)

	rpcServer := rpc.New(logger, rpc.NewBlogService(articles, tags, projects, profile, logger))

	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpcServer))
	e.Server.ReadTimeout = cfg.Server.ReadTimeout.Duration
	e.Server.WriteTimeout = cfg.Server.WriteTimeout.Duration

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		RPC:    rpcServer,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.InfoContext(ctx, "starting HTTP server", "addr", addr, "rpc", rpcPath)

	if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if closeErr := a.DB.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close db: %w", closeErr))
	}

	return err
}
