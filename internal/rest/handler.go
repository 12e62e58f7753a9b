package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/auth"
	"github.com/daniilsolovey/blog-cms/internal/blog"
)

type ArticleService interface {
	Create(ctx context.Context, in blog.ArticleInput) (*blog.Article, error)
	Articles(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error)
	PublishedArticles(ctx context.Context, q blog.ArticleQuery) (blog.Page[blog.Article], error)
	ArticleByID(ctx context.Context, articleID int) (*blog.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*blog.Article, error)
	Update(ctx context.Context, articleID int, in blog.ArticleUpdate) (*blog.Article, error)
	Remove(ctx context.Context, articleID int) (*blog.Article, error)
}

type TagService interface {
	Create(ctx context.Context, in blog.TagInput) (*blog.Tag, error)
	Tags(ctx context.Context) ([]blog.Tag, error)
	TagByID(ctx context.Context, tagID int) (*blog.Tag, error)
	Update(ctx context.Context, tagID int, in blog.TagUpdate) (*blog.Tag, error)
	Remove(ctx context.Context, tagID int) (*blog.Tag, error)
	PopularTags(ctx context.Context, limit int) ([]blog.Tag, error)
}

type CommentService interface {
	Create(ctx context.Context, in blog.CommentInput) (*blog.Comment, error)
	Comments(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error)
	PendingComments(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error)
	ApprovedComments(ctx context.Context, q blog.CommentQuery) (blog.Page[blog.Comment], error)
	CommentByID(ctx context.Context, commentID int) (*blog.Comment, error)
	Update(ctx context.Context, commentID int, in blog.CommentUpdate) (*blog.Comment, error)
	Approve(ctx context.Context, commentID int) (*blog.Comment, error)
	Reject(ctx context.Context, commentID int) (*blog.Comment, error)
	Remove(ctx context.Context, commentID int) (*blog.Comment, error)
	Stats(ctx context.Context, articleID *int) (blog.CommentStats, error)
}

type ProjectService interface {
	Create(ctx context.Context, in blog.ProjectInput) (*blog.Project, error)
	Projects(ctx context.Context, featured *bool) ([]blog.Project, error)
	FeaturedProjects(ctx context.Context) ([]blog.Project, error)
	ProjectByID(ctx context.Context, projectID int) (*blog.Project, error)
	Update(ctx context.Context, projectID int, in blog.ProjectUpdate) (*blog.Project, error)
	Remove(ctx context.Context, projectID int) (*blog.Project, error)
	Stats(ctx context.Context) (blog.ProjectStats, error)
}

type ProfileService interface {
	Profile(ctx context.Context) (*blog.Profile, error)
	Profiles(ctx context.Context) ([]blog.Profile, error)
	Create(ctx context.Context, in blog.ProfileInput) (*blog.Profile, error)
	UpdateFirst(ctx context.Context, in blog.ProfileInput) (*blog.Profile, error)
	Update(ctx context.Context, profileID int, in blog.ProfileInput) (*blog.Profile, error)
	Remove(ctx context.Context, profileID int) (*blog.Profile, error)
}

type StatsService interface {
	Overview(ctx context.Context) (blog.Overview, error)
	ArticleStats(ctx context.Context) (blog.ArticleStats, error)
	MonthlyStats(ctx context.Context, year int) (blog.MonthlyStats, error)
	TagStats(ctx context.Context) ([]blog.Tag, error)
	RecentActivity(ctx context.Context) ([]blog.Activity, error)
}

type AuthService interface {
	Register(ctx context.Context, in blog.RegisterInput) (*blog.User, error)
	Login(ctx context.Context, username, password string) (*blog.LoginResult, error)
}

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Articles ArticleService
	Tags     TagService
	Comments CommentService
	Projects ProjectService
	Profile  ProfileService
	Stats    StatsService
	Auth     AuthService
}

type Handler struct {
	articles ArticleService
	tags     TagService
	comments CommentService
	projects ProjectService
	profile  ProfileService
	stats    StatsService
	auth     AuthService

	tokens TokenParser
	db     Pinger
	opts   Options
	log    *slog.Logger
}

func NewHandler(s Services, tokens TokenParser, db Pinger, opts Options, log *slog.Logger) *Handler {
	return &Handler{
		articles: s.Articles,
		tags:     s.Tags,
		comments: s.Comments,
		projects: s.Projects,
		profile:  s.Profile,
		stats:    s.Stats,
		auth:     s.Auth,
		tokens:   tokens,
		db:       db,
		opts:     opts,
		log:      log,
	}
}

// requestError is a malformed request detected before reaching the domain layer.
type requestError struct {
	message string
	err     error
}

func (e *requestError) Error() string {
	if e.err == nil {
		return e.message
	}
	return e.message + ": " + e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

func (h *Handler) handleError(c echo.Context, err error) error {
	var (
		reqErr *requestError
		valErr *ValidationError
	)

	status, body := http.StatusInternalServerError, ErrorResponse{Message: "internal error"}
	switch {
	case errors.As(err, &reqErr):
		status, body = http.StatusBadRequest, ErrorResponse{Message: reqErr.message}
	case errors.As(err, &valErr):
		status, body = http.StatusBadRequest, ErrorResponse{Message: "validation failed", Errors: valErr.Errors}
	case errors.Is(err, blog.ErrValidation):
		status, body = http.StatusBadRequest, ErrorResponse{Message: blog.Message(err)}
	case errors.Is(err, blog.ErrConflict):
		status, body = http.StatusConflict, ErrorResponse{Message: blog.Message(err)}
	case errors.Is(err, blog.ErrNotFound):
		status, body = http.StatusNotFound, ErrorResponse{Message: blog.Message(err)}
	case errors.Is(err, blog.ErrUnauthorized):
		status, body = http.StatusUnauthorized, ErrorResponse{Message: blog.Message(err)}
	}

	ctx := c.Request().Context()
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(ctx, "handleError", "error", err, "statusCode", status, "path", c.Path())
	} else {
		h.log.WarnContext(ctx, "handleError", "error", err, "statusCode", status, "path", c.Path())
	}

	return c.JSON(status, body)
}

// bind decodes the request into req and validates it.
func (h *Handler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return &requestError{message: "invalid request parameters", err: err}
	}

	return c.Validate(req)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, &requestError{message: "invalid id", err: err}
	}

	return id, nil
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} rest.HealthResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
