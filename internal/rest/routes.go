package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
)

type RateLimitOptions struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Options configures the HTTP surface around the handlers.
type Options struct {
	AllowOrigins []string
	BodyLimit    string
	RateLimit    RateLimitOptions
}

// RegisterRoutes builds the echo instance with middleware and every route.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: h.opts.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		MaxAge:       86400,
	}))
	if h.opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(h.opts.BodyLimit))
	}
	e.Use(h.loggingMiddleware)

	limit := h.rateLimit()
	guard := h.requireAuth

	h.registerAuthRoutes(e, limit, guard)
	h.registerArticleRoutes(e, guard)
	h.registerTagRoutes(e, guard)
	h.registerCommentRoutes(e, limit, guard)
	h.registerProjectRoutes(e, guard)
	h.registerProfileRoutes(e, guard)
	h.registerStatsRoutes(e, guard)
	h.registerSystemRoutes(e)

	return e
}

// rateLimit returns the limiter for abuse-prone public routes, or a no-op when disabled.
func (h *Handler) rateLimit() echo.MiddlewareFunc {
	o := h.opts.RateLimit
	if !o.Enabled || o.RPS <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return NewRateLimiter(rate.Limit(o.RPS), max(o.Burst, 1)).Middleware()
}

func (h *Handler) registerAuthRoutes(e *echo.Echo, limit, guard echo.MiddlewareFunc) {
	g := e.Group("/auth")
	g.POST("/register", h.Register, limit)
	g.POST("/login", h.Login, limit)
	g.POST("/logout", h.Logout, guard)
}

func (h *Handler) registerArticleRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/articles")
	g.GET("", h.Articles)
	g.POST("", h.CreateArticle, guard)
	g.GET("/published", h.PublishedArticles)
	g.GET("/slug/:slug", h.ArticleBySlug)
	g.GET("/:id", h.ArticleByID)
	g.PATCH("/:id", h.UpdateArticle, guard)
	g.DELETE("/:id", h.DeleteArticle, guard)
}

func (h *Handler) registerTagRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/tags")
	g.GET("", h.Tags)
	g.POST("", h.CreateTag, guard)
	g.GET("/popular", h.PopularTags)
	g.GET("/:id", h.TagByID)
	g.PATCH("/:id", h.UpdateTag, guard)
	g.DELETE("/:id", h.DeleteTag, guard)
}

func (h *Handler) registerCommentRoutes(e *echo.Echo, limit, guard echo.MiddlewareFunc) {
	g := e.Group("/comments")
	g.GET("", h.Comments)
	g.POST("", h.CreateComment, limit)
	g.GET("/pending", h.PendingComments, guard)
	g.GET("/approved", h.ApprovedComments)
	g.GET("/stats", h.CommentStats, guard)
	g.GET("/:id", h.CommentByID)
	g.PATCH("/:id", h.UpdateComment, guard)
	g.PATCH("/:id/approve", h.ApproveComment, guard)
	g.PATCH("/:id/reject", h.RejectComment, guard)
	g.DELETE("/:id", h.DeleteComment, guard)
}

func (h *Handler) registerProjectRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/projects")
	g.GET("", h.Projects)
	g.POST("", h.CreateProject, guard)
	g.GET("/featured", h.FeaturedProjects)
	g.GET("/stats", h.ProjectStats, guard)
	g.GET("/:id", h.ProjectByID)
	g.PATCH("/:id", h.UpdateProject, guard)
	g.DELETE("/:id", h.DeleteProject, guard)
}

func (h *Handler) registerProfileRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/profile")
	g.GET("", h.Profile)
	g.POST("", h.CreateProfile, guard)
	g.PATCH("", h.UpdateCurrentProfile, guard)
	g.GET("/all", h.Profiles, guard)
	g.PATCH("/:id", h.UpdateProfile, guard)
	g.DELETE("/:id", h.DeleteProfile, guard)
}

func (h *Handler) registerStatsRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	g := e.Group("/stats", guard)
	g.GET("/overview", h.Overview)
	g.GET("/articles", h.ArticleStats)
	g.GET("/monthly", h.MonthlyStats)
	g.GET("/tags", h.TagStats)
	g.GET("/recent-activity", h.RecentActivity)
}

func (h *Handler) registerSystemRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.swaggerDoc)
}

func (h *Handler) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
