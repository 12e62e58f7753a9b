package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type MonthlyStatsRequest struct {
	Year *int `query:"year" validate:"omitnil,min=1970,max=9999"`
}

// Overview handles GET /stats/overview
// @Summary Dashboard totals
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.Overview
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /stats/overview [get]
func (h *Handler) Overview(c echo.Context) error {
	overview, err := h.stats.Overview(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewOverview(overview))
}

// ArticleStats handles GET /stats/articles
// @Summary Article counts and most viewed articles
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.ArticleStats
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /stats/articles [get]
func (h *Handler) ArticleStats(c echo.Context) error {
	stats, err := h.stats.ArticleStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticleStats(stats))
}

// MonthlyStats handles GET /stats/monthly
// @Summary Monthly activity for a year
// @Description Always returns twelve entries
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (default: current)"
// @Success 200 {object} rest.MonthlyStats
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /stats/monthly [get]
func (h *Handler) MonthlyStats(c echo.Context) error {
	var req MonthlyStatsRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	stats, err := h.stats.MonthlyStats(c.Request().Context(), deref(req.Year))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewMonthlyStats(stats))
}

// TagStats handles GET /stats/tags
// @Summary Tags by article count
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.TagStat
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /stats/tags [get]
func (h *Handler) TagStats(c echo.Context) error {
	tags, err := h.stats.TagStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTagStat))
}

// RecentActivity handles GET /stats/recent-activity
// @Summary Latest articles, comments and projects
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.RecentActivity
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /stats/recent-activity [get]
func (h *Handler) RecentActivity(c echo.Context) error {
	items, err := h.stats.RecentActivity(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, RecentActivity{Items: Map(items, NewActivity)})
}
