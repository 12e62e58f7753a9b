package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/metrics"
)

type ArticleListRequest struct {
	Page    *int    `query:"page" validate:"omitnil,min=1"`
	Limit   *int    `query:"limit" validate:"omitnil,min=1,max=100"`
	Keyword *string `query:"keyword"`
	Status  *string `query:"status" validate:"omitnil,oneof=DRAFT PUBLISHED"`
	TagID   *int    `query:"tagId" validate:"omitnil,gt=0"`
}

func (r ArticleListRequest) ToModel() blog.ArticleQuery {
	return blog.ArticleQuery{
		Paging:  newPaging(r.Page, r.Limit),
		Keyword: r.Keyword,
		Status:  r.Status,
		TagID:   r.TagID,
	}
}

type ArticleCreateRequest struct {
	Title      string  `json:"title" validate:"required,max=255"`
	Content    string  `json:"content" validate:"required"`
	Summary    *string `json:"summary"`
	CoverImage *string `json:"coverImage" validate:"omitnil,max=1024"`
	Status     *string `json:"status" validate:"omitnil,oneof=DRAFT PUBLISHED"`
	TagIDs     []int   `json:"tagIds" validate:"omitempty,dive,gt=0"`
}

func (r ArticleCreateRequest) ToModel() blog.ArticleInput {
	return blog.ArticleInput{
		Title:      r.Title,
		Content:    r.Content,
		Summary:    r.Summary,
		CoverImage: r.CoverImage,
		Status:     r.Status,
		TagIDs:     r.TagIDs,
	}
}

type ArticleUpdateRequest struct {
	Title      *string `json:"title" validate:"omitnil,min=1,max=255"`
	Content    *string `json:"content" validate:"omitnil,min=1"`
	Summary    *string `json:"summary"`
	CoverImage *string `json:"coverImage" validate:"omitnil,max=1024"`
	Status     *string `json:"status" validate:"omitnil,oneof=DRAFT PUBLISHED"`
	TagIDs     *[]int  `json:"tagIds" validate:"omitnil,dive,gt=0"`
}

func (r ArticleUpdateRequest) ToModel() blog.ArticleUpdate {
	return blog.ArticleUpdate{
		Title:      r.Title,
		Content:    r.Content,
		Summary:    r.Summary,
		CoverImage: r.CoverImage,
		Status:     r.Status,
		TagIDs:     r.TagIDs,
	}
}

// CreateArticle handles POST /articles
// @Summary Create article
// @Description Creates an article. The slug is derived from the title.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param article body rest.ArticleCreateRequest true "Article"
// @Success 201 {object} rest.Article
// @Failure 400,401,409,500 {object} rest.ErrorResponse
// @Router /articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	var req ArticleCreateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	article, err := h.articles.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewArticle(*article))
}

// Articles handles GET /articles
// @Summary List articles
// @Description Lists articles newest first with optional keyword, status and tag filters
// @Tags articles
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param keyword query string false "Search in title, content and summary"
// @Param status query string false "DRAFT or PUBLISHED"
// @Param tagId query int false "Filter by tag ID"
// @Success 200 {object} rest.ArticleList
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /articles [get]
func (h *Handler) Articles(c echo.Context) error {
	var req ArticleListRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	page, err := h.articles.Articles(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticleList(page))
}

// PublishedArticles handles GET /articles/published
// @Summary List published articles
// @Tags articles
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param keyword query string false "Search in title, content and summary"
// @Param tagId query int false "Filter by tag ID"
// @Success 200 {object} rest.ArticleList
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /articles/published [get]
func (h *Handler) PublishedArticles(c echo.Context) error {
	var req ArticleListRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	page, err := h.articles.PublishedArticles(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticleList(page))
}

// ArticleByID handles GET /articles/:id
// @Summary Get article by ID
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /articles/{id} [get]
func (h *Handler) ArticleByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	article, err := h.articles.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// ArticleBySlug handles GET /articles/slug/:slug
// @Summary Read article by slug
// @Description Returns the article and increments its view counter
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /articles/slug/{slug} [get]
func (h *Handler) ArticleBySlug(c echo.Context) error {
	article, err := h.articles.ArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err)
	}
	metrics.RecordArticleView()

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// UpdateArticle handles PATCH /articles/:id
// @Summary Update article
// @Description Changes the provided fields. tagIds, when present, replaces the article tags.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param article body rest.ArticleUpdateRequest true "Changes"
// @Success 200 {object} rest.Article
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /articles/{id} [patch]
func (h *Handler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req ArticleUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	article, err := h.articles.Update(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// DeleteArticle handles DELETE /articles/:id
// @Summary Delete article
// @Description Deletes the article with its comments and tag links
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /articles/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	article, err := h.articles.Remove(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}
