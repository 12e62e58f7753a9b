package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/metrics"
)

const (
	maxIPLength        = 64
	maxUserAgentLength = 512
)

type CommentListRequest struct {
	Page      *int    `query:"page" validate:"omitnil,min=1"`
	Limit     *int    `query:"limit" validate:"omitnil,min=1,max=100"`
	ArticleID *int    `query:"articleId" validate:"omitnil,gt=0"`
	Status    *string `query:"status" validate:"omitnil,oneof=PENDING APPROVED REJECTED"`
	Keyword   *string `query:"keyword"`
}

func (r CommentListRequest) ToModel() blog.CommentQuery {
	return blog.CommentQuery{
		Paging:    newPaging(r.Page, r.Limit),
		ArticleID: r.ArticleID,
		Status:    r.Status,
		Keyword:   r.Keyword,
	}
}

type CommentCreateRequest struct {
	ArticleID int     `json:"articleId" validate:"required,gt=0"`
	Content   string  `json:"content" validate:"required"`
	Author    string  `json:"author" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,max=255,email"`
	Website   *string `json:"website" validate:"omitnil,max=1024"`
}

// ToModel converts the request, attaching the client address and agent.
func (r CommentCreateRequest) ToModel(ip, userAgent string) blog.CommentInput {
	return blog.CommentInput{
		ArticleID: r.ArticleID,
		Content:   r.Content,
		Author:    r.Author,
		Email:     r.Email,
		Website:   r.Website,
		IP:        truncate(ip, maxIPLength),
		UserAgent: truncate(userAgent, maxUserAgentLength),
	}
}

type CommentUpdateRequest struct {
	Content *string `json:"content" validate:"omitnil,min=1"`
	Status  *string `json:"status" validate:"omitnil,oneof=PENDING APPROVED REJECTED"`
}

type CommentStatsRequest struct {
	ArticleID *int `query:"articleId" validate:"omitnil,gt=0"`
}

// CreateComment handles POST /comments
// @Summary Leave a comment
// @Description Public endpoint. New comments wait for moderation.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body rest.CommentCreateRequest true "Comment"
// @Success 201 {object} rest.Comment
// @Failure 400,404,429,500 {object} rest.ErrorResponse
// @Router /comments [post]
func (h *Handler) CreateComment(c echo.Context) error {
	var req CommentCreateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Create(c.Request().Context(), req.ToModel(c.RealIP(), c.Request().UserAgent()))
	if err != nil {
		return h.handleError(c, err)
	}
	metrics.RecordCommentCreated()

	return c.JSON(http.StatusCreated, NewComment(*comment))
}

// Comments handles GET /comments
// @Summary List comments
// @Tags comments
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param articleId query int false "Filter by article ID"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param keyword query string false "Search in author, email and content"
// @Success 200 {object} rest.CommentList
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /comments [get]
func (h *Handler) Comments(c echo.Context) error {
	var req CommentListRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	page, err := h.comments.Comments(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCommentList(page))
}

// PendingComments handles GET /comments/pending
// @Summary List comments awaiting moderation
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param articleId query int false "Filter by article ID"
// @Success 200 {object} rest.CommentList
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /comments/pending [get]
func (h *Handler) PendingComments(c echo.Context) error {
	var req CommentListRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	page, err := h.comments.PendingComments(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCommentList(page))
}

// ApprovedComments handles GET /comments/approved
// @Summary List approved comments
// @Tags comments
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param articleId query int false "Filter by article ID"
// @Success 200 {object} rest.CommentList
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /comments/approved [get]
func (h *Handler) ApprovedComments(c echo.Context) error {
	var req CommentListRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	page, err := h.comments.ApprovedComments(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCommentList(page))
}

// CommentStats handles GET /comments/stats
// @Summary Comment counts by status
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param articleId query int false "Scope to one article"
// @Success 200 {object} rest.CommentStats
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /comments/stats [get]
func (h *Handler) CommentStats(c echo.Context) error {
	var req CommentStatsRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	stats, err := h.comments.Stats(c.Request().Context(), req.ArticleID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCommentStats(stats))
}

// CommentByID handles GET /comments/:id
// @Summary Get comment by ID
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /comments/{id} [get]
func (h *Handler) CommentByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.CommentByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// UpdateComment handles PATCH /comments/:id
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param comment body rest.CommentUpdateRequest true "Changes"
// @Success 200 {object} rest.Comment
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /comments/{id} [patch]
func (h *Handler) UpdateComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req CommentUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Update(c.Request().Context(), id, blog.CommentUpdate{Content: req.Content, Status: req.Status})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// ApproveComment handles PATCH /comments/:id/approve
// @Summary Approve comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /comments/{id}/approve [patch]
func (h *Handler) ApproveComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Approve(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// RejectComment handles PATCH /comments/:id/reject
// @Summary Reject comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /comments/{id}/reject [patch]
func (h *Handler) RejectComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Reject(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /comments/{id} [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	comment, err := h.comments.Remove(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}
