package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/blog"
)

type TagCreateRequest struct {
	Name  string  `json:"name" validate:"required,max=50"`
	Color *string `json:"color" validate:"omitnil,hexcolor"`
}

type TagUpdateRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1,max=50"`
	Color *string `json:"color" validate:"omitnil,hexcolor"`
}

type PopularTagsRequest struct {
	Limit *int `query:"limit" validate:"omitnil,min=1,max=100"`
}

// CreateTag handles POST /tags
// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tag body rest.TagCreateRequest true "Tag"
// @Success 201 {object} rest.Tag
// @Failure 400,401,409,500 {object} rest.ErrorResponse
// @Router /tags [post]
func (h *Handler) CreateTag(c echo.Context) error {
	var req TagCreateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	tag, err := h.tags.Create(c.Request().Context(), blog.TagInput{Name: req.Name, Color: req.Color})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewTag(*tag))
}

// Tags handles GET /tags
// @Summary List tags
// @Description Lists all tags newest first with their article counts
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} rest.ErrorResponse
// @Router /tags [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.tags.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// PopularTags handles GET /tags/popular
// @Summary List popular tags
// @Description Tags ordered by article count, then name
// @Tags tags
// @Produce json
// @Param limit query int false "Number of tags (default: 10)"
// @Success 200 {array} rest.Tag
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /tags/popular [get]
func (h *Handler) PopularTags(c echo.Context) error {
	var req PopularTagsRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	tags, err := h.tags.PopularTags(c.Request().Context(), deref(req.Limit))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// TagByID handles GET /tags/:id
// @Summary Get tag by ID
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} rest.Tag
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /tags/{id} [get]
func (h *Handler) TagByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	tag, err := h.tags.TagByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// UpdateTag handles PATCH /tags/:id
// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Param tag body rest.TagUpdateRequest true "Changes"
// @Success 200 {object} rest.Tag
// @Failure 400,401,404,409,500 {object} rest.ErrorResponse
// @Router /tags/{id} [patch]
func (h *Handler) UpdateTag(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req TagUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	tag, err := h.tags.Update(c.Request().Context(), id, blog.TagUpdate{Name: req.Name, Color: req.Color})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// DeleteTag handles DELETE /tags/:id
// @Summary Delete tag
// @Description Deletes the tag and unlinks it from all articles
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 200 {object} rest.Tag
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /tags/{id} [delete]
func (h *Handler) DeleteTag(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	tag, err := h.tags.Remove(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}
