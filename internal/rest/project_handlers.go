package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/blog"
)

type ProjectListRequest struct {
	Featured *bool `query:"featured"`
}

type ProjectCreateRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,max=1024,url"`
	ProjectURL  *string `json:"projectUrl" validate:"omitnil,max=1024,url"`
	GithubURL   *string `json:"githubUrl" validate:"omitnil,max=1024,url"`
	TechStack   *string `json:"techStack"`
	Featured    bool    `json:"featured"`
}

func (r ProjectCreateRequest) ToModel() blog.ProjectInput {
	return blog.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		ProjectURL:  r.ProjectURL,
		GithubURL:   r.GithubURL,
		TechStack:   r.TechStack,
		Featured:    r.Featured,
	}
}

type ProjectUpdateRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description" validate:"omitnil,min=1"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,max=1024,url"`
	ProjectURL  *string `json:"projectUrl" validate:"omitnil,max=1024,url"`
	GithubURL   *string `json:"githubUrl" validate:"omitnil,max=1024,url"`
	TechStack   *string `json:"techStack"`
	Featured    *bool   `json:"featured"`
}

func (r ProjectUpdateRequest) ToModel() blog.ProjectUpdate {
	return blog.ProjectUpdate{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		ProjectURL:  r.ProjectURL,
		GithubURL:   r.GithubURL,
		TechStack:   r.TechStack,
		Featured:    r.Featured,
	}
}

// CreateProject handles POST /projects
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body rest.ProjectCreateRequest true "Project"
// @Success 201 {object} rest.Project
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /projects [post]
func (h *Handler) CreateProject(c echo.Context) error {
	var req ProjectCreateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projects.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewProject(*project))
}

// Projects handles GET /projects
// @Summary List projects
// @Description Featured projects first, then newest first
// @Tags projects
// @Produce json
// @Param featured query bool false "Filter by featured flag"
// @Success 200 {array} rest.Project
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /projects [get]
func (h *Handler) Projects(c echo.Context) error {
	var req ProjectListRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	projects, err := h.projects.Projects(c.Request().Context(), req.Featured)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(projects, NewProject))
}

// FeaturedProjects handles GET /projects/featured
// @Summary List featured projects
// @Tags projects
// @Produce json
// @Success 200 {array} rest.Project
// @Failure 500 {object} rest.ErrorResponse
// @Router /projects/featured [get]
func (h *Handler) FeaturedProjects(c echo.Context) error {
	projects, err := h.projects.FeaturedProjects(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(projects, NewProject))
}

// ProjectStats handles GET /projects/stats
// @Summary Project counts
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.ProjectStats
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /projects/stats [get]
func (h *Handler) ProjectStats(c echo.Context) error {
	stats, err := h.projects.Stats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, ProjectStats{Total: stats.Total, Featured: stats.Featured})
}

// ProjectByID handles GET /projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} rest.Project
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /projects/{id} [get]
func (h *Handler) ProjectByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projects.ProjectByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProject(*project))
}

// UpdateProject handles PATCH /projects/:id
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param project body rest.ProjectUpdateRequest true "Changes"
// @Success 200 {object} rest.Project
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /projects/{id} [patch]
func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req ProjectUpdateRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projects.Update(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProject(*project))
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} rest.Project
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /projects/{id} [delete]
func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projects.Remove(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProject(*project))
}
