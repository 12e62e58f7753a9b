package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/blog"
)

type ProfileRequest struct {
	Title    *string `json:"title" validate:"omitnil,max=200"`
	Avatar   *string `json:"avatar" validate:"omitnil,max=1024"`
	Bio      *string `json:"bio"`
	Github   *string `json:"github" validate:"omitnil,max=1024"`
	Twitter  *string `json:"twitter" validate:"omitnil,max=1024"`
	Linkedin *string `json:"linkedin" validate:"omitnil,max=1024"`
	Email    *string `json:"email" validate:"omitnil,max=255,email_or_empty"`
	Phone    *string `json:"phone" validate:"omitnil,max=64"`
	Location *string `json:"location" validate:"omitnil,max=255"`
}

func (r ProfileRequest) ToModel() blog.ProfileInput {
	return blog.ProfileInput{
		Title:    r.Title,
		Avatar:   r.Avatar,
		Bio:      r.Bio,
		Github:   r.Github,
		Twitter:  r.Twitter,
		Linkedin: r.Linkedin,
		Email:    r.Email,
		Phone:    r.Phone,
		Location: r.Location,
	}
}

// Profile handles GET /profile
// @Summary Get site profile
// @Description Returns the profile, creating the default one on first access
// @Tags profile
// @Produce json
// @Success 200 {object} rest.Profile
// @Failure 500 {object} rest.ErrorResponse
// @Router /profile [get]
func (h *Handler) Profile(c echo.Context) error {
	profile, err := h.profile.Profile(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProfile(*profile))
}

// Profiles handles GET /profile/all
// @Summary List profile rows
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.Profile
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /profile/all [get]
func (h *Handler) Profiles(c echo.Context) error {
	profiles, err := h.profile.Profiles(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, Map(profiles, NewProfile))
}

// CreateProfile handles POST /profile
// @Summary Create site profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body rest.ProfileRequest true "Profile"
// @Success 201 {object} rest.Profile
// @Failure 400,401,409,500 {object} rest.ErrorResponse
// @Router /profile [post]
func (h *Handler) CreateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	profile, err := h.profile.Create(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewProfile(*profile))
}

// UpdateCurrentProfile handles PATCH /profile
// @Summary Update site profile
// @Description Creates the profile from the request when it does not exist yet
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body rest.ProfileRequest true "Changes"
// @Success 200 {object} rest.Profile
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /profile [patch]
func (h *Handler) UpdateCurrentProfile(c echo.Context) error {
	var req ProfileRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	profile, err := h.profile.UpdateFirst(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProfile(*profile))
}

// UpdateProfile handles PATCH /profile/:id
// @Summary Update profile by ID
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param profile body rest.ProfileRequest true "Changes"
// @Success 200 {object} rest.Profile
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /profile/{id} [patch]
func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req ProfileRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	profile, err := h.profile.Update(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProfile(*profile))
}

// DeleteProfile handles DELETE /profile/:id
// @Summary Delete profile by ID
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} rest.Profile
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /profile/{id} [delete]
func (h *Handler) DeleteProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err)
	}

	profile, err := h.profile.Remove(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewProfile(*profile))
}
