package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/metrics"
)

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,max=255,email"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (r RegisterRequest) ToModel() blog.RegisterInput {
	return blog.RegisterInput{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /auth/register
// @Summary Register administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param user body rest.RegisterRequest true "Account"
// @Success 201 {object} rest.User
// @Failure 400,409,429,500 {object} rest.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	user, err := h.auth.Register(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, NewUser(*user))
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Returns a bearer token for the admin endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,429,500 {object} rest.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := h.bind(c, &req); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, blog.ErrUnauthorized) {
			metrics.RecordLogin(false)
		}
		return h.handleError(c, err)
	}
	metrics.RecordLogin(true)

	return c.JSON(http.StatusOK, NewLoginResponse(*result))
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Tokens are stateless; the client discards its token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.MessageResponse
// @Failure 401 {object} rest.ErrorResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if claims := claimsFrom(c); claims != nil {
		h.log.InfoContext(c.Request().Context(), "user logged out", "username", claims.Username)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}
