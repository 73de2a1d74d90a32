package controller

import (
	"net/http"

	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/modules/auth/dto"
	"campus-pulse/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthServiceInterface
	controller.BaseController
}

func NewAuthController(service service.AuthServiceInterface) *AuthController {
	return &AuthController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Signup registers a new account
// @Summary Sign up
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account details"
// @Success 200 {object} dto.LoginResponse
// @Failure 409 {object} errors.AppError
// @Router /public/auth/signup [post]
func (c *AuthController) Signup(ctx echo.Context) error {
	req := new(dto.SignupRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Signup(ctx.Request().Context(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Account created successfully")
}

// Login exchanges credentials for a token pair
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, err := c.service.Login(ctx.Request().Context(), req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Logged in successfully")
}

// Refresh exchanges a refresh token for a new pair
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/refresh [post]
func (c *AuthController) Refresh(ctx echo.Context) error {
	req := new(dto.RefreshRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return c.BadRequest(errors.ErrInvalidInput, "refresh_token is required")
	}

	result, err := c.service.Refresh(ctx.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Tokens refreshed successfully")
}

// GoogleLogin redirects the browser into the Google OAuth flow
// @Summary Start Google OAuth
// @Tags Auth
// @Produce json
// @Success 302
// @Router /public/auth/google [get]
func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	url, err := c.service.GetGoogleAuthURL(ctx.Request().Context())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the OAuth flow
// @Summary Google OAuth callback
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")
	if code == "" || state == "" {
		return c.BadRequest(errors.ErrInvalidInput, "code and state are required")
	}

	result, err := c.service.HandleGoogleCallback(ctx.Request().Context(), code, state)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Logged in successfully")
}
