package middleware

import (
	"strings"

	"campus-pulse/core/constants"
	"campus-pulse/core/controller"
	"campus-pulse/core/errors"
	"campus-pulse/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// Session is the request-scoped identity resolved once from the verified
// token. Handlers read it from the echo context instead of re-parsing.
type Session struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (s *Session) IsAdmin() bool {
	return s.Role == constants.RoleAdmin
}

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware verifies the Bearer token and stores a Session on the context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "authorization header must be a Bearer token")
			}

			tokenData, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				return controller.NewErrorResponse(401, appErr.Code, appErr.Message)
			}

			if tokenData.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token scope not valid for API access")
			}

			c.Set(sessionContextKey, &Session{
				UserID: tokenData.UserID,
				Email:  tokenData.Email,
				Role:   tokenData.Role,
			})

			return next(c)
		}
	}
}

// AdminMiddleware requires an authenticated admin session. Must be chained
// after AuthMiddleware.
func (m *Middleware) AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "authentication required")
			}
			if !session.IsAdmin() {
				return controller.NewErrorResponse(403, errors.ErrForbidden, "admin role required")
			}
			return next(c)
		}
	}
}

// SessionFromContext returns the Session set by AuthMiddleware, or nil.
func SessionFromContext(c echo.Context) *Session {
	session, _ := c.Get(sessionContextKey).(*Session)
	return session
}
