package httpserver

import (
	"errors"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/yayincibotu/twitchviewer/internal/correlation"
	"github.com/yayincibotu/twitchviewer/internal/domain"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := correlation.WithID(c.Request().Context(), correlation.NewID())
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// requireAuth resolves the session to a user id and stores it under
// "userID". Unauthenticated requests get a 401 before any role check.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := s.sessionUserID(c)
		if !ok {
			return apperrors.UnauthorizedError("authentication required")
		}

		c.Set("userID", userID)
		return next(c)
	}
}

// requireAdmin must run after requireAuth. Authenticated non-admins get 403.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("userID").(int64)
		if !ok {
			return apperrors.UnauthorizedError("authentication required")
		}

		user, err := s.app.GetUser(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return apperrors.UnauthorizedError("authentication required")
			}
			return apperrors.InternalError("failed to load user", err)
		}

		if user.Role != domain.RoleAdmin {
			return apperrors.ForbiddenError("admin role required")
		}

		c.Set("user", user)
		return next(c)
	}
}

func (s *Server) session(c echo.Context) *sessions.Session {
	// CookieStore only errors on undecodable cookies; a fresh session is
	// still returned and usable.
	session, _ := s.sessionStore.Get(c.Request(), sessionName)
	return session
}

func (s *Server) sessionUserID(c echo.Context) (int64, bool) {
	session := s.session(c)
	userID, ok := session.Values[sessionKeyUserID].(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
