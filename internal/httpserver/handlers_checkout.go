package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yayincibotu/twitchviewer/internal/app"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

func (s *Server) handleCreateCheckoutSession(c echo.Context) error {
	var req struct {
		PriceID string `json:"priceId"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.PriceID == "" {
		return apperrors.ValidationError("priceId is required")
	}

	userID := c.Get("userID").(int64)

	session, err := s.app.CreateCheckout(c.Request().Context(), userID, req.PriceID)
	if err != nil {
		if errors.Is(err, app.ErrEmailNotVerified) {
			return apperrors.ForbiddenError("email verification required")
		}
		return mapNotFound(err)
	}

	return writeJSON(c, http.StatusOK, session)
}
