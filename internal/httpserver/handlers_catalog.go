package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yayincibotu/twitchviewer/internal/app"
	"github.com/yayincibotu/twitchviewer/internal/domain"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationError("invalid id").WithField("id", c.Param("id"))
	}
	return id, nil
}

// mapNotFound converts the domain not-found sentinels to 404 responses.
func mapNotFound(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrSeoNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrNotFound):
		return apperrors.NotFoundError(err.Error())
	case errors.Is(err, domain.ErrDuplicateSlug):
		return apperrors.ConflictError(err.Error())
	}
	return err
}

// Packages

func (s *Server) handleListPackages(c echo.Context) error {
	pkgs, err := s.app.ListPackages(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, pkgs)
}

func (s *Server) handleGetPackage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	pkg, err := s.app.GetPackage(c.Request().Context(), id)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, pkg)
}

func (s *Server) handleCreatePackage(c echo.Context) error {
	var req app.CreatePackageInput
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	pkg, err := s.app.CreatePackage(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, pkg)
}

func (s *Server) handleUpdatePackage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.PackagePatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	pkg, err := s.app.UpdatePackage(c.Request().Context(), id, patch)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, pkg)
}

func (s *Server) handleDeletePackage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.app.DeletePackage(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SEO settings

func (s *Server) handleListSeo(c echo.Context) error {
	settings, err := s.app.ListSeo(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, settings)
}

func (s *Server) handleGetSeo(c echo.Context) error {
	slug := c.Param("slug")

	seo, err := s.app.GetSeoBySlug(c.Request().Context(), slug)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, seo)
}

func (s *Server) handleCreateSeo(c echo.Context) error {
	var req app.CreateSeoInput
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	seo, err := s.app.CreateSeo(c.Request().Context(), req)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusCreated, seo)
}

func (s *Server) handleUpdateSeo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.SeoPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	seo, err := s.app.UpdateSeo(c.Request().Context(), id, patch)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, seo)
}

func writeJSON(c echo.Context, status int, v any) error {
	if err := c.JSON(status, v); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}
