package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yayincibotu/twitchviewer/internal/app"
	"github.com/yayincibotu/twitchviewer/internal/domain"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

// Blog

func (s *Server) handleListPosts(c echo.Context) error {
	posts, err := s.app.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, posts)
}

func (s *Server) handleGetPost(c echo.Context) error {
	post, err := s.app.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, post)
}

func (s *Server) handleCreatePost(c echo.Context) error {
	var req app.CreatePostInput
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	req.AuthorID = c.Get("userID").(int64)

	post, err := s.app.CreatePost(c.Request().Context(), req)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusCreated, post)
}

func (s *Server) handleUpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.BlogPostPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	post, err := s.app.UpdatePost(c.Request().Context(), id, patch)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, post)
}

func (s *Server) handleDeletePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeletePost(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Media

func (s *Server) handleListMedia(c echo.Context) error {
	files, err := s.app.ListMedia(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, files)
}

func (s *Server) handleCreateMedia(c echo.Context) error {
	var file domain.MediaFile
	if err := c.Bind(&file); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateMedia(c.Request().Context(), &file)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleDeleteMedia(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteMedia(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// FAQ

// faqCategoryResponse nests the items under their category, which is the
// shape the public FAQ page renders.
type faqCategoryResponse struct {
	domain.FaqCategory
	Items []domain.FaqItem `json:"items"`
}

func (s *Server) handleListFaq(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := s.app.ListFaqCategories(ctx)
	if err != nil {
		return err
	}

	response := make([]faqCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		items, err := s.app.ListFaqItems(ctx, cat.ID)
		if err != nil {
			return err
		}
		response = append(response, faqCategoryResponse{FaqCategory: cat, Items: items})
	}

	return writeJSON(c, http.StatusOK, response)
}

func (s *Server) handleCreateFaqCategory(c echo.Context) error {
	var cat domain.FaqCategory
	if err := c.Bind(&cat); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateFaqCategory(c.Request().Context(), &cat)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleUpdateFaqCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.FaqCategoryPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	cat, err := s.app.UpdateFaqCategory(c.Request().Context(), id, patch)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, cat)
}

func (s *Server) handleDeleteFaqCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteFaqCategory(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCreateFaqItem(c echo.Context) error {
	var item domain.FaqItem
	if err := c.Bind(&item); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateFaqItem(c.Request().Context(), &item)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleUpdateFaqItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.FaqItemPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	item, err := s.app.UpdateFaqItem(c.Request().Context(), id, patch)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, item)
}

func (s *Server) handleDeleteFaqItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteFaqItem(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Statistics

func (s *Server) handleListStatistics(c echo.Context) error {
	stats, err := s.app.ListStatistics(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, stats)
}

func (s *Server) handleCreateStatistic(c echo.Context) error {
	var stat domain.Statistic
	if err := c.Bind(&stat); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateStatistic(c.Request().Context(), &stat)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleDeleteStatistic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteStatistic(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Success stories

func (s *Server) handleListSuccessStories(c echo.Context) error {
	stories, err := s.app.ListSuccessStories(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, stories)
}

func (s *Server) handleCreateSuccessStory(c echo.Context) error {
	var story domain.SuccessStory
	if err := c.Bind(&story); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateSuccessStory(c.Request().Context(), &story)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleDeleteSuccessStory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteSuccessStory(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Limited-time offers

func (s *Server) handleListActiveOffers(c echo.Context) error {
	offers, err := s.app.ListActiveOffers(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, offers)
}

func (s *Server) handleListAllOffers(c echo.Context) error {
	offers, err := s.app.ListOffers(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, offers)
}

func (s *Server) handleCreateOffer(c echo.Context) error {
	var offer domain.LimitedTimeOffer
	if err := c.Bind(&offer); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateOffer(c.Request().Context(), &offer)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleUpdateOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.OfferPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	offer, err := s.app.UpdateOffer(c.Request().Context(), id, patch)
	if err != nil {
		return mapNotFound(err)
	}
	return writeJSON(c, http.StatusOK, offer)
}

func (s *Server) handleDeleteOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteOffer(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Security badges

func (s *Server) handleListSecurityBadges(c echo.Context) error {
	badges, err := s.app.ListSecurityBadges(c.Request().Context())
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, badges)
}

func (s *Server) handleCreateSecurityBadge(c echo.Context) error {
	var badge domain.SecurityBadge
	if err := c.Bind(&badge); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	created, err := s.app.CreateSecurityBadge(c.Request().Context(), &badge)
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusCreated, created)
}

func (s *Server) handleDeleteSecurityBadge(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.app.DeleteSecurityBadge(c.Request().Context(), id); err != nil {
		return mapNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}
