package app

import (
	"context"

	"github.com/yayincibotu/twitchviewer/internal/domain"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

// Blog

func (s *Service) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repos.Blog.List(ctx)
}

func (s *Service) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.repos.Blog.GetBySlug(ctx, slug)
}

// CreatePostInput carries a new blog post authored by an admin.
type CreatePostInput struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
}

func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*domain.BlogPost, error) {
	if in.Slug == "" || in.Title == "" {
		return nil, apperrors.ValidationError("slug and title are required")
	}

	return s.repos.Blog.Create(ctx, &domain.BlogPost{
		Slug:        in.Slug,
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		AuthorID:    in.AuthorID,
		PublishedAt: s.tokens.Now(),
	})
}

func (s *Service) UpdatePost(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	return s.repos.Blog.Update(ctx, id, patch)
}

func (s *Service) DeletePost(ctx context.Context, id int64) error {
	return s.repos.Blog.Delete(ctx, id)
}

// Media

func (s *Service) ListMedia(ctx context.Context) ([]domain.MediaFile, error) {
	return s.repos.Media.List(ctx)
}

func (s *Service) CreateMedia(ctx context.Context, file *domain.MediaFile) (*domain.MediaFile, error) {
	if file.Filename == "" || file.URL == "" {
		return nil, apperrors.ValidationError("filename and url are required")
	}
	return s.repos.Media.Create(ctx, file)
}

func (s *Service) DeleteMedia(ctx context.Context, id int64) error {
	return s.repos.Media.Delete(ctx, id)
}

// FAQ

func (s *Service) ListFaqCategories(ctx context.Context) ([]domain.FaqCategory, error) {
	return s.repos.Faq.ListCategories(ctx)
}

func (s *Service) CreateFaqCategory(ctx context.Context, cat *domain.FaqCategory) (*domain.FaqCategory, error) {
	if cat.Name == "" {
		return nil, apperrors.ValidationError("category name is required")
	}
	return s.repos.Faq.CreateCategory(ctx, cat)
}

func (s *Service) UpdateFaqCategory(ctx context.Context, id int64, patch domain.FaqCategoryPatch) (*domain.FaqCategory, error) {
	return s.repos.Faq.UpdateCategory(ctx, id, patch)
}

func (s *Service) DeleteFaqCategory(ctx context.Context, id int64) error {
	return s.repos.Faq.DeleteCategory(ctx, id)
}

func (s *Service) ListFaqItems(ctx context.Context, categoryID int64) ([]domain.FaqItem, error) {
	return s.repos.Faq.ListItems(ctx, categoryID)
}

func (s *Service) CreateFaqItem(ctx context.Context, item *domain.FaqItem) (*domain.FaqItem, error) {
	if item.Question == "" || item.Answer == "" {
		return nil, apperrors.ValidationError("question and answer are required")
	}
	return s.repos.Faq.CreateItem(ctx, item)
}

func (s *Service) UpdateFaqItem(ctx context.Context, id int64, patch domain.FaqItemPatch) (*domain.FaqItem, error) {
	return s.repos.Faq.UpdateItem(ctx, id, patch)
}

func (s *Service) DeleteFaqItem(ctx context.Context, id int64) error {
	return s.repos.Faq.DeleteItem(ctx, id)
}

// Statistics

func (s *Service) ListStatistics(ctx context.Context) ([]domain.Statistic, error) {
	return s.repos.Stats.List(ctx)
}

func (s *Service) CreateStatistic(ctx context.Context, stat *domain.Statistic) (*domain.Statistic, error) {
	if stat.Label == "" {
		return nil, apperrors.ValidationError("statistic label is required")
	}
	return s.repos.Stats.Create(ctx, stat)
}

func (s *Service) DeleteStatistic(ctx context.Context, id int64) error {
	return s.repos.Stats.Delete(ctx, id)
}

// Success stories

func (s *Service) ListSuccessStories(ctx context.Context) ([]domain.SuccessStory, error) {
	return s.repos.Stories.List(ctx)
}

func (s *Service) CreateSuccessStory(ctx context.Context, story *domain.SuccessStory) (*domain.SuccessStory, error) {
	if story.StreamerName == "" {
		return nil, apperrors.ValidationError("streamer name is required")
	}
	return s.repos.Stories.Create(ctx, story)
}

func (s *Service) DeleteSuccessStory(ctx context.Context, id int64) error {
	return s.repos.Stories.Delete(ctx, id)
}

// Limited-time offers

// ListActiveOffers returns the offers the marketing pages may show: active
// and not yet expired at the service clock.
func (s *Service) ListActiveOffers(ctx context.Context) ([]domain.LimitedTimeOffer, error) {
	offers, err := s.repos.Offers.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.tokens.Now()
	active := make([]domain.LimitedTimeOffer, 0, len(offers))
	for _, o := range offers {
		if o.Active && o.ExpiresAt.After(now) {
			active = append(active, o)
		}
	}
	return active, nil
}

func (s *Service) ListOffers(ctx context.Context) ([]domain.LimitedTimeOffer, error) {
	return s.repos.Offers.List(ctx)
}

func (s *Service) CreateOffer(ctx context.Context, offer *domain.LimitedTimeOffer) (*domain.LimitedTimeOffer, error) {
	if offer.Title == "" {
		return nil, apperrors.ValidationError("offer title is required")
	}
	if offer.DiscountPercent < 1 || offer.DiscountPercent > 100 {
		return nil, apperrors.ValidationError("discount must be between 1 and 100 percent")
	}
	return s.repos.Offers.Create(ctx, offer)
}

func (s *Service) UpdateOffer(ctx context.Context, id int64, patch domain.OfferPatch) (*domain.LimitedTimeOffer, error) {
	if patch.DiscountPercent != nil && (*patch.DiscountPercent < 1 || *patch.DiscountPercent > 100) {
		return nil, apperrors.ValidationError("discount must be between 1 and 100 percent")
	}
	return s.repos.Offers.Update(ctx, id, patch)
}

func (s *Service) DeleteOffer(ctx context.Context, id int64) error {
	return s.repos.Offers.Delete(ctx, id)
}

// Security badges

func (s *Service) ListSecurityBadges(ctx context.Context) ([]domain.SecurityBadge, error) {
	return s.repos.Badges.List(ctx)
}

func (s *Service) CreateSecurityBadge(ctx context.Context, badge *domain.SecurityBadge) (*domain.SecurityBadge, error) {
	if badge.Name == "" {
		return nil, apperrors.ValidationError("badge name is required")
	}
	return s.repos.Badges.Create(ctx, badge)
}

func (s *Service) DeleteSecurityBadge(ctx context.Context, id int64) error {
	return s.repos.Badges.Delete(ctx, id)
}
