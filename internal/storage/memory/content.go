package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

// BlogRepo implements domain.BlogRepository over an in-memory table.
type BlogRepo struct {
	rows *table[domain.BlogPost]
}

func (r *BlogRepo) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if _, err := r.GetBySlug(ctx, post.Slug); err == nil {
		return nil, domain.ErrDuplicateSlug
	}

	now := time.Now()
	row := *post
	row.CreatedAt = now
	row.UpdatedAt = now

	created := r.rows.insert(row, func(p *domain.BlogPost, id int64) { p.ID = id })
	return &created, nil
}

func (r *BlogRepo) GetByID(_ context.Context, id int64) (*domain.BlogPost, error) {
	post, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &post, nil
}

func (r *BlogRepo) GetBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	post, ok := r.rows.find(func(p domain.BlogPost) bool {
		return strings.EqualFold(p.Slug, slug)
	})
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &post, nil
}

func (r *BlogRepo) List(_ context.Context) ([]domain.BlogPost, error) {
	posts := r.rows.list(nil)
	slices.SortFunc(posts, func(a, b domain.BlogPost) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return posts, nil
}

func (r *BlogRepo) Update(_ context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	post, ok := r.rows.update(id, func(p *domain.BlogPost) {
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Excerpt != nil {
			p.Excerpt = *patch.Excerpt
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.PublishedAt != nil {
			p.PublishedAt = *patch.PublishedAt
		}
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &post, nil
}

func (r *BlogRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrPostNotFound
	}
	return nil
}

// MediaRepo implements domain.MediaRepository over an in-memory table.
type MediaRepo struct {
	rows *table[domain.MediaFile]
}

func (r *MediaRepo) Create(_ context.Context, file *domain.MediaFile) (*domain.MediaFile, error) {
	row := *file
	row.CreatedAt = time.Now()
	created := r.rows.insert(row, func(f *domain.MediaFile, id int64) { f.ID = id })
	return &created, nil
}

func (r *MediaRepo) GetByID(_ context.Context, id int64) (*domain.MediaFile, error) {
	file, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &file, nil
}

func (r *MediaRepo) List(_ context.Context) ([]domain.MediaFile, error) {
	files := r.rows.list(nil)
	slices.SortFunc(files, func(a, b domain.MediaFile) int { return int(a.ID - b.ID) })
	return files, nil
}

func (r *MediaRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// FaqRepo implements domain.FaqRepository over two in-memory tables.
type FaqRepo struct {
	cats  *table[domain.FaqCategory]
	items *table[domain.FaqItem]
}

func (r *FaqRepo) CreateCategory(_ context.Context, cat *domain.FaqCategory) (*domain.FaqCategory, error) {
	created := r.cats.insert(*cat, func(c *domain.FaqCategory, id int64) { c.ID = id })
	return &created, nil
}

func (r *FaqRepo) ListCategories(_ context.Context) ([]domain.FaqCategory, error) {
	cats := r.cats.list(nil)
	slices.SortFunc(cats, func(a, b domain.FaqCategory) int { return a.SortOrder - b.SortOrder })
	return cats, nil
}

func (r *FaqRepo) UpdateCategory(_ context.Context, id int64, patch domain.FaqCategoryPatch) (*domain.FaqCategory, error) {
	cat, ok := r.cats.update(id, func(c *domain.FaqCategory) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.SortOrder != nil {
			c.SortOrder = *patch.SortOrder
		}
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cat, nil
}

func (r *FaqRepo) DeleteCategory(_ context.Context, id int64) error {
	if !r.cats.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FaqRepo) CreateItem(_ context.Context, item *domain.FaqItem) (*domain.FaqItem, error) {
	if _, ok := r.cats.get(item.CategoryID); !ok {
		return nil, domain.ErrNotFound
	}
	created := r.items.insert(*item, func(i *domain.FaqItem, id int64) { i.ID = id })
	return &created, nil
}

func (r *FaqRepo) ListItems(_ context.Context, categoryID int64) ([]domain.FaqItem, error) {
	items := r.items.list(func(i domain.FaqItem) bool {
		return categoryID == 0 || i.CategoryID == categoryID
	})
	slices.SortFunc(items, func(a, b domain.FaqItem) int { return a.SortOrder - b.SortOrder })
	return items, nil
}

func (r *FaqRepo) UpdateItem(_ context.Context, id int64, patch domain.FaqItemPatch) (*domain.FaqItem, error) {
	item, ok := r.items.update(id, func(i *domain.FaqItem) {
		if patch.CategoryID != nil {
			i.CategoryID = *patch.CategoryID
		}
		if patch.Question != nil {
			i.Question = *patch.Question
		}
		if patch.Answer != nil {
			i.Answer = *patch.Answer
		}
		if patch.SortOrder != nil {
			i.SortOrder = *patch.SortOrder
		}
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (r *FaqRepo) DeleteItem(_ context.Context, id int64) error {
	if !r.items.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// StatisticRepo implements domain.StatisticRepository.
type StatisticRepo struct {
	rows *table[domain.Statistic]
}

func (r *StatisticRepo) Create(_ context.Context, stat *domain.Statistic) (*domain.Statistic, error) {
	created := r.rows.insert(*stat, func(s *domain.Statistic, id int64) { s.ID = id })
	return &created, nil
}

func (r *StatisticRepo) List(_ context.Context) ([]domain.Statistic, error) {
	stats := r.rows.list(nil)
	slices.SortFunc(stats, func(a, b domain.Statistic) int { return int(a.ID - b.ID) })
	return stats, nil
}

func (r *StatisticRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// SuccessStoryRepo implements domain.SuccessStoryRepository.
type SuccessStoryRepo struct {
	rows *table[domain.SuccessStory]
}

func (r *SuccessStoryRepo) Create(_ context.Context, story *domain.SuccessStory) (*domain.SuccessStory, error) {
	created := r.rows.insert(*story, func(s *domain.SuccessStory, id int64) { s.ID = id })
	return &created, nil
}

func (r *SuccessStoryRepo) List(_ context.Context) ([]domain.SuccessStory, error) {
	stories := r.rows.list(nil)
	slices.SortFunc(stories, func(a, b domain.SuccessStory) int { return int(a.ID - b.ID) })
	return stories, nil
}

func (r *SuccessStoryRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// OfferRepo implements domain.OfferRepository.
type OfferRepo struct {
	rows *table[domain.LimitedTimeOffer]
}

func (r *OfferRepo) Create(_ context.Context, offer *domain.LimitedTimeOffer) (*domain.LimitedTimeOffer, error) {
	created := r.rows.insert(*offer, func(o *domain.LimitedTimeOffer, id int64) { o.ID = id })
	return &created, nil
}

func (r *OfferRepo) List(_ context.Context) ([]domain.LimitedTimeOffer, error) {
	offers := r.rows.list(nil)
	slices.SortFunc(offers, func(a, b domain.LimitedTimeOffer) int { return int(a.ID - b.ID) })
	return offers, nil
}

func (r *OfferRepo) Update(_ context.Context, id int64, patch domain.OfferPatch) (*domain.LimitedTimeOffer, error) {
	offer, ok := r.rows.update(id, func(o *domain.LimitedTimeOffer) {
		if patch.Title != nil {
			o.Title = *patch.Title
		}
		if patch.DiscountPercent != nil {
			o.DiscountPercent = *patch.DiscountPercent
		}
		if patch.ExpiresAt != nil {
			o.ExpiresAt = *patch.ExpiresAt
		}
		if patch.Active != nil {
			o.Active = *patch.Active
		}
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &offer, nil
}

func (r *OfferRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// SecurityBadgeRepo implements domain.SecurityBadgeRepository.
type SecurityBadgeRepo struct {
	rows *table[domain.SecurityBadge]
}

func (r *SecurityBadgeRepo) Create(_ context.Context, badge *domain.SecurityBadge) (*domain.SecurityBadge, error) {
	created := r.rows.insert(*badge, func(b *domain.SecurityBadge, id int64) { b.ID = id })
	return &created, nil
}

func (r *SecurityBadgeRepo) List(_ context.Context) ([]domain.SecurityBadge, error) {
	badges := r.rows.list(nil)
	slices.SortFunc(badges, func(a, b domain.SecurityBadge) int { return int(a.ID - b.ID) })
	return badges, nil
}

func (r *SecurityBadgeRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
