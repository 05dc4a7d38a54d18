package domain

import (
	"context"
	"time"
)

// SeoSettings is the per-page metadata record behind meta tags and the
// sitemap. One row per routable page, keyed by slug.
type SeoSettings struct {
	ID           int64  `json:"id"`
	PageSlug     string `json:"pageSlug"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	FocusKeyword string `json:"focusKeyword"`
	// IsCornerstone marks primary pages; they get top priority in the sitemap.
	IsCornerstone bool      `json:"isCornerstone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SeoPatch struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	FocusKeyword  *string `json:"focusKeyword"`
	IsCornerstone *bool   `json:"isCornerstone"`
}

type SeoRepository interface {
	Create(ctx context.Context, seo *SeoSettings) (*SeoSettings, error)
	GetByID(ctx context.Context, id int64) (*SeoSettings, error)
	// GetBySlug matches case-insensitively.
	GetBySlug(ctx context.Context, slug string) (*SeoSettings, error)
	List(ctx context.Context) ([]SeoSettings, error)
	Update(ctx context.Context, id int64, patch SeoPatch) (*SeoSettings, error)
}
