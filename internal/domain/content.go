package domain

import (
	"context"
	"time"
)

// Supporting marketing-page entities. They share the same flat CRUD shape:
// admin-authored rows read by the public pages.

type MediaFile struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	AltText   string    `json:"altText"`
	MimeType  string    `json:"mimeType"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

type FaqCategory struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type FaqCategoryPatch struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
}

type FaqItem struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"categoryId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	SortOrder  int    `json:"sortOrder"`
}

type FaqItemPatch struct {
	CategoryID *int64  `json:"categoryId"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	SortOrder  *int    `json:"sortOrder"`
}

type Statistic struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Value int64  `json:"value"`
	// Suffix is rendered after the value, e.g. "+" or "%".
	Suffix string `json:"suffix"`
}

type SuccessStory struct {
	ID            int64  `json:"id"`
	StreamerName  string `json:"streamerName"`
	Quote         string `json:"quote"`
	ViewersBefore int    `json:"viewersBefore"`
	ViewersAfter  int    `json:"viewersAfter"`
	AvatarURL     string `json:"avatarUrl"`
}

type LimitedTimeOffer struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	DiscountPercent int       `json:"discountPercent"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Active          bool      `json:"active"`
}

type OfferPatch struct {
	Title           *string    `json:"title"`
	DiscountPercent *int       `json:"discountPercent"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	Active          *bool      `json:"active"`
}

type SecurityBadge struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IconURL     string `json:"iconUrl"`
	Description string `json:"description"`
}

type MediaRepository interface {
	Create(ctx context.Context, file *MediaFile) (*MediaFile, error)
	GetByID(ctx context.Context, id int64) (*MediaFile, error)
	List(ctx context.Context) ([]MediaFile, error)
	Delete(ctx context.Context, id int64) error
}

type FaqRepository interface {
	CreateCategory(ctx context.Context, cat *FaqCategory) (*FaqCategory, error)
	ListCategories(ctx context.Context) ([]FaqCategory, error)
	UpdateCategory(ctx context.Context, id int64, patch FaqCategoryPatch) (*FaqCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *FaqItem) (*FaqItem, error)
	ListItems(ctx context.Context, categoryID int64) ([]FaqItem, error)
	UpdateItem(ctx context.Context, id int64, patch FaqItemPatch) (*FaqItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

type StatisticRepository interface {
	Create(ctx context.Context, stat *Statistic) (*Statistic, error)
	List(ctx context.Context) ([]Statistic, error)
	Delete(ctx context.Context, id int64) error
}

type SuccessStoryRepository interface {
	Create(ctx context.Context, story *SuccessStory) (*SuccessStory, error)
	List(ctx context.Context) ([]SuccessStory, error)
	Delete(ctx context.Context, id int64) error
}

type OfferRepository interface {
	Create(ctx context.Context, offer *LimitedTimeOffer) (*LimitedTimeOffer, error)
	List(ctx context.Context) ([]LimitedTimeOffer, error)
	Update(ctx context.Context, id int64, patch OfferPatch) (*LimitedTimeOffer, error)
	Delete(ctx context.Context, id int64) error
}

type SecurityBadgeRepository interface {
	Create(ctx context.Context, badge *SecurityBadge) (*SecurityBadge, error)
	List(ctx context.Context) ([]SecurityBadge, error)
	Delete(ctx context.Context, id int64) error
}
