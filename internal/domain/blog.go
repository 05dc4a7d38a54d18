package domain

import (
	"context"
	"time"
)

type BlogPost struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	AuthorID    int64     `json:"authorId"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BlogPostPatch struct {
	Slug        *string    `json:"slug"`
	Title       *string    `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type BlogRepository interface {
	Create(ctx context.Context, post *BlogPost) (*BlogPost, error)
	GetByID(ctx context.Context, id int64) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context) ([]BlogPost, error)
	Update(ctx context.Context, id int64, patch BlogPostPatch) (*BlogPost, error)
	Delete(ctx context.Context, id int64) error
}
