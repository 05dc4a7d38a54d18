package domain

import (
	"context"
	"time"
)

// Package is a purchasable viewer plan shown on the pricing page.
type Package struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// PriceCents is the price in minor currency units.
	PriceCents    int       `json:"priceCents"`
	MaxViewers    int       `json:"maxViewers"`
	Features      []string  `json:"features"`
	StripePriceID string    `json:"stripePriceId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type PackagePatch struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PriceCents    *int      `json:"priceCents"`
	MaxViewers    *int      `json:"maxViewers"`
	Features      *[]string `json:"features"`
	StripePriceID *string   `json:"stripePriceId"`
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *Package) (*Package, error)
	GetByID(ctx context.Context, id int64) (*Package, error)
	GetByStripePriceID(ctx context.Context, priceID string) (*Package, error)
	List(ctx context.Context) ([]Package, error)
	Update(ctx context.Context, id int64, patch PackagePatch) (*Package, error)
	Delete(ctx context.Context, id int64) error
}
