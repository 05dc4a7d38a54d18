package app

import (
	"context"

	"github.com/yayincibotu/twitchviewer/internal/domain"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

// ListPackages returns all viewer packages, served from the content cache
// when possible. Cache misses fall through to the repository and repopulate.
func (s *Service) ListPackages(ctx context.Context) ([]domain.Package, error) {
	if pkgs, ok := s.cache.GetPackages(ctx); ok {
		return pkgs, nil
	}

	pkgs, err := s.repos.Packages.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetPackages(ctx, pkgs)
	return pkgs, nil
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	return s.repos.Packages.GetByID(ctx, id)
}

// CreatePackageInput carries a new viewer package.
type CreatePackageInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PriceCents    int      `json:"priceCents"`
	MaxViewers    int      `json:"maxViewers"`
	Features      []string `json:"features"`
	StripePriceID string   `json:"stripePriceId"`
}

func (in CreatePackageInput) validate() error {
	if in.Name == "" {
		return apperrors.ValidationError("package name is required")
	}
	if in.PriceCents < 0 {
		return apperrors.ValidationError("price must not be negative")
	}
	if in.MaxViewers <= 0 {
		return apperrors.ValidationError("max viewers must be positive")
	}
	return nil
}

func (s *Service) CreatePackage(ctx context.Context, in CreatePackageInput) (*domain.Package, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	pkg, err := s.repos.Packages.Create(ctx, &domain.Package{
		Name:          in.Name,
		Description:   in.Description,
		PriceCents:    in.PriceCents,
		MaxViewers:    in.MaxViewers,
		Features:      in.Features,
		StripePriceID: in.StripePriceID,
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidatePackages(ctx)
	return pkg, nil
}

func (s *Service) UpdatePackage(ctx context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error) {
	if patch.PriceCents != nil && *patch.PriceCents < 0 {
		return nil, apperrors.ValidationError("price must not be negative")
	}
	if patch.MaxViewers != nil && *patch.MaxViewers <= 0 {
		return nil, apperrors.ValidationError("max viewers must be positive")
	}

	pkg, err := s.repos.Packages.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidatePackages(ctx)
	return pkg, nil
}

func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	if err := s.repos.Packages.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidatePackages(ctx)
	return nil
}

// GetSeoBySlug returns the SEO metadata for a page, cache first.
func (s *Service) GetSeoBySlug(ctx context.Context, slug string) (*domain.SeoSettings, error) {
	if seo, ok := s.cache.GetSeo(ctx, slug); ok {
		return seo, nil
	}

	seo, err := s.repos.Seo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.cache.SetSeo(ctx, seo)
	return seo, nil
}

func (s *Service) ListSeo(ctx context.Context) ([]domain.SeoSettings, error) {
	return s.repos.Seo.List(ctx)
}

// CreateSeoInput carries per-page SEO metadata.
type CreateSeoInput struct {
	PageSlug      string `json:"pageSlug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	FocusKeyword  string `json:"focusKeyword"`
	IsCornerstone bool   `json:"isCornerstone"`
}

func (in CreateSeoInput) validate() error {
	if in.PageSlug == "" {
		return apperrors.ValidationError("page slug is required")
	}
	if in.Title == "" {
		return apperrors.ValidationError("title is required")
	}
	return nil
}

func (s *Service) CreateSeo(ctx context.Context, in CreateSeoInput) (*domain.SeoSettings, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	return s.repos.Seo.Create(ctx, &domain.SeoSettings{
		PageSlug:      in.PageSlug,
		Title:         in.Title,
		Description:   in.Description,
		FocusKeyword:  in.FocusKeyword,
		IsCornerstone: in.IsCornerstone,
	})
}

func (s *Service) UpdateSeo(ctx context.Context, id int64, patch domain.SeoPatch) (*domain.SeoSettings, error) {
	seo, err := s.repos.Seo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateSeo(ctx, seo.PageSlug)
	return seo, nil
}
