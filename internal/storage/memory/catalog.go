package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

// PackageRepo implements domain.PackageRepository over an in-memory table.
type PackageRepo struct {
	rows *table[domain.Package]
}

func (r *PackageRepo) Create(_ context.Context, pkg *domain.Package) (*domain.Package, error) {
	now := time.Now()
	row := *pkg
	row.Features = slices.Clone(pkg.Features)
	row.CreatedAt = now
	row.UpdatedAt = now

	created := r.rows.insert(row, func(p *domain.Package, id int64) { p.ID = id })
	return &created, nil
}

func (r *PackageRepo) GetByID(_ context.Context, id int64) (*domain.Package, error) {
	pkg, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	pkg.Features = slices.Clone(pkg.Features)
	return &pkg, nil
}

func (r *PackageRepo) GetByStripePriceID(_ context.Context, priceID string) (*domain.Package, error) {
	pkg, ok := r.rows.find(func(p domain.Package) bool {
		return p.StripePriceID != "" && p.StripePriceID == priceID
	})
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	return &pkg, nil
}

func (r *PackageRepo) List(_ context.Context) ([]domain.Package, error) {
	pkgs := r.rows.list(nil)
	slices.SortFunc(pkgs, func(a, b domain.Package) int { return int(a.ID - b.ID) })
	return pkgs, nil
}

func (r *PackageRepo) Update(_ context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error) {
	pkg, ok := r.rows.update(id, func(p *domain.Package) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.PriceCents != nil {
			p.PriceCents = *patch.PriceCents
		}
		if patch.MaxViewers != nil {
			p.MaxViewers = *patch.MaxViewers
		}
		if patch.Features != nil {
			p.Features = slices.Clone(*patch.Features)
		}
		if patch.StripePriceID != nil {
			p.StripePriceID = *patch.StripePriceID
		}
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	return &pkg, nil
}

func (r *PackageRepo) Delete(_ context.Context, id int64) error {
	if !r.rows.remove(id) {
		return domain.ErrPackageNotFound
	}
	return nil
}

// SeoRepo implements domain.SeoRepository over an in-memory table.
type SeoRepo struct {
	rows *table[domain.SeoSettings]
}

func (r *SeoRepo) Create(ctx context.Context, seo *domain.SeoSettings) (*domain.SeoSettings, error) {
	if _, err := r.GetBySlug(ctx, seo.PageSlug); err == nil {
		return nil, domain.ErrDuplicateSlug
	}

	now := time.Now()
	row := *seo
	row.CreatedAt = now
	row.UpdatedAt = now

	created := r.rows.insert(row, func(s *domain.SeoSettings, id int64) { s.ID = id })
	return &created, nil
}

func (r *SeoRepo) GetByID(_ context.Context, id int64) (*domain.SeoSettings, error) {
	seo, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrSeoNotFound
	}
	return &seo, nil
}

func (r *SeoRepo) GetBySlug(_ context.Context, slug string) (*domain.SeoSettings, error) {
	seo, ok := r.rows.find(func(s domain.SeoSettings) bool {
		return strings.EqualFold(s.PageSlug, slug)
	})
	if !ok {
		return nil, domain.ErrSeoNotFound
	}
	return &seo, nil
}

func (r *SeoRepo) List(_ context.Context) ([]domain.SeoSettings, error) {
	settings := r.rows.list(nil)
	slices.SortFunc(settings, func(a, b domain.SeoSettings) int { return int(a.ID - b.ID) })
	return settings, nil
}

func (r *SeoRepo) Update(_ context.Context, id int64, patch domain.SeoPatch) (*domain.SeoSettings, error) {
	seo, ok := r.rows.update(id, func(s *domain.SeoSettings) {
		if patch.Title != nil {
			s.Title = *patch.Title
		}
		if patch.Description != nil {
			s.Description = *patch.Description
		}
		if patch.FocusKeyword != nil {
			s.FocusKeyword = *patch.FocusKeyword
		}
		if patch.IsCornerstone != nil {
			s.IsCornerstone = *patch.IsCornerstone
		}
		s.UpdatedAt = time.Now()
	})
	if !ok {
		return nil, domain.ErrSeoNotFound
	}
	return &seo, nil
}
