package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

const packageColumns = `id, name, description, price_cents, max_viewers, features, stripe_price_id, created_at, updated_at`

// PackageRepo implements domain.PackageRepository backed by PostgreSQL.
type PackageRepo struct {
	pool *pgxpool.Pool
}

func NewPackageRepo(pool *pgxpool.Pool) *PackageRepo {
	return &PackageRepo{pool: pool}
}

func scanPackage(row pgxRow) (*domain.Package, error) {
	var pkg domain.Package
	err := row.Scan(
		&pkg.ID, &pkg.Name, &pkg.Description, &pkg.PriceCents, &pkg.MaxViewers,
		&pkg.Features, &pkg.StripePriceID, &pkg.CreatedAt, &pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepo) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	features := pkg.Features
	if features == nil {
		features = []string{}
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO packages (name, description, price_cents, max_viewers, features, stripe_price_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+packageColumns,
		pkg.Name, pkg.Description, pkg.PriceCents, pkg.MaxViewers, features, pkg.StripePriceID,
	)

	created, err := scanPackage(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return created, nil
}

func (r *PackageRepo) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id)

	pkg, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return pkg, nil
}

func (r *PackageRepo) GetByStripePriceID(ctx context.Context, priceID string) (*domain.Package, error) {
	if priceID == "" {
		return nil, domain.ErrPackageNotFound
	}

	row := r.pool.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE stripe_price_id = $1`, priceID)

	pkg, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package by price ID: %w", err)
	}
	return pkg, nil
}

func (r *PackageRepo) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+packageColumns+` FROM packages ORDER BY price_cents, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var pkgs []domain.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		pkgs = append(pkgs, *pkg)
	}
	return pkgs, rows.Err()
}

func (r *PackageRepo) Update(ctx context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1 FOR UPDATE`, id)
	pkg, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock package row: %w", err)
	}

	if patch.Name != nil {
		pkg.Name = *patch.Name
	}
	if patch.Description != nil {
		pkg.Description = *patch.Description
	}
	if patch.PriceCents != nil {
		pkg.PriceCents = *patch.PriceCents
	}
	if patch.MaxViewers != nil {
		pkg.MaxViewers = *patch.MaxViewers
	}
	if patch.Features != nil {
		pkg.Features = *patch.Features
	}
	if patch.StripePriceID != nil {
		pkg.StripePriceID = *patch.StripePriceID
	}

	features := pkg.Features
	if features == nil {
		features = []string{}
	}

	row = tx.QueryRow(ctx, `
		UPDATE packages SET
			name = $2, description = $3, price_cents = $4, max_viewers = $5,
			features = $6, stripe_price_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+packageColumns,
		id, pkg.Name, pkg.Description, pkg.PriceCents, pkg.MaxViewers, features, pkg.StripePriceID,
	)

	updated, err := scanPackage(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

func (r *PackageRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

const seoColumns = `id, page_slug, title, description, focus_keyword, is_cornerstone, created_at, updated_at`

// SeoRepo implements domain.SeoRepository backed by PostgreSQL.
type SeoRepo struct {
	pool *pgxpool.Pool
}

func NewSeoRepo(pool *pgxpool.Pool) *SeoRepo {
	return &SeoRepo{pool: pool}
}

func scanSeo(row pgxRow) (*domain.SeoSettings, error) {
	var seo domain.SeoSettings
	err := row.Scan(
		&seo.ID, &seo.PageSlug, &seo.Title, &seo.Description,
		&seo.FocusKeyword, &seo.IsCornerstone, &seo.CreatedAt, &seo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &seo, nil
}

func (r *SeoRepo) Create(ctx context.Context, seo *domain.SeoSettings) (*domain.SeoSettings, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO seo_settings (page_slug, title, description, focus_keyword, is_cornerstone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+seoColumns,
		seo.PageSlug, seo.Title, seo.Description, seo.FocusKeyword, seo.IsCornerstone,
	)

	created, err := scanSeo(row)
	if err != nil {
		if sentinel, ok := uniqueViolation(err); ok {
			return nil, sentinel
		}
		return nil, fmt.Errorf("failed to create seo settings: %w", err)
	}
	return created, nil
}

func (r *SeoRepo) GetByID(ctx context.Context, id int64) (*domain.SeoSettings, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+seoColumns+` FROM seo_settings WHERE id = $1`, id)

	seo, err := scanSeo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSeoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seo settings: %w", err)
	}
	return seo, nil
}

func (r *SeoRepo) GetBySlug(ctx context.Context, slug string) (*domain.SeoSettings, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+seoColumns+` FROM seo_settings WHERE LOWER(page_slug) = LOWER($1)`, slug)

	seo, err := scanSeo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSeoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seo settings by slug: %w", err)
	}
	return seo, nil
}

func (r *SeoRepo) List(ctx context.Context) ([]domain.SeoSettings, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+seoColumns+` FROM seo_settings ORDER BY page_slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list seo settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.SeoSettings
	for rows.Next() {
		seo, err := scanSeo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seo settings: %w", err)
		}
		settings = append(settings, *seo)
	}
	return settings, rows.Err()
}

func (r *SeoRepo) Update(ctx context.Context, id int64, patch domain.SeoPatch) (*domain.SeoSettings, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+seoColumns+` FROM seo_settings WHERE id = $1 FOR UPDATE`, id)
	seo, err := scanSeo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSeoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock seo row: %w", err)
	}

	if patch.Title != nil {
		seo.Title = *patch.Title
	}
	if patch.Description != nil {
		seo.Description = *patch.Description
	}
	if patch.FocusKeyword != nil {
		seo.FocusKeyword = *patch.FocusKeyword
	}
	if patch.IsCornerstone != nil {
		seo.IsCornerstone = *patch.IsCornerstone
	}

	row = tx.QueryRow(ctx, `
		UPDATE seo_settings SET
			title = $2, description = $3, focus_keyword = $4, is_cornerstone = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+seoColumns,
		id, seo.Title, seo.Description, seo.FocusKeyword, seo.IsCornerstone,
	)

	updated, err := scanSeo(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update seo settings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}
