package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

const postColumns = `id, slug, title, excerpt, content, author_id, published_at, created_at, updated_at`

// BlogRepo implements domain.BlogRepository backed by PostgreSQL.
type BlogRepo struct {
	pool *pgxpool.Pool
}

func NewBlogRepo(pool *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{pool: pool}
}

func scanPost(row pgxRow) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := row.Scan(
		&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content,
		&post.AuthorID, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepo) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (slug, title, excerpt, content, author_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		post.Slug, post.Title, post.Excerpt, post.Content, post.AuthorID, post.PublishedAt,
	)

	created, err := scanPost(row)
	if err != nil {
		if sentinel, ok := uniqueViolation(err); ok {
			return nil, sentinel
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return created, nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id)

	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

func (r *BlogRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM blog_posts WHERE LOWER(slug) = LOWER($1)`, slug)

	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}
	return post, nil
}

func (r *BlogRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+` FROM blog_posts ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *BlogRepo) Update(ctx context.Context, id int64, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1 FOR UPDATE`, id)
	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock blog post row: %w", err)
	}

	if patch.Slug != nil {
		post.Slug = *patch.Slug
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.PublishedAt != nil {
		post.PublishedAt = *patch.PublishedAt
	}

	row = tx.QueryRow(ctx, `
		UPDATE blog_posts SET
			slug = $2, title = $3, excerpt = $4, content = $5, published_at = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+postColumns,
		id, post.Slug, post.Title, post.Excerpt, post.Content, post.PublishedAt,
	)

	updated, err := scanPost(row)
	if err != nil {
		if sentinel, ok := uniqueViolation(err); ok {
			return nil, sentinel
		}
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// MediaRepo implements domain.MediaRepository backed by PostgreSQL.
type MediaRepo struct {
	pool *pgxpool.Pool
}

func NewMediaRepo(pool *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{pool: pool}
}

const mediaColumns = `id, filename, url, alt_text, mime_type, size_bytes, created_at`

func scanMedia(row pgxRow) (*domain.MediaFile, error) {
	var file domain.MediaFile
	err := row.Scan(&file.ID, &file.Filename, &file.URL, &file.AltText,
		&file.MimeType, &file.SizeBytes, &file.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *MediaRepo) Create(ctx context.Context, file *domain.MediaFile) (*domain.MediaFile, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO media_files (filename, url, alt_text, mime_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+mediaColumns,
		file.Filename, file.URL, file.AltText, file.MimeType, file.SizeBytes,
	)

	created, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}
	return created, nil
}

func (r *MediaRepo) GetByID(ctx context.Context, id int64) (*domain.MediaFile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+mediaColumns+` FROM media_files WHERE id = $1`, id)

	file, err := scanMedia(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media file: %w", err)
	}
	return file, nil
}

func (r *MediaRepo) List(ctx context.Context) ([]domain.MediaFile, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+mediaColumns+` FROM media_files ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list media files: %w", err)
	}
	defer rows.Close()

	var files []domain.MediaFile
	for rows.Next() {
		file, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media file: %w", err)
		}
		files = append(files, *file)
	}
	return files, rows.Err()
}

func (r *MediaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM media_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FaqRepo implements domain.FaqRepository backed by PostgreSQL. Deleting a
// category cascades to its items.
type FaqRepo struct {
	pool *pgxpool.Pool
}

func NewFaqRepo(pool *pgxpool.Pool) *FaqRepo {
	return &FaqRepo{pool: pool}
}

func (r *FaqRepo) CreateCategory(ctx context.Context, cat *domain.FaqCategory) (*domain.FaqCategory, error) {
	var created domain.FaqCategory
	err := r.pool.QueryRow(ctx, `
		INSERT INTO faq_categories (name, sort_order) VALUES ($1, $2)
		RETURNING id, name, sort_order`,
		cat.Name, cat.SortOrder,
	).Scan(&created.ID, &created.Name, &created.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to create faq category: %w", err)
	}
	return &created, nil
}

func (r *FaqRepo) ListCategories(ctx context.Context) ([]domain.FaqCategory, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, sort_order FROM faq_categories ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq categories: %w", err)
	}
	defer rows.Close()

	var cats []domain.FaqCategory
	for rows.Next() {
		var cat domain.FaqCategory
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan faq category: %w", err)
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *FaqRepo) UpdateCategory(ctx context.Context, id int64, patch domain.FaqCategoryPatch) (*domain.FaqCategory, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var cat domain.FaqCategory
	err = tx.QueryRow(ctx, `
		SELECT id, name, sort_order FROM faq_categories WHERE id = $1 FOR UPDATE`, id,
	).Scan(&cat.ID, &cat.Name, &cat.SortOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock faq category row: %w", err)
	}

	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.SortOrder != nil {
		cat.SortOrder = *patch.SortOrder
	}

	err = tx.QueryRow(ctx, `
		UPDATE faq_categories SET name = $2, sort_order = $3
		WHERE id = $1
		RETURNING id, name, sort_order`,
		id, cat.Name, cat.SortOrder,
	).Scan(&cat.ID, &cat.Name, &cat.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to update faq category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &cat, nil
}

func (r *FaqRepo) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faq_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FaqRepo) CreateItem(ctx context.Context, item *domain.FaqItem) (*domain.FaqItem, error) {
	var created domain.FaqItem
	err := r.pool.QueryRow(ctx, `
		INSERT INTO faq_items (category_id, question, answer, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, category_id, question, answer, sort_order`,
		item.CategoryID, item.Question, item.Answer, item.SortOrder,
	).Scan(&created.ID, &created.CategoryID, &created.Question, &created.Answer, &created.SortOrder)
	if err != nil {
		if sentinel, ok := foreignKeyViolation(err); ok {
			return nil, sentinel
		}
		return nil, fmt.Errorf("failed to create faq item: %w", err)
	}
	return &created, nil
}

func (r *FaqRepo) ListItems(ctx context.Context, categoryID int64) ([]domain.FaqItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, category_id, question, answer, sort_order
		FROM faq_items WHERE category_id = $1 ORDER BY sort_order, id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list faq items: %w", err)
	}
	defer rows.Close()

	var items []domain.FaqItem
	for rows.Next() {
		var item domain.FaqItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Question, &item.Answer, &item.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan faq item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *FaqRepo) UpdateItem(ctx context.Context, id int64, patch domain.FaqItemPatch) (*domain.FaqItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var item domain.FaqItem
	err = tx.QueryRow(ctx, `
		SELECT id, category_id, question, answer, sort_order
		FROM faq_items WHERE id = $1 FOR UPDATE`, id,
	).Scan(&item.ID, &item.CategoryID, &item.Question, &item.Answer, &item.SortOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock faq item row: %w", err)
	}

	if patch.CategoryID != nil {
		item.CategoryID = *patch.CategoryID
	}
	if patch.Question != nil {
		item.Question = *patch.Question
	}
	if patch.Answer != nil {
		item.Answer = *patch.Answer
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}

	err = tx.QueryRow(ctx, `
		UPDATE faq_items SET category_id = $2, question = $3, answer = $4, sort_order = $5
		WHERE id = $1
		RETURNING id, category_id, question, answer, sort_order`,
		id, item.CategoryID, item.Question, item.Answer, item.SortOrder,
	).Scan(&item.ID, &item.CategoryID, &item.Question, &item.Answer, &item.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to update faq item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &item, nil
}

func (r *FaqRepo) DeleteItem(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faq_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StatisticRepo implements domain.StatisticRepository backed by PostgreSQL.
type StatisticRepo struct {
	pool *pgxpool.Pool
}

func NewStatisticRepo(pool *pgxpool.Pool) *StatisticRepo {
	return &StatisticRepo{pool: pool}
}

func (r *StatisticRepo) Create(ctx context.Context, stat *domain.Statistic) (*domain.Statistic, error) {
	var created domain.Statistic
	err := r.pool.QueryRow(ctx, `
		INSERT INTO statistics (label, value, suffix) VALUES ($1, $2, $3)
		RETURNING id, label, value, suffix`,
		stat.Label, stat.Value, stat.Suffix,
	).Scan(&created.ID, &created.Label, &created.Value, &created.Suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create statistic: %w", err)
	}
	return &created, nil
}

func (r *StatisticRepo) List(ctx context.Context) ([]domain.Statistic, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, label, value, suffix FROM statistics ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics: %w", err)
	}
	defer rows.Close()

	var stats []domain.Statistic
	for rows.Next() {
		var stat domain.Statistic
		if err := rows.Scan(&stat.ID, &stat.Label, &stat.Value, &stat.Suffix); err != nil {
			return nil, fmt.Errorf("failed to scan statistic: %w", err)
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (r *StatisticRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM statistics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete statistic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SuccessStoryRepo implements domain.SuccessStoryRepository backed by PostgreSQL.
type SuccessStoryRepo struct {
	pool *pgxpool.Pool
}

func NewSuccessStoryRepo(pool *pgxpool.Pool) *SuccessStoryRepo {
	return &SuccessStoryRepo{pool: pool}
}

func (r *SuccessStoryRepo) Create(ctx context.Context, story *domain.SuccessStory) (*domain.SuccessStory, error) {
	var created domain.SuccessStory
	err := r.pool.QueryRow(ctx, `
		INSERT INTO success_stories (streamer_name, quote, viewers_before, viewers_after, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, streamer_name, quote, viewers_before, viewers_after, avatar_url`,
		story.StreamerName, story.Quote, story.ViewersBefore, story.ViewersAfter, story.AvatarURL,
	).Scan(&created.ID, &created.StreamerName, &created.Quote,
		&created.ViewersBefore, &created.ViewersAfter, &created.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create success story: %w", err)
	}
	return &created, nil
}

func (r *SuccessStoryRepo) List(ctx context.Context) ([]domain.SuccessStory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, streamer_name, quote, viewers_before, viewers_after, avatar_url
		FROM success_stories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list success stories: %w", err)
	}
	defer rows.Close()

	var stories []domain.SuccessStory
	for rows.Next() {
		var story domain.SuccessStory
		if err := rows.Scan(&story.ID, &story.StreamerName, &story.Quote,
			&story.ViewersBefore, &story.ViewersAfter, &story.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan success story: %w", err)
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

func (r *SuccessStoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM success_stories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete success story: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// OfferRepo implements domain.OfferRepository backed by PostgreSQL.
type OfferRepo struct {
	pool *pgxpool.Pool
}

func NewOfferRepo(pool *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

const offerColumns = `id, title, discount_percent, expires_at, active`

func scanOffer(row pgxRow) (*domain.LimitedTimeOffer, error) {
	var offer domain.LimitedTimeOffer
	err := row.Scan(&offer.ID, &offer.Title, &offer.DiscountPercent, &offer.ExpiresAt, &offer.Active)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepo) Create(ctx context.Context, offer *domain.LimitedTimeOffer) (*domain.LimitedTimeOffer, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO limited_time_offers (title, discount_percent, expires_at, active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+offerColumns,
		offer.Title, offer.DiscountPercent, offer.ExpiresAt, offer.Active,
	)

	created, err := scanOffer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}
	return created, nil
}

func (r *OfferRepo) List(ctx context.Context) ([]domain.LimitedTimeOffer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+offerColumns+` FROM limited_time_offers ORDER BY expires_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.LimitedTimeOffer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *offer)
	}
	return offers, rows.Err()
}

func (r *OfferRepo) Update(ctx context.Context, id int64, patch domain.OfferPatch) (*domain.LimitedTimeOffer, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+offerColumns+` FROM limited_time_offers WHERE id = $1 FOR UPDATE`, id)
	offer, err := scanOffer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock offer row: %w", err)
	}

	if patch.Title != nil {
		offer.Title = *patch.Title
	}
	if patch.DiscountPercent != nil {
		offer.DiscountPercent = *patch.DiscountPercent
	}
	if patch.ExpiresAt != nil {
		offer.ExpiresAt = *patch.ExpiresAt
	}
	if patch.Active != nil {
		offer.Active = *patch.Active
	}

	row = tx.QueryRow(ctx, `
		UPDATE limited_time_offers SET title = $2, discount_percent = $3, expires_at = $4, active = $5
		WHERE id = $1
		RETURNING `+offerColumns,
		id, offer.Title, offer.DiscountPercent, offer.ExpiresAt, offer.Active,
	)

	updated, err := scanOffer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

func (r *OfferRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM limited_time_offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SecurityBadgeRepo implements domain.SecurityBadgeRepository backed by PostgreSQL.
type SecurityBadgeRepo struct {
	pool *pgxpool.Pool
}

func NewSecurityBadgeRepo(pool *pgxpool.Pool) *SecurityBadgeRepo {
	return &SecurityBadgeRepo{pool: pool}
}

func (r *SecurityBadgeRepo) Create(ctx context.Context, badge *domain.SecurityBadge) (*domain.SecurityBadge, error) {
	var created domain.SecurityBadge
	err := r.pool.QueryRow(ctx, `
		INSERT INTO security_badges (name, icon_url, description) VALUES ($1, $2, $3)
		RETURNING id, name, icon_url, description`,
		badge.Name, badge.IconURL, badge.Description,
	).Scan(&created.ID, &created.Name, &created.IconURL, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create security badge: %w", err)
	}
	return &created, nil
}

func (r *SecurityBadgeRepo) List(ctx context.Context) ([]domain.SecurityBadge, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, icon_url, description FROM security_badges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list security badges: %w", err)
	}
	defer rows.Close()

	var badges []domain.SecurityBadge
	for rows.Next() {
		var badge domain.SecurityBadge
		if err := rows.Scan(&badge.ID, &badge.Name, &badge.IconURL, &badge.Description); err != nil {
			return nil, fmt.Errorf("failed to scan security badge: %w", err)
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

func (r *SecurityBadgeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM security_badges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete security badge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
