package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yayincibotu/twitchviewer/internal/domain"
)

func TestUserRepo_DuplicateUsernameCaseInsensitive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Users.Create(ctx, &domain.User{Username: "alice", Email: "a@x.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = store.Users.Create(ctx, &domain.User{Username: "ALICE", Email: "other@x.com", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	_, err = store.Users.Create(ctx, &domain.User{Username: "bob", Email: "A@X.COM", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserRepo_LookupByUniqueKeys(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Users.Create(ctx, &domain.User{
		Username: "alice",
		Email:    "a@x.com",
		Role:     domain.RoleUser,
		TwitchID: "tw-123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	byName, err := store.Users.GetByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := store.Users.GetByEmail(ctx, "A@x.Com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byTwitch, err := store.Users.GetByTwitchID(ctx, "tw-123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byTwitch.ID)

	_, err = store.Users.GetByTwitchID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepo_UpdateMergesOnlySuppliedFields(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Users.Create(ctx, &domain.User{
		Username: "alice",
		Email:    "a@x.com",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)

	verified := true
	updated, err := store.Users.Update(ctx, created.ID, domain.UserPatch{EmailVerified: &verified})
	require.NoError(t, err)

	assert.True(t, updated.EmailVerified)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, domain.RoleUser, updated.Role)
}

func TestUserRepo_ResetTokenExpiry(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now()

	created, err := store.Users.Create(ctx, &domain.User{Username: "alice", Email: "a@x.com", Role: domain.RoleUser})
	require.NoError(t, err)

	token := "deadbeefdeadbeefdeadbeefdeadbeef"
	expiry := now.Add(time.Hour)
	_, err = store.Users.Update(ctx, created.ID, domain.UserPatch{ResetToken: &token, ResetTokenExpiry: &expiry})
	require.NoError(t, err)

	found, err := store.Users.GetByResetToken(ctx, token, now)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.Users.GetByResetToken(ctx, token, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = store.Users.GetByResetToken(ctx, "", now)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepo_Count(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	n, err := store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.Users.Create(ctx, &domain.User{Username: "alice", Email: "a@x.com", Role: domain.RoleUser})
	require.NoError(t, err)

	n, err = store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPackageRepo_CRUD(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Packages.Create(ctx, &domain.Package{
		Name:       "Starter",
		PriceCents: 999,
		MaxViewers: 50,
		Features:   []string{"chatbot", "24/7 uptime"},
	})
	require.NoError(t, err)

	fetched, err := store.Packages.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Features, fetched.Features)

	// Update merges only supplied fields.
	price := 1499
	updated, err := store.Packages.Update(ctx, created.ID, domain.PackagePatch{PriceCents: &price})
	require.NoError(t, err)
	assert.Equal(t, 1499, updated.PriceCents)
	assert.Equal(t, "Starter", updated.Name)
	assert.Equal(t, 50, updated.MaxViewers)

	require.NoError(t, store.Packages.Delete(ctx, created.ID))

	_, err = store.Packages.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)

	err = store.Packages.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestPackageRepo_FeaturesNotAliased(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	features := []string{"a"}
	created, err := store.Packages.Create(ctx, &domain.Package{Name: "P", Features: features})
	require.NoError(t, err)

	features[0] = "mutated"

	fetched, err := store.Packages.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, fetched.Features)
}

func TestSeoRepo_SlugUniqueness(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Seo.Create(ctx, &domain.SeoSettings{PageSlug: "pricing", Title: "Pricing"})
	require.NoError(t, err)

	_, err = store.Seo.Create(ctx, &domain.SeoSettings{PageSlug: "PRICING", Title: "Other"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)

	seo, err := store.Seo.GetBySlug(ctx, "Pricing")
	require.NoError(t, err)
	assert.Equal(t, "pricing", seo.PageSlug)
}

func TestBlogRepo_ListOrderedByPublishedAt(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Blog.Create(ctx, &domain.BlogPost{Slug: "old", Title: "Old", PublishedAt: older})
	require.NoError(t, err)
	_, err = store.Blog.Create(ctx, &domain.BlogPost{Slug: "new", Title: "New", PublishedAt: newer})
	require.NoError(t, err)

	posts, err := store.Blog.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "old", posts[1].Slug)
}

func TestFaqRepo_ItemRequiresCategory(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Faq.CreateItem(ctx, &domain.FaqItem{CategoryID: 99, Question: "Q"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cat, err := store.Faq.CreateCategory(ctx, &domain.FaqCategory{Name: "Billing"})
	require.NoError(t, err)

	item, err := store.Faq.CreateItem(ctx, &domain.FaqItem{CategoryID: cat.ID, Question: "Q", Answer: "A"})
	require.NoError(t, err)

	items, err := store.Faq.ListItems(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestOfferRepo_UpdateMerges(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Offers.Create(ctx, &domain.LimitedTimeOffer{
		Title:           "Launch discount",
		DiscountPercent: 20,
		Active:          true,
	})
	require.NoError(t, err)

	active := false
	updated, err := store.Offers.Update(ctx, created.ID, domain.OfferPatch{Active: &active})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, 20, updated.DiscountPercent)
	assert.Equal(t, "Launch discount", updated.Title)
}
