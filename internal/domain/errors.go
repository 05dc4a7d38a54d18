package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrSeoNotFound     = errors.New("seo settings not found")
	ErrPostNotFound    = errors.New("blog post not found")
	// ErrNotFound covers the supporting content entities (media, FAQ,
	// statistics, stories, offers, badges).
	ErrNotFound = errors.New("record not found")

	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateSlug     = errors.New("slug already exists")
)
