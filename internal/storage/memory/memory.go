// Package memory provides an in-memory implementation of the repository
// contracts. It exists as a reference implementation and test double; the
// postgres package is used in production.
package memory

import (
	"sync"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

// table is a mutex-guarded map of rows keyed by synthetic int64 id.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) insert(row T, setID func(*T, int64)) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	setID(&row, t.nextID)
	t.rows[t.nextID] = row
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) list(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if pred == nil || pred(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) update(id int64, mutate func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Store bundles one repository per entity, all over in-memory tables.
type Store struct {
	Users    *UserRepo
	Packages *PackageRepo
	Seo      *SeoRepo
	Blog     *BlogRepo
	Media    *MediaRepo
	Faq      *FaqRepo
	Stats    *StatisticRepo
	Stories  *SuccessStoryRepo
	Offers   *OfferRepo
	Badges   *SecurityBadgeRepo
}

func NewStore() *Store {
	return &Store{
		Users:    &UserRepo{rows: newTable[domain.User]()},
		Packages: &PackageRepo{rows: newTable[domain.Package]()},
		Seo:      &SeoRepo{rows: newTable[domain.SeoSettings]()},
		Blog:     &BlogRepo{rows: newTable[domain.BlogPost]()},
		Media:    &MediaRepo{rows: newTable[domain.MediaFile]()},
		Faq:      &FaqRepo{cats: newTable[domain.FaqCategory](), items: newTable[domain.FaqItem]()},
		Stats:    &StatisticRepo{rows: newTable[domain.Statistic]()},
		Stories:  &SuccessStoryRepo{rows: newTable[domain.SuccessStory]()},
		Offers:   &OfferRepo{rows: newTable[domain.LimitedTimeOffer]()},
		Badges:   &SecurityBadgeRepo{rows: newTable[domain.SecurityBadge]()},
	}
}
