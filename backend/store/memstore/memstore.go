// Package memstore is the transient fallback backend used when no
// DATABASE_URL is configured. All state lives in maps behind a single
// RWMutex; every instance is isolated, so tests can spin up their own.
package memstore

import (
	"sort"
	"sync"
	"time"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

type Store struct {
	mu sync.RWMutex

	users         map[string]models.User
	categories    map[uint]models.Category
	courses       map[uint]models.Course
	batches       map[uint]models.Batch
	enrollments   map[uint]models.Enrollment
	chapters      map[uint]models.Chapter
	chapterItems  map[uint]models.ChapterItem
	lectures      map[uint]models.Lecture
	resources     map[uint]models.Resource
	submissions   map[uint]models.AssignmentSubmission
	orders        map[uint]models.Order
	announcements map[uint]models.Announcement

	pkCount uint

	now func() time.Time
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:         make(map[string]models.User),
		categories:    make(map[uint]models.Category),
		courses:       make(map[uint]models.Course),
		batches:       make(map[uint]models.Batch),
		enrollments:   make(map[uint]models.Enrollment),
		chapters:      make(map[uint]models.Chapter),
		chapterItems:  make(map[uint]models.ChapterItem),
		lectures:      make(map[uint]models.Lecture),
		resources:     make(map[uint]models.Resource),
		submissions:   make(map[uint]models.AssignmentSubmission),
		orders:        make(map[uint]models.Order),
		announcements: make(map[uint]models.Announcement),
		now:           time.Now,
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() uint {
	s.pkCount++
	return s.pkCount
}

func sortCreatedDesc[T any](items []T, createdAt func(T) time.Time, id func(T) uint) {
	sort.Slice(items, func(i, j int) bool {
		a, b := createdAt(items[i]), createdAt(items[j])
		if a.Equal(b) {
			return id(items[i]) > id(items[j])
		}
		return a.After(b)
	})
}
