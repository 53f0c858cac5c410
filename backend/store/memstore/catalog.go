package memstore

import (
	"sort"
	"time"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateCategory(input models.CreateCategoryInput) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.categories {
		if cat.Slug == input.Slug {
			return models.Category{}, store.ErrDuplicate
		}
	}

	cat := models.Category{
		ID:          s.nextID(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CreatedAt:   s.now(),
	}
	s.categories[cat.ID] = cat
	return cat, nil
}

func (s *Store) GetCategory(id uint) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat, ok := s.categories[id]; ok {
		return cat, nil
	}
	return models.Category{}, store.ErrNotFound
}

func (s *Store) ListCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats := make([]models.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (s *Store) CreateCourse(input models.CreateCourseInput) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, course := range s.courses {
		if course.Slug == input.Slug {
			return models.Course{}, store.ErrDuplicate
		}
	}

	now := s.now()
	course := models.Course{
		ID:          s.nextID(),
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Thumbnail:   input.Thumbnail,
		CategoryID:  input.CategoryID,
		Duration:    input.Duration,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.courses[course.ID] = course
	return *s.withCategory(course), nil
}

// withCategory attaches the category row; caller must hold a lock.
func (s *Store) withCategory(course models.Course) *models.Course {
	if course.CategoryID != nil {
		if cat, ok := s.categories[*course.CategoryID]; ok {
			course.Category = &cat
		}
	}
	return &course
}

// GetCourse returns the row even when soft-deleted; orders and
// enrollments keep pointing at deactivated courses.
func (s *Store) GetCourse(id uint) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if course, ok := s.courses[id]; ok {
		return *s.withCategory(course), nil
	}
	return models.Course{}, store.ErrNotFound
}

func (s *Store) GetCourseBySlug(slug string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, course := range s.courses {
		if course.Slug == slug && course.IsActive {
			return *s.withCategory(course), nil
		}
	}
	return models.Course{}, store.ErrNotFound
}

func (s *Store) ListCourses(filter store.CourseFilter) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		if !course.IsActive {
			continue
		}
		if filter.CategoryID != nil {
			if course.CategoryID == nil || *course.CategoryID != *filter.CategoryID {
				continue
			}
		}
		courses = append(courses, *s.withCategory(course))
	}
	sortCreatedDesc(courses,
		func(c models.Course) time.Time { return c.CreatedAt },
		func(c models.Course) uint { return c.ID })
	return courses, nil
}

func (s *Store) UpdateCourse(id uint, input models.UpdateCourseInput) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return models.Course{}, store.ErrNotFound
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Slug != nil {
		for _, other := range s.courses {
			if other.ID != id && other.Slug == *input.Slug {
				return models.Course{}, store.ErrDuplicate
			}
		}
		course.Slug = *input.Slug
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if input.Thumbnail != nil {
		course.Thumbnail = *input.Thumbnail
	}
	if input.CategoryID != nil {
		course.CategoryID = input.CategoryID
	}
	if input.Duration != nil {
		course.Duration = *input.Duration
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}
	course.UpdatedAt = s.now()
	s.courses[id] = course
	return *s.withCategory(course), nil
}

func (s *Store) DeleteCourse(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return store.ErrNotFound
	}
	course.IsActive = false
	course.UpdatedAt = s.now()
	s.courses[id] = course
	return nil
}
