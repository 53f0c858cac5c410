package dbstore

import (
	"time"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateCategory(input models.CreateCategoryInput) (models.Category, error) {
	if err := s.guard(); err != nil {
		return models.Category{}, err
	}

	cat := models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return cat, nil
}

func (s *Store) GetCategory(id uint) (models.Category, error) {
	if err := s.guard(); err != nil {
		return models.Category{}, err
	}

	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return cat, nil
}

func (s *Store) ListCategories() ([]models.Category, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var cats []models.Category
	if err := s.db.Order("name asc").Find(&cats).Error; err != nil {
		return nil, translate(err)
	}
	return cats, nil
}

func (s *Store) CreateCourse(input models.CreateCourseInput) (models.Course, error) {
	if err := s.guard(); err != nil {
		return models.Course{}, err
	}

	course := models.Course{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Thumbnail:   input.Thumbnail,
		CategoryID:  input.CategoryID,
		Duration:    input.Duration,
		IsActive:    true,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return models.Course{}, translate(err)
	}
	if err := s.db.Preload("Category").First(&course, course.ID).Error; err != nil {
		return models.Course{}, translate(err)
	}
	return course, nil
}

func (s *Store) GetCourse(id uint) (models.Course, error) {
	if err := s.guard(); err != nil {
		return models.Course{}, err
	}

	var course models.Course
	if err := s.db.Preload("Category").First(&course, id).Error; err != nil {
		return models.Course{}, translate(err)
	}
	return course, nil
}

func (s *Store) GetCourseBySlug(slug string) (models.Course, error) {
	if err := s.guard(); err != nil {
		return models.Course{}, err
	}

	var course models.Course
	err := s.db.Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&course).Error
	if err != nil {
		return models.Course{}, translate(err)
	}
	return course, nil
}

func (s *Store) ListCourses(filter store.CourseFilter) ([]models.Course, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	query := s.db.Preload("Category").Where("is_active = ?", true)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var courses []models.Course
	if err := query.Order("created_at desc, id desc").Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

func (s *Store) UpdateCourse(id uint, input models.UpdateCourseInput) (models.Course, error) {
	if err := s.guard(); err != nil {
		return models.Course{}, err
	}

	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return models.Course{}, translate(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Thumbnail != nil {
		updates["thumbnail"] = *input.Thumbnail
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := s.db.Model(&course).Updates(updates).Error; err != nil {
		return models.Course{}, translate(err)
	}
	if err := s.db.Preload("Category").First(&course, id).Error; err != nil {
		return models.Course{}, translate(err)
	}
	return course, nil
}

func (s *Store) DeleteCourse(id uint) error {
	if err := s.guard(); err != nil {
		return err
	}

	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return translate(err)
	}
	return translate(s.db.Model(&course).Updates(map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	}).Error)
}
