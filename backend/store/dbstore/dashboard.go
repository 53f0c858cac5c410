package dbstore

import (
	"fmt"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) UserLibrary(userID string) ([]store.LibraryEntry, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var enrollments []models.Enrollment
	err := s.db.Preload("Batch").Preload("Batch.Course").Preload("Batch.Course.Category").
		Where("user_id = ? AND status = ?", userID, models.EnrollmentActive).
		Order("enrolled_at desc, id desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, translate(err)
	}

	entries := make([]store.LibraryEntry, 0, len(enrollments))
	for _, enr := range enrollments {
		if enr.Batch == nil || enr.Batch.Course == nil {
			continue
		}
		chapters, err := s.ListChapters(enr.Batch.Course.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, store.LibraryEntry{
			Enrollment: enr,
			Course:     *enr.Batch.Course,
			Chapters:   chapters,
		})
	}
	return entries, nil
}

func (s *Store) AdminStats() (store.AdminStats, error) {
	if err := s.guard(); err != nil {
		return store.AdminStats{}, err
	}

	var stats store.AdminStats
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return store.AdminStats{}, translate(err)
	}
	if err := s.db.Model(&models.Course{}).Where("is_active = ?", true).Count(&stats.ActiveCourses).Error; err != nil {
		return store.AdminStats{}, translate(err)
	}
	if err := s.db.Model(&models.Batch{}).Where("is_active = ?", true).Count(&stats.ActiveBatches).Error; err != nil {
		return store.AdminStats{}, translate(err)
	}
	if err := s.db.Model(&models.Enrollment{}).Count(&stats.TotalEnrollments).Error; err != nil {
		return store.AdminStats{}, translate(err)
	}

	var revenue *float64
	err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderCompleted).
		Select("SUM(amount::numeric)").
		Scan(&revenue).Error
	if err != nil {
		return store.AdminStats{}, translate(err)
	}
	stats.Revenue = "0.00"
	if revenue != nil {
		stats.Revenue = fmt.Sprintf("%.2f", *revenue)
	}
	return stats, nil
}
