package dbstore

import (
	"errors"

	"gorm.io/gorm"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateBatch(input models.CreateBatchInput) (models.Batch, error) {
	if err := s.guard(); err != nil {
		return models.Batch{}, err
	}

	if _, err := s.GetCourse(input.CourseID); err != nil {
		return models.Batch{}, err
	}

	maxStudents := input.MaxStudents
	if maxStudents == 0 {
		maxStudents = 50
	}
	batch := models.Batch{
		CourseID:    input.CourseID,
		Title:       input.Title,
		Schedule:    input.Schedule,
		Time:        input.Time,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MentorID:    input.MentorID,
		MaxStudents: maxStudents,
		IsActive:    true,
	}
	if err := s.db.Create(&batch).Error; err != nil {
		return models.Batch{}, translate(err)
	}
	return batch, nil
}

func (s *Store) GetBatch(id uint) (models.Batch, error) {
	if err := s.guard(); err != nil {
		return models.Batch{}, err
	}

	var batch models.Batch
	err := s.db.Preload("Course").Preload("Course.Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&batch).Error
	if err != nil {
		return models.Batch{}, translate(err)
	}
	return batch, nil
}

func (s *Store) ListBatches(filter store.BatchFilter) ([]models.Batch, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	query := s.db.Preload("Course").Preload("Course.Category").
		Where("is_active = ?", true)
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	var batches []models.Batch
	if err := query.Order("created_at desc, id desc").Find(&batches).Error; err != nil {
		return nil, translate(err)
	}
	return batches, nil
}

// createEnrollment runs inside tx. The unique index on (user_id,
// batch_id) is the duplicate guard; the capacity check stays advisory.
func createEnrollment(tx *gorm.DB, userID string, batchID uint) (models.Enrollment, error) {
	var batch models.Batch
	if err := tx.First(&batch, batchID).Error; err != nil {
		return models.Enrollment{}, translate(err)
	}

	var active int64
	err := tx.Model(&models.Enrollment{}).
		Where("batch_id = ? AND status = ?", batchID, models.EnrollmentActive).
		Count(&active).Error
	if err != nil {
		return models.Enrollment{}, translate(err)
	}
	if active >= int64(batch.MaxStudents) {
		return models.Enrollment{}, store.ErrBatchFull
	}

	enr := models.Enrollment{
		UserID:  userID,
		BatchID: batchID,
		Status:  models.EnrollmentActive,
	}
	if err := tx.Create(&enr).Error; err != nil {
		return models.Enrollment{}, translate(err)
	}
	return enr, nil
}

func (s *Store) CreateEnrollment(userID string, input models.CreateEnrollmentInput) (models.Enrollment, error) {
	if err := s.guard(); err != nil {
		return models.Enrollment{}, err
	}

	var enr models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		enr, txErr = createEnrollment(tx, userID, input.BatchID)
		return txErr
	})
	if err != nil {
		return models.Enrollment{}, err
	}
	return enr, nil
}

func (s *Store) ListUserEnrollments(userID string) ([]models.Enrollment, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var enrollments []models.Enrollment
	err := s.db.Preload("Batch").Preload("Batch.Course").
		Where("user_id = ?", userID).
		Order("enrolled_at desc, id desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, translate(err)
	}
	return enrollments, nil
}

func (s *Store) ListBatchEnrollments(batchID uint) ([]models.Enrollment, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var enrollments []models.Enrollment
	err := s.db.Where("batch_id = ?", batchID).
		Order("enrolled_at desc, id desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, translate(err)
	}
	return enrollments, nil
}

func (s *Store) IsEnrolled(userID string, batchID uint) (bool, error) {
	if err := s.guard(); err != nil {
		return false, err
	}

	var enr models.Enrollment
	err := s.db.Where("user_id = ? AND batch_id = ? AND status = ?",
		userID, batchID, models.EnrollmentActive).
		First(&enr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, translate(err)
	}
	return true, nil
}

func (s *Store) UpdateEnrollment(id uint, input models.UpdateEnrollmentInput) (models.Enrollment, error) {
	if err := s.guard(); err != nil {
		return models.Enrollment{}, err
	}

	var enr models.Enrollment
	if err := s.db.First(&enr, id).Error; err != nil {
		return models.Enrollment{}, translate(err)
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Progress != nil {
		updates["progress"] = *input.Progress
	}
	if len(updates) > 0 {
		if err := s.db.Model(&enr).Updates(updates).Error; err != nil {
			return models.Enrollment{}, translate(err)
		}
	}
	return enr, nil
}

// enrolledBatchIDs is the subquery behind the dashboard composites.
func (s *Store) enrolledBatchIDs(userID string) *gorm.DB {
	return s.db.Model(&models.Enrollment{}).
		Select("batch_id").
		Where("user_id = ? AND status = ?", userID, models.EnrollmentActive)
}
