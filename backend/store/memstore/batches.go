package memstore

import (
	"time"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateBatch(input models.CreateBatchInput) (models.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[input.CourseID]; !ok {
		return models.Batch{}, store.ErrNotFound
	}

	maxStudents := input.MaxStudents
	if maxStudents == 0 {
		maxStudents = 50
	}

	now := s.now()
	batch := models.Batch{
		ID:          s.nextID(),
		CourseID:    input.CourseID,
		Title:       input.Title,
		Schedule:    input.Schedule,
		Time:        input.Time,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MentorID:    input.MentorID,
		MaxStudents: maxStudents,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.batches[batch.ID] = batch
	return batch, nil
}

func (s *Store) GetBatch(id uint) (models.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if batch, ok := s.batches[id]; ok && batch.IsActive {
		return *s.withCourse(batch), nil
	}
	return models.Batch{}, store.ErrNotFound
}

// withCourse attaches the parent course; caller must hold a lock.
func (s *Store) withCourse(batch models.Batch) *models.Batch {
	if course, ok := s.courses[batch.CourseID]; ok {
		batch.Course = s.withCategory(course)
	}
	return &batch
}

func (s *Store) ListBatches(filter store.BatchFilter) ([]models.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batches := make([]models.Batch, 0, len(s.batches))
	for _, batch := range s.batches {
		if !batch.IsActive {
			continue
		}
		if filter.CourseID != nil && batch.CourseID != *filter.CourseID {
			continue
		}
		batches = append(batches, *s.withCourse(batch))
	}
	sortCreatedDesc(batches,
		func(b models.Batch) time.Time { return b.CreatedAt },
		func(b models.Batch) uint { return b.ID })
	return batches, nil
}

// createEnrollment performs the duplicate check and insert under the
// write lock, the memstore equivalent of the DB unique constraint.
func (s *Store) createEnrollment(userID string, batchID uint) (models.Enrollment, error) {
	batch, ok := s.batches[batchID]
	if !ok {
		return models.Enrollment{}, store.ErrNotFound
	}

	active := 0
	for _, enr := range s.enrollments {
		if enr.UserID == userID && enr.BatchID == batchID {
			return models.Enrollment{}, store.ErrDuplicate
		}
		if enr.BatchID == batchID && enr.Status == models.EnrollmentActive {
			active++
		}
	}
	if active >= batch.MaxStudents {
		return models.Enrollment{}, store.ErrBatchFull
	}

	enr := models.Enrollment{
		ID:         s.nextID(),
		UserID:     userID,
		BatchID:    batchID,
		Status:     models.EnrollmentActive,
		Progress:   0,
		EnrolledAt: s.now(),
	}
	s.enrollments[enr.ID] = enr
	return enr, nil
}

func (s *Store) CreateEnrollment(userID string, input models.CreateEnrollmentInput) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createEnrollment(userID, input.BatchID)
}

func (s *Store) ListUserEnrollments(userID string) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollments := make([]models.Enrollment, 0)
	for _, enr := range s.enrollments {
		if enr.UserID != userID {
			continue
		}
		if batch, ok := s.batches[enr.BatchID]; ok {
			enr.Batch = s.withCourse(batch)
		}
		enrollments = append(enrollments, enr)
	}
	sortCreatedDesc(enrollments,
		func(e models.Enrollment) time.Time { return e.EnrolledAt },
		func(e models.Enrollment) uint { return e.ID })
	return enrollments, nil
}

func (s *Store) ListBatchEnrollments(batchID uint) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollments := make([]models.Enrollment, 0)
	for _, enr := range s.enrollments {
		if enr.BatchID == batchID {
			enrollments = append(enrollments, enr)
		}
	}
	sortCreatedDesc(enrollments,
		func(e models.Enrollment) time.Time { return e.EnrolledAt },
		func(e models.Enrollment) uint { return e.ID })
	return enrollments, nil
}

func (s *Store) IsEnrolled(userID string, batchID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, enr := range s.enrollments {
		if enr.UserID == userID && enr.BatchID == batchID && enr.Status == models.EnrollmentActive {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdateEnrollment(id uint, input models.UpdateEnrollmentInput) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enr, ok := s.enrollments[id]
	if !ok {
		return models.Enrollment{}, store.ErrNotFound
	}
	if input.Status != nil {
		enr.Status = *input.Status
	}
	if input.Progress != nil {
		enr.Progress = *input.Progress
	}
	s.enrollments[id] = enr
	return enr, nil
}

// enrolledBatchSet collects the ids of batches the user is actively
// enrolled in; caller must hold a lock.
func (s *Store) enrolledBatchSet(userID string) map[uint]bool {
	set := make(map[uint]bool)
	for _, enr := range s.enrollments {
		if enr.UserID == userID && enr.Status == models.EnrollmentActive {
			set[enr.BatchID] = true
		}
	}
	return set
}
