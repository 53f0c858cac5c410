package memstore

import (
	"fmt"
	"sort"
	"strconv"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

// UserLibrary joins the user's active enrollments to their courses and
// published chapter content. Access is gated purely by enrollment
// membership, so this is the whole dashboard query.
func (s *Store) UserLibrary(userID string) ([]store.LibraryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]store.LibraryEntry, 0)
	for _, enr := range s.enrollments {
		if enr.UserID != userID || enr.Status != models.EnrollmentActive {
			continue
		}
		batch, ok := s.batches[enr.BatchID]
		if !ok {
			continue
		}
		course, ok := s.courses[batch.CourseID]
		if !ok {
			continue
		}
		enr.Batch = s.withCourse(batch)
		entries = append(entries, store.LibraryEntry{
			Enrollment: enr,
			Course:     *s.withCategory(course),
			Chapters:   s.chaptersForCourse(course.ID),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Enrollment, entries[j].Enrollment
		if a.EnrolledAt.Equal(b.EnrolledAt) {
			return a.ID > b.ID
		}
		return a.EnrolledAt.After(b.EnrolledAt)
	})
	return entries, nil
}

func (s *Store) AdminStats() (store.AdminStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := store.AdminStats{TotalUsers: int64(len(s.users))}
	for _, course := range s.courses {
		if course.IsActive {
			stats.ActiveCourses++
		}
	}
	for _, batch := range s.batches {
		if batch.IsActive {
			stats.ActiveBatches++
		}
	}
	stats.TotalEnrollments = int64(len(s.enrollments))

	var revenue float64
	for _, order := range s.orders {
		if order.Status == models.OrderCompleted {
			if amount, err := strconv.ParseFloat(order.Amount, 64); err == nil {
				revenue += amount
			}
		}
	}
	stats.Revenue = fmt.Sprintf("%.2f", revenue)
	return stats, nil
}
