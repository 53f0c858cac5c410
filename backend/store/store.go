// Package store defines the storage capability used by the controllers.
// Two backends implement it: dbstore (Postgres via GORM) and memstore
// (mutex-guarded maps). The backend is picked once at startup; nothing
// outside that selection point may branch on backend identity.
package store

import (
	"errors"

	"gurukul/backend/models"
)

var (
	// ErrNotFound is returned when the requested row does not exist or
	// is hidden by a soft delete.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a uniqueness violation, e.g. enrolling twice
	// in the same batch.
	ErrDuplicate = errors.New("record already exists")
	// ErrBatchFull is returned when a batch already holds maxStudents
	// active enrollments.
	ErrBatchFull = errors.New("batch is full")
	// ErrUnavailable means the persistent backend was never initialized.
	ErrUnavailable = errors.New("storage unavailable")
)

type CourseFilter struct {
	CategoryID *uint
}

type BatchFilter struct {
	CourseID *uint
}

type ResourceFilter struct {
	Type string
}

// LibraryEntry aggregates one enrolled course with its published
// chapters and items for the student dashboard.
type LibraryEntry struct {
	Enrollment models.Enrollment `json:"enrollment"`
	Course     models.Course     `json:"course"`
	Chapters   []models.Chapter  `json:"chapters"`
}

type AdminStats struct {
	TotalUsers       int64  `json:"totalUsers"`
	ActiveCourses    int64  `json:"activeCourses"`
	ActiveBatches    int64  `json:"activeBatches"`
	TotalEnrollments int64  `json:"totalEnrollments"`
	Revenue          string `json:"revenue"` // sum of completed order amounts
}

type Store interface {
	// Users
	UpsertUser(user models.User) (models.User, error)
	GetUser(id string) (models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUserRole(id, role string) (models.User, error)

	// Categories
	CreateCategory(input models.CreateCategoryInput) (models.Category, error)
	GetCategory(id uint) (models.Category, error)
	ListCategories() ([]models.Category, error)

	// Courses
	CreateCourse(input models.CreateCourseInput) (models.Course, error)
	GetCourse(id uint) (models.Course, error)
	GetCourseBySlug(slug string) (models.Course, error)
	ListCourses(filter CourseFilter) ([]models.Course, error)
	UpdateCourse(id uint, input models.UpdateCourseInput) (models.Course, error)
	DeleteCourse(id uint) error

	// Batches
	CreateBatch(input models.CreateBatchInput) (models.Batch, error)
	GetBatch(id uint) (models.Batch, error)
	ListBatches(filter BatchFilter) ([]models.Batch, error)

	// Enrollments
	CreateEnrollment(userID string, input models.CreateEnrollmentInput) (models.Enrollment, error)
	ListUserEnrollments(userID string) ([]models.Enrollment, error)
	ListBatchEnrollments(batchID uint) ([]models.Enrollment, error)
	IsEnrolled(userID string, batchID uint) (bool, error)
	UpdateEnrollment(id uint, input models.UpdateEnrollmentInput) (models.Enrollment, error)

	// Chapters
	CreateChapter(input models.CreateChapterInput) (models.Chapter, error)
	ListChapters(courseID uint) ([]models.Chapter, error)
	CreateChapterItem(input models.CreateChapterItemInput) (models.ChapterItem, error)

	// Lectures
	CreateLecture(input models.CreateLectureInput) (models.Lecture, error)
	ListBatchLectures(batchID uint) ([]models.Lecture, error)
	UpdateLecture(id uint, input models.UpdateLectureInput) (models.Lecture, error)
	TodayLectures(userID string) ([]models.Lecture, error)
	LiveLectures(userID string) ([]models.Lecture, error)

	// Resources
	CreateResource(input models.CreateResourceInput) (models.Resource, error)
	GetResource(id uint) (models.Resource, error)
	ListBatchResources(batchID uint, filter ResourceFilter) ([]models.Resource, error)

	// Assignment submissions
	CreateSubmission(userID string, input models.CreateSubmissionInput) (models.AssignmentSubmission, error)
	ListResourceSubmissions(resourceID uint) ([]models.AssignmentSubmission, error)
	GradeSubmission(id uint, input models.GradeSubmissionInput) (models.AssignmentSubmission, error)

	// Orders
	CreateOrder(userID string, input models.CreateOrderInput) (models.Order, error)
	GetOrder(id uint) (models.Order, error)
	ListUserOrders(userID string) ([]models.Order, error)
	UpdateOrderStatus(id uint, status, paymentID string) (models.Order, error)
	// CompleteOrder marks the order completed and creates the matching
	// active enrollment as a single unit of work. Retried completions
	// return the existing enrollment instead of creating a second one.
	CompleteOrder(id uint, paymentID string) (models.Order, models.Enrollment, error)

	// Announcements
	CreateAnnouncement(createdBy string, input models.CreateAnnouncementInput) (models.Announcement, error)
	ListBatchAnnouncements(batchID uint) ([]models.Announcement, error)
	ListGlobalAnnouncements() ([]models.Announcement, error)

	// Dashboard
	UserLibrary(userID string) ([]LibraryEntry, error)
	AdminStats() (AdminStats, error)
}
