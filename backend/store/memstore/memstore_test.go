package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func seedCourse(t *testing.T, s *Store, title, slug string) models.Course {
	t.Helper()
	course, err := s.CreateCourse(models.CreateCourseInput{
		Title: title,
		Slug:  slug,
		Price: "999.00",
	})
	require.NoError(t, err)
	return course
}

func seedBatch(t *testing.T, s *Store, courseID uint) models.Batch {
	t.Helper()
	batch, err := s.CreateBatch(models.CreateBatchInput{
		CourseID: courseID,
		Title:    "Morning Batch",
	})
	require.NoError(t, err)
	return batch
}

func TestCourseSoftDelete(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	other := seedCourse(t, s, "Advanced", "advanced")

	require.NoError(t, s.DeleteCourse(course.ID))

	courses, err := s.ListCourses(store.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, other.ID, courses[0].ID)

	_, err = s.GetCourseBySlug("intro")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Still addressable by primary key for historical references.
	stored, err := s.GetCourse(course.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestCourseSoftDeleteDoesNotCascadeToBatches(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	require.NoError(t, s.DeleteCourse(course.ID))

	// Batches stay independently reachable after the course is gone.
	stored, err := s.GetBatch(batch.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestCourseRoundTrip(t *testing.T) {
	s := NewStore()
	cat, err := s.CreateCategory(models.CreateCategoryInput{Name: "Sanskrit", Slug: "sanskrit"})
	require.NoError(t, err)

	created, err := s.CreateCourse(models.CreateCourseInput{
		Title:      "Intro",
		Slug:       "intro",
		Price:      "999.00",
		CategoryID: &cat.ID,
	})
	require.NoError(t, err)

	stored, err := s.GetCourse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro", stored.Title)
	assert.Equal(t, "intro", stored.Slug)
	assert.Equal(t, "999.00", stored.Price)
	assert.True(t, stored.IsActive)
	assert.NotZero(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	require.NotNil(t, stored.Category)
	assert.Equal(t, "Sanskrit", stored.Category.Name)
}

func TestUpdateCourseStampsTimestamp(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")

	price := "1499.00"
	updated, err := s.UpdateCourse(course.ID, models.UpdateCourseInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "1499.00", updated.Price)
	assert.True(t, updated.UpdatedAt.After(course.UpdatedAt))
}

func TestCategoriesSortedByName(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"Yoga", "Astrology", "Sanskrit"} {
		_, err := s.CreateCategory(models.CreateCategoryInput{Name: name, Slug: name})
		require.NoError(t, err)
	}

	cats, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Astrology", cats[0].Name)
	assert.Equal(t, "Sanskrit", cats[1].Name)
	assert.Equal(t, "Yoga", cats[2].Name)
}

func TestCoursesSortedNewestFirst(t *testing.T) {
	s := NewStore()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time { return clock }

	first := seedCourse(t, s, "First", "first")
	clock = base.Add(time.Hour)
	second := seedCourse(t, s, "Second", "second")

	courses, err := s.ListCourses(store.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, second.ID, courses[0].ID)
	assert.Equal(t, first.ID, courses[1].ID)
}

func TestDuplicateEnrollment(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	_, err := s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	_, err = s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	enrollments, err := s.ListBatchEnrollments(batch.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestBatchCapacity(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch, err := s.CreateBatch(models.CreateBatchInput{
		CourseID:    course.ID,
		Title:       "Tiny Batch",
		MaxStudents: 1,
	})
	require.NoError(t, err)

	_, err = s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	_, err = s.CreateEnrollment("user-2", models.CreateEnrollmentInput{BatchID: batch.ID})
	assert.ErrorIs(t, err, store.ErrBatchFull)
}

func TestCompleteOrderCreatesEnrollment(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	order, err := s.CreateOrder("user-1", models.CreateOrderInput{BatchID: batch.ID, Amount: "999.00"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.NotEmpty(t, order.GatewayOrderID)

	completed, enr, err := s.CompleteOrder(order.ID, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, completed.Status)
	assert.Equal(t, "pay_123", completed.PaymentID)
	assert.Equal(t, "user-1", enr.UserID)
	assert.Equal(t, batch.ID, enr.BatchID)
	assert.Equal(t, models.EnrollmentActive, enr.Status)

	// A retried completion must not create a second enrollment.
	_, again, err := s.CompleteOrder(order.ID, "pay_123")
	require.NoError(t, err)
	assert.Equal(t, enr.ID, again.ID)

	enrollments, err := s.ListBatchEnrollments(batch.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestCompleteOrderBatchFullLeavesOrderPending(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch, err := s.CreateBatch(models.CreateBatchInput{
		CourseID:    course.ID,
		Title:       "Tiny Batch",
		MaxStudents: 1,
	})
	require.NoError(t, err)
	_, err = s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	order, err := s.CreateOrder("user-2", models.CreateOrderInput{BatchID: batch.ID, Amount: "999.00"})
	require.NoError(t, err)

	_, _, err = s.CompleteOrder(order.ID, "pay_1")
	require.ErrorIs(t, err, store.ErrBatchFull)

	// The failed completion must not leave a completed order behind.
	stored, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, stored.Status)
	assert.Empty(t, stored.PaymentID)

	enrollments, err := s.ListBatchEnrollments(batch.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestCompleteOrderReactivatesCancelledEnrollment(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	enr, err := s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)
	cancelled := models.EnrollmentCancelled
	_, err = s.UpdateEnrollment(enr.ID, models.UpdateEnrollmentInput{Status: &cancelled})
	require.NoError(t, err)

	order, err := s.CreateOrder("user-1", models.CreateOrderInput{BatchID: batch.ID, Amount: "999.00"})
	require.NoError(t, err)

	completed, again, err := s.CompleteOrder(order.ID, "pay_1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, completed.Status)
	assert.Equal(t, enr.ID, again.ID)
	assert.Equal(t, models.EnrollmentActive, again.Status)

	enrollments, err := s.ListBatchEnrollments(batch.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.EnrollmentActive, enrollments[0].Status)
}

func TestLecturesSortedBySchedule(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour} {
		_, err := s.CreateLecture(models.CreateLectureInput{
			BatchID:  batch.ID,
			Title:    "Session",
			DateTime: base.Add(offset),
		})
		require.NoError(t, err)
	}

	lectures, err := s.ListBatchLectures(batch.ID)
	require.NoError(t, err)
	require.Len(t, lectures, 3)
	assert.True(t, lectures[0].DateTime.Before(lectures[1].DateTime))
	assert.True(t, lectures[1].DateTime.Before(lectures[2].DateTime))
}

func TestLiveLectureWindow(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)
	_, err := s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	inWindow, err := s.CreateLecture(models.CreateLectureInput{
		BatchID:  batch.ID,
		Title:    "Live now",
		DateTime: now.Add(time.Hour),
		LiveLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	// Outside the window.
	_, err = s.CreateLecture(models.CreateLectureInput{
		BatchID:  batch.ID,
		Title:    "Tomorrow",
		DateTime: now.Add(26 * time.Hour),
		LiveLink: "https://meet.example.com/def",
	})
	require.NoError(t, err)

	// In the window but no live link.
	_, err = s.CreateLecture(models.CreateLectureInput{
		BatchID:  batch.ID,
		Title:    "No link",
		DateTime: now.Add(time.Hour),
	})
	require.NoError(t, err)

	live, err := s.LiveLectures("user-1")
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, inWindow.ID, live[0].ID)

	// Not enrolled: nothing is live.
	live, err = s.LiveLectures("user-2")
	require.NoError(t, err)
	assert.Empty(t, live)
}

func TestTodayLectures(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)
	_, err := s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	today, err := s.CreateLecture(models.CreateLectureInput{
		BatchID:  batch.ID,
		Title:    "Today",
		DateTime: time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = s.CreateLecture(models.CreateLectureInput{
		BatchID:  batch.ID,
		Title:    "Tomorrow",
		DateTime: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	lectures, err := s.TodayLectures("user-1")
	require.NoError(t, err)
	require.Len(t, lectures, 1)
	assert.Equal(t, today.ID, lectures[0].ID)
}

func TestUserLibrary(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	chapter, err := s.CreateChapter(models.CreateChapterInput{
		CourseID: course.ID,
		Title:    "Alphabet",
		Position: 1,
	})
	require.NoError(t, err)
	_, err = s.CreateChapterItem(models.CreateChapterItemInput{
		ChapterID: chapter.ID,
		Type:      models.ItemVideo,
		Title:     "Vowels",
		Position:  2,
	})
	require.NoError(t, err)
	first, err := s.CreateChapterItem(models.CreateChapterItemInput{
		ChapterID: chapter.ID,
		Type:      models.ItemNote,
		Title:     "Script",
		Position:  1,
	})
	require.NoError(t, err)

	// Unpublished chapters stay hidden.
	hidden := false
	_, err = s.CreateChapter(models.CreateChapterInput{
		CourseID:    course.ID,
		Title:       "Draft",
		Position:    2,
		IsPublished: &hidden,
	})
	require.NoError(t, err)

	entries, err := s.UserLibrary("user-1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = s.CreateEnrollment("user-1", models.CreateEnrollmentInput{BatchID: batch.ID})
	require.NoError(t, err)

	entries, err = s.UserLibrary("user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, course.ID, entries[0].Course.ID)
	require.Len(t, entries[0].Chapters, 1)
	require.Len(t, entries[0].Chapters[0].Items, 2)
	assert.Equal(t, first.ID, entries[0].Chapters[0].Items[0].ID)
}

func TestUpsertUserIdempotent(t *testing.T) {
	s := NewStore()
	email := "arya@example.com"
	created, err := s.UpsertUser(models.User{ID: "user-1", Email: &email, FirstName: "Arya"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, created.Role)

	_, err = s.UpdateUserRole("user-1", models.RoleMentor)
	require.NoError(t, err)

	// A later login refreshes profile fields but keeps the role.
	updated, err := s.UpsertUser(models.User{ID: "user-1", Email: &email, FirstName: "Aarya"})
	require.NoError(t, err)
	assert.Equal(t, "Aarya", updated.FirstName)
	assert.Equal(t, models.RoleMentor, updated.Role)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestAnnouncementsPinnedFirst(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)

	_, err := s.CreateAnnouncement("admin-1", models.CreateAnnouncementInput{
		BatchID: &batch.ID,
		Title:   "Welcome",
		Message: "See you Monday",
	})
	require.NoError(t, err)
	pinned, err := s.CreateAnnouncement("admin-1", models.CreateAnnouncementInput{
		Title:    "Maintenance window",
		Message:  "Platform down Sunday night",
		IsPinned: true,
	})
	require.NoError(t, err)

	anns, err := s.ListBatchAnnouncements(batch.ID)
	require.NoError(t, err)
	require.Len(t, anns, 2)
	assert.Equal(t, pinned.ID, anns[0].ID)

	global, err := s.ListGlobalAnnouncements()
	require.NoError(t, err)
	require.Len(t, global, 1)
	assert.Equal(t, pinned.ID, global[0].ID)
}

func TestAdminStats(t *testing.T) {
	s := NewStore()
	course := seedCourse(t, s, "Intro", "intro")
	batch := seedBatch(t, s, course.ID)
	_, err := s.UpsertUser(models.User{ID: "user-1"})
	require.NoError(t, err)

	order, err := s.CreateOrder("user-1", models.CreateOrderInput{BatchID: batch.ID, Amount: "999.00"})
	require.NoError(t, err)
	_, _, err = s.CompleteOrder(order.ID, "pay_1")
	require.NoError(t, err)

	stats, err := s.AdminStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveCourses)
	assert.Equal(t, int64(1), stats.ActiveBatches)
	assert.Equal(t, int64(1), stats.TotalEnrollments)
	assert.Equal(t, "999.00", stats.Revenue)
}
