package memstore

import (
	"sort"
	"time"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateChapter(input models.CreateChapterInput) (models.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[input.CourseID]; !ok {
		return models.Chapter{}, store.ErrNotFound
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}
	chapter := models.Chapter{
		ID:          s.nextID(),
		CourseID:    input.CourseID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		IsPublished: published,
		CreatedAt:   s.now(),
	}
	s.chapters[chapter.ID] = chapter
	return chapter, nil
}

// chaptersForCourse returns published chapters with their items, both
// ordered by position; caller must hold a lock.
func (s *Store) chaptersForCourse(courseID uint) []models.Chapter {
	chapters := make([]models.Chapter, 0)
	for _, ch := range s.chapters {
		if ch.CourseID != courseID || !ch.IsPublished {
			continue
		}
		ch.Items = make([]models.ChapterItem, 0)
		for _, item := range s.chapterItems {
			if item.ChapterID == ch.ID {
				ch.Items = append(ch.Items, item)
			}
		}
		sort.Slice(ch.Items, func(i, j int) bool { return ch.Items[i].Position < ch.Items[j].Position })
		chapters = append(chapters, ch)
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].Position < chapters[j].Position })
	return chapters
}

func (s *Store) ListChapters(courseID uint) ([]models.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.courses[courseID]; !ok {
		return nil, store.ErrNotFound
	}
	return s.chaptersForCourse(courseID), nil
}

func (s *Store) CreateChapterItem(input models.CreateChapterItemInput) (models.ChapterItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chapters[input.ChapterID]; !ok {
		return models.ChapterItem{}, store.ErrNotFound
	}

	item := models.ChapterItem{
		ID:              s.nextID(),
		ChapterID:       input.ChapterID,
		Type:            input.Type,
		Title:           input.Title,
		Description:     input.Description,
		URL:             input.URL,
		YoutubeID:       input.YoutubeID,
		ThumbnailURL:    input.ThumbnailURL,
		DurationSeconds: input.DurationSeconds,
		Position:        input.Position,
		CreatedAt:       s.now(),
	}
	s.chapterItems[item.ID] = item
	return item, nil
}

func (s *Store) CreateLecture(input models.CreateLectureInput) (models.Lecture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[input.BatchID]; !ok {
		return models.Lecture{}, store.ErrNotFound
	}

	lecture := models.Lecture{
		ID:              s.nextID(),
		BatchID:         input.BatchID,
		ChapterID:       input.ChapterID,
		Title:           input.Title,
		Description:     input.Description,
		DateTime:        input.DateTime,
		LiveLink:        input.LiveLink,
		MeetingProvider: input.MeetingProvider,
		CreatedAt:       s.now(),
	}
	s.lectures[lecture.ID] = lecture
	return lecture, nil
}

func sortByDateTime(lectures []models.Lecture) {
	sort.Slice(lectures, func(i, j int) bool {
		if lectures[i].DateTime.Equal(lectures[j].DateTime) {
			return lectures[i].ID < lectures[j].ID
		}
		return lectures[i].DateTime.Before(lectures[j].DateTime)
	})
}

func (s *Store) ListBatchLectures(batchID uint) ([]models.Lecture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lectures := make([]models.Lecture, 0)
	for _, lec := range s.lectures {
		if lec.BatchID == batchID {
			lectures = append(lectures, lec)
		}
	}
	sortByDateTime(lectures)
	return lectures, nil
}

func (s *Store) UpdateLecture(id uint, input models.UpdateLectureInput) (models.Lecture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lec, ok := s.lectures[id]
	if !ok {
		return models.Lecture{}, store.ErrNotFound
	}
	if input.Title != nil {
		lec.Title = *input.Title
	}
	if input.Description != nil {
		lec.Description = *input.Description
	}
	if input.DateTime != nil {
		lec.DateTime = *input.DateTime
	}
	if input.LiveLink != nil {
		lec.LiveLink = *input.LiveLink
	}
	if input.RecordingURL != nil {
		lec.RecordingURL = *input.RecordingURL
	}
	if input.IsCompleted != nil {
		lec.IsCompleted = *input.IsCompleted
	}
	s.lectures[id] = lec
	return lec, nil
}

// TodayLectures returns the user's lectures scheduled within the current
// calendar day in server-local time.
func (s *Store) TodayLectures(userID string) ([]models.Lecture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	enrolled := s.enrolledBatchSet(userID)
	lectures := make([]models.Lecture, 0)
	for _, lec := range s.lectures {
		if !enrolled[lec.BatchID] {
			continue
		}
		if lec.DateTime.Before(dayStart) || !lec.DateTime.Before(dayEnd) {
			continue
		}
		lectures = append(lectures, lec)
	}
	sortByDateTime(lectures)
	return lectures, nil
}

// LiveLectures returns lectures whose scheduled time falls inside the
// broadcast window, 30 minutes before now until 2 hours after, and that
// have a live link set.
func (s *Store) LiveLectures(userID string) ([]models.Lecture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	windowStart := now.Add(-30 * time.Minute)
	windowEnd := now.Add(2 * time.Hour)

	enrolled := s.enrolledBatchSet(userID)
	lectures := make([]models.Lecture, 0)
	for _, lec := range s.lectures {
		if !enrolled[lec.BatchID] || lec.LiveLink == "" {
			continue
		}
		if lec.DateTime.Before(windowStart) || lec.DateTime.After(windowEnd) {
			continue
		}
		lectures = append(lectures, lec)
	}
	sortByDateTime(lectures)
	return lectures, nil
}

func (s *Store) CreateResource(input models.CreateResourceInput) (models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[input.BatchID]; !ok {
		return models.Resource{}, store.ErrNotFound
	}

	res := models.Resource{
		ID:          s.nextID(),
		BatchID:     input.BatchID,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		FileURL:     input.FileURL,
		DueDate:     input.DueDate,
		CreatedAt:   s.now(),
	}
	s.resources[res.ID] = res
	return res, nil
}

func (s *Store) GetResource(id uint) (models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if res, ok := s.resources[id]; ok {
		return res, nil
	}
	return models.Resource{}, store.ErrNotFound
}

func (s *Store) ListBatchResources(batchID uint, filter store.ResourceFilter) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]models.Resource, 0)
	for _, res := range s.resources {
		if res.BatchID != batchID {
			continue
		}
		if filter.Type != "" && res.Type != filter.Type {
			continue
		}
		resources = append(resources, res)
	}
	sortCreatedDesc(resources,
		func(r models.Resource) time.Time { return r.CreatedAt },
		func(r models.Resource) uint { return r.ID })
	return resources, nil
}

func (s *Store) CreateSubmission(userID string, input models.CreateSubmissionInput) (models.AssignmentSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[input.ResourceID]; !ok {
		return models.AssignmentSubmission{}, store.ErrNotFound
	}

	sub := models.AssignmentSubmission{
		ID:          s.nextID(),
		UserID:      userID,
		ResourceID:  input.ResourceID,
		FileURL:     input.FileURL,
		SubmittedAt: s.now(),
		Status:      models.SubmissionSubmitted,
	}
	s.submissions[sub.ID] = sub
	return sub, nil
}

func (s *Store) ListResourceSubmissions(resourceID uint) ([]models.AssignmentSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]models.AssignmentSubmission, 0)
	for _, sub := range s.submissions {
		if sub.ResourceID == resourceID {
			subs = append(subs, sub)
		}
	}
	sortCreatedDesc(subs,
		func(x models.AssignmentSubmission) time.Time { return x.SubmittedAt },
		func(x models.AssignmentSubmission) uint { return x.ID })
	return subs, nil
}

func (s *Store) GradeSubmission(id uint, input models.GradeSubmissionInput) (models.AssignmentSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[id]
	if !ok {
		return models.AssignmentSubmission{}, store.ErrNotFound
	}
	grade := input.Grade
	sub.Grade = &grade
	sub.Feedback = input.Feedback
	sub.Status = models.SubmissionGraded
	s.submissions[id] = sub
	return sub, nil
}
