package dbstore

import (
	"time"

	"gorm.io/gorm"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateChapter(input models.CreateChapterInput) (models.Chapter, error) {
	if err := s.guard(); err != nil {
		return models.Chapter{}, err
	}

	if err := s.db.First(&models.Course{}, input.CourseID).Error; err != nil {
		return models.Chapter{}, translate(err)
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}
	chapter := models.Chapter{
		CourseID:    input.CourseID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		IsPublished: published,
	}
	if err := s.db.Create(&chapter).Error; err != nil {
		return models.Chapter{}, translate(err)
	}
	return chapter, nil
}

func (s *Store) ListChapters(courseID uint) ([]models.Chapter, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	if err := s.db.First(&models.Course{}, courseID).Error; err != nil {
		return nil, translate(err)
	}

	var chapters []models.Chapter
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc, id asc")
	}).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Order("position asc, id asc").
		Find(&chapters).Error
	if err != nil {
		return nil, translate(err)
	}
	return chapters, nil
}

func (s *Store) CreateChapterItem(input models.CreateChapterItemInput) (models.ChapterItem, error) {
	if err := s.guard(); err != nil {
		return models.ChapterItem{}, err
	}

	if err := s.db.First(&models.Chapter{}, input.ChapterID).Error; err != nil {
		return models.ChapterItem{}, translate(err)
	}

	item := models.ChapterItem{
		ChapterID:       input.ChapterID,
		Type:            input.Type,
		Title:           input.Title,
		Description:     input.Description,
		URL:             input.URL,
		YoutubeID:       input.YoutubeID,
		ThumbnailURL:    input.ThumbnailURL,
		DurationSeconds: input.DurationSeconds,
		Position:        input.Position,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.ChapterItem{}, translate(err)
	}
	return item, nil
}

func (s *Store) CreateLecture(input models.CreateLectureInput) (models.Lecture, error) {
	if err := s.guard(); err != nil {
		return models.Lecture{}, err
	}

	if err := s.db.First(&models.Batch{}, input.BatchID).Error; err != nil {
		return models.Lecture{}, translate(err)
	}

	lecture := models.Lecture{
		BatchID:         input.BatchID,
		ChapterID:       input.ChapterID,
		Title:           input.Title,
		Description:     input.Description,
		DateTime:        input.DateTime,
		LiveLink:        input.LiveLink,
		MeetingProvider: input.MeetingProvider,
	}
	if err := s.db.Create(&lecture).Error; err != nil {
		return models.Lecture{}, translate(err)
	}
	return lecture, nil
}

func (s *Store) ListBatchLectures(batchID uint) ([]models.Lecture, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var lectures []models.Lecture
	err := s.db.Where("batch_id = ?", batchID).
		Order("date_time asc, id asc").
		Find(&lectures).Error
	if err != nil {
		return nil, translate(err)
	}
	return lectures, nil
}

func (s *Store) UpdateLecture(id uint, input models.UpdateLectureInput) (models.Lecture, error) {
	if err := s.guard(); err != nil {
		return models.Lecture{}, err
	}

	var lecture models.Lecture
	if err := s.db.First(&lecture, id).Error; err != nil {
		return models.Lecture{}, translate(err)
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DateTime != nil {
		updates["date_time"] = *input.DateTime
	}
	if input.LiveLink != nil {
		updates["live_link"] = *input.LiveLink
	}
	if input.RecordingURL != nil {
		updates["recording_url"] = *input.RecordingURL
	}
	if input.IsCompleted != nil {
		updates["is_completed"] = *input.IsCompleted
	}
	if len(updates) > 0 {
		if err := s.db.Model(&lecture).Updates(updates).Error; err != nil {
			return models.Lecture{}, translate(err)
		}
	}
	return lecture, nil
}

func (s *Store) TodayLectures(userID string) ([]models.Lecture, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var lectures []models.Lecture
	err := s.db.Where("batch_id IN (?)", s.enrolledBatchIDs(userID)).
		Where("date_time >= ? AND date_time < ?", dayStart, dayEnd).
		Order("date_time asc, id asc").
		Find(&lectures).Error
	if err != nil {
		return nil, translate(err)
	}
	return lectures, nil
}

func (s *Store) LiveLectures(userID string) ([]models.Lecture, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	now := time.Now()
	var lectures []models.Lecture
	err := s.db.Where("batch_id IN (?)", s.enrolledBatchIDs(userID)).
		Where("date_time >= ? AND date_time <= ?", now.Add(-30*time.Minute), now.Add(2*time.Hour)).
		Where("live_link <> ''").
		Order("date_time asc, id asc").
		Find(&lectures).Error
	if err != nil {
		return nil, translate(err)
	}
	return lectures, nil
}

func (s *Store) CreateResource(input models.CreateResourceInput) (models.Resource, error) {
	if err := s.guard(); err != nil {
		return models.Resource{}, err
	}

	if err := s.db.First(&models.Batch{}, input.BatchID).Error; err != nil {
		return models.Resource{}, translate(err)
	}

	res := models.Resource{
		BatchID:     input.BatchID,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		FileURL:     input.FileURL,
		DueDate:     input.DueDate,
	}
	if err := s.db.Create(&res).Error; err != nil {
		return models.Resource{}, translate(err)
	}
	return res, nil
}

func (s *Store) GetResource(id uint) (models.Resource, error) {
	if err := s.guard(); err != nil {
		return models.Resource{}, err
	}

	var res models.Resource
	if err := s.db.First(&res, id).Error; err != nil {
		return models.Resource{}, translate(err)
	}
	return res, nil
}

func (s *Store) ListBatchResources(batchID uint, filter store.ResourceFilter) ([]models.Resource, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	query := s.db.Where("batch_id = ?", batchID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var resources []models.Resource
	if err := query.Order("created_at desc, id desc").Find(&resources).Error; err != nil {
		return nil, translate(err)
	}
	return resources, nil
}

func (s *Store) CreateSubmission(userID string, input models.CreateSubmissionInput) (models.AssignmentSubmission, error) {
	if err := s.guard(); err != nil {
		return models.AssignmentSubmission{}, err
	}

	if err := s.db.First(&models.Resource{}, input.ResourceID).Error; err != nil {
		return models.AssignmentSubmission{}, translate(err)
	}

	sub := models.AssignmentSubmission{
		UserID:     userID,
		ResourceID: input.ResourceID,
		FileURL:    input.FileURL,
		Status:     models.SubmissionSubmitted,
	}
	if err := s.db.Create(&sub).Error; err != nil {
		return models.AssignmentSubmission{}, translate(err)
	}
	return sub, nil
}

func (s *Store) ListResourceSubmissions(resourceID uint) ([]models.AssignmentSubmission, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var subs []models.AssignmentSubmission
	err := s.db.Where("resource_id = ?", resourceID).
		Order("submitted_at desc, id desc").
		Find(&subs).Error
	if err != nil {
		return nil, translate(err)
	}
	return subs, nil
}

func (s *Store) GradeSubmission(id uint, input models.GradeSubmissionInput) (models.AssignmentSubmission, error) {
	if err := s.guard(); err != nil {
		return models.AssignmentSubmission{}, err
	}

	var sub models.AssignmentSubmission
	if err := s.db.First(&sub, id).Error; err != nil {
		return models.AssignmentSubmission{}, translate(err)
	}

	err := s.db.Model(&sub).Updates(map[string]interface{}{
		"grade":    input.Grade,
		"feedback": input.Feedback,
		"status":   models.SubmissionGraded,
	}).Error
	if err != nil {
		return models.AssignmentSubmission{}, translate(err)
	}
	return sub, nil
}
