package dbstore

import (
	"gurukul/backend/models"
)

func (s *Store) CreateAnnouncement(createdBy string, input models.CreateAnnouncementInput) (models.Announcement, error) {
	if err := s.guard(); err != nil {
		return models.Announcement{}, err
	}

	if input.BatchID != nil {
		if err := s.db.First(&models.Batch{}, *input.BatchID).Error; err != nil {
			return models.Announcement{}, translate(err)
		}
	}

	ann := models.Announcement{
		BatchID:   input.BatchID,
		Title:     input.Title,
		Message:   input.Message,
		IsPinned:  input.IsPinned,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(&ann).Error; err != nil {
		return models.Announcement{}, translate(err)
	}
	return ann, nil
}

func (s *Store) ListBatchAnnouncements(batchID uint) ([]models.Announcement, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var anns []models.Announcement
	err := s.db.Where("batch_id = ? OR batch_id IS NULL", batchID).
		Order("is_pinned desc, created_at desc, id desc").
		Find(&anns).Error
	if err != nil {
		return nil, translate(err)
	}
	return anns, nil
}

func (s *Store) ListGlobalAnnouncements() ([]models.Announcement, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var anns []models.Announcement
	err := s.db.Where("batch_id IS NULL").
		Order("is_pinned desc, created_at desc, id desc").
		Find(&anns).Error
	if err != nil {
		return nil, translate(err)
	}
	return anns, nil
}
