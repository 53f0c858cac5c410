package memstore

import (
	"sort"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateAnnouncement(createdBy string, input models.CreateAnnouncementInput) (models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.BatchID != nil {
		if _, ok := s.batches[*input.BatchID]; !ok {
			return models.Announcement{}, store.ErrNotFound
		}
	}

	ann := models.Announcement{
		ID:        s.nextID(),
		BatchID:   input.BatchID,
		Title:     input.Title,
		Message:   input.Message,
		IsPinned:  input.IsPinned,
		CreatedBy: createdBy,
		CreatedAt: s.now(),
	}
	s.announcements[ann.ID] = ann
	return ann, nil
}

func sortAnnouncements(anns []models.Announcement) {
	sort.Slice(anns, func(i, j int) bool {
		if anns[i].IsPinned != anns[j].IsPinned {
			return anns[i].IsPinned
		}
		if anns[i].CreatedAt.Equal(anns[j].CreatedAt) {
			return anns[i].ID > anns[j].ID
		}
		return anns[i].CreatedAt.After(anns[j].CreatedAt)
	})
}

// ListBatchAnnouncements includes platform-wide rows (nil batch id)
// alongside the batch's own.
func (s *Store) ListBatchAnnouncements(batchID uint) ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	anns := make([]models.Announcement, 0)
	for _, ann := range s.announcements {
		if ann.BatchID == nil || *ann.BatchID == batchID {
			anns = append(anns, ann)
		}
	}
	sortAnnouncements(anns)
	return anns, nil
}

func (s *Store) ListGlobalAnnouncements() ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	anns := make([]models.Announcement, 0)
	for _, ann := range s.announcements {
		if ann.BatchID == nil {
			anns = append(anns, ann)
		}
	}
	sortAnnouncements(anns)
	return anns, nil
}
