package models

import "time"

// Announcement with a nil BatchID is platform-wide.
type Announcement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	BatchID   *uint     `json:"batchId"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	IsPinned  bool      `gorm:"default:false" json:"isPinned"`
	CreatedBy string    `gorm:"not null" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateAnnouncementInput struct {
	BatchID  *uint  `json:"batchId"`
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	IsPinned bool   `json:"isPinned"`
}
