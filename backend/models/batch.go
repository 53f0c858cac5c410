package models

import "time"

// Batch is a scheduled cohort of a Course with its own roster and
// timetable. One course may run many batches.
type Batch struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CourseID    uint      `gorm:"not null" json:"courseId"`
	Course      *Course   `json:"course,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	Schedule    string    `json:"schedule"` // e.g. "Mon-Wed-Fri"
	Time        string    `json:"time"`     // e.g. "19:00 IST"
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	MentorID    *string   `json:"mentorId"`
	MaxStudents int       `gorm:"default:50" json:"maxStudents"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// Enrollment links a user to a batch. The composite unique index is the
// real duplicate guard: creation relies on the constraint violation, not
// on a prior read.
type Enrollment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_user_batch" json:"userId"`
	BatchID    uint      `gorm:"not null;uniqueIndex:idx_user_batch" json:"batchId"`
	Batch      *Batch    `json:"batch,omitempty"`
	Status     string    `gorm:"default:active" json:"status"` // active, completed, cancelled
	Progress   int       `gorm:"default:0" json:"progress"`    // 0-100
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolledAt"`
}

type CreateBatchInput struct {
	CourseID    uint    `json:"courseId" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Schedule    string  `json:"schedule"`
	Time        string  `json:"time"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	MentorID    *string `json:"mentorId"`
	MaxStudents int     `json:"maxStudents" validate:"omitempty,min=1"`
}

type CreateEnrollmentInput struct {
	BatchID uint `json:"batchId" validate:"required"`
}

type UpdateEnrollmentInput struct {
	Status   *string `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	Progress *int    `json:"progress" validate:"omitempty,min=0,max=100"`
}
