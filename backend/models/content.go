package models

import "time"

// Chapter is an ordered content container under a Course.
type Chapter struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	CourseID    uint          `gorm:"not null" json:"courseId"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Position    int           `gorm:"not null" json:"position"`
	IsPublished bool          `gorm:"default:true" json:"isPublished"`
	Items       []ChapterItem `json:"items,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

const (
	ItemVideo = "video"
	ItemNote  = "note"
	ItemWork  = "work"
)

type ChapterItem struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ChapterID       uint      `gorm:"not null" json:"chapterId"`
	Type            string    `gorm:"not null" json:"type"` // video, note, work
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	YoutubeID       string    `json:"youtubeId"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	DurationSeconds int       `json:"durationSeconds"`
	Position        int       `gorm:"not null" json:"position"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Lecture is a scheduled or completed live session of a Batch. It counts
// as live while its dateTime sits inside the broadcast window and a live
// link is present.
type Lecture struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	BatchID         uint      `gorm:"not null" json:"batchId"`
	ChapterID       *uint     `json:"chapterId"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	DateTime        time.Time `gorm:"not null" json:"dateTime"`
	LiveLink        string    `json:"liveLink"`
	RecordingURL    string    `json:"recordingUrl"`
	MeetingProvider string    `json:"meetingProvider"` // zoom, meet, ...
	IsCompleted     bool      `gorm:"default:false" json:"isCompleted"`
	CreatedAt       time.Time `json:"createdAt"`
}

const (
	ResourcePDF        = "pdf"
	ResourceNotes      = "notes"
	ResourceAssignment = "assignment"
)

type Resource struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	BatchID     uint       `gorm:"not null" json:"batchId"`
	Type        string     `gorm:"not null" json:"type"` // pdf, notes, assignment
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	FileURL     string     `json:"fileUrl"`
	DueDate     *time.Time `json:"dueDate"` // assignments only
	CreatedAt   time.Time  `json:"createdAt"`
}

const (
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
	SubmissionReturned  = "returned"
)

type AssignmentSubmission struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      string    `gorm:"not null" json:"userId"`
	ResourceID  uint      `gorm:"not null" json:"resourceId"`
	FileURL     string    `gorm:"not null" json:"fileUrl"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submittedAt"`
	Grade       *int      `json:"grade"` // 0-100, nil until graded
	Feedback    string    `json:"feedback"`
	Status      string    `gorm:"default:submitted" json:"status"` // submitted, graded, returned
}

type CreateChapterInput struct {
	CourseID    uint   `json:"courseId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Position    int    `json:"position" validate:"min=0"`
	IsPublished *bool  `json:"isPublished"`
}

type CreateChapterItemInput struct {
	ChapterID       uint   `json:"chapterId" validate:"required"`
	Type            string `json:"type" validate:"required,oneof=video note work"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	URL             string `json:"url" validate:"omitempty,url"`
	YoutubeID       string `json:"youtubeId"`
	ThumbnailURL    string `json:"thumbnailUrl" validate:"omitempty,url"`
	DurationSeconds int    `json:"durationSeconds" validate:"min=0"`
	Position        int    `json:"position" validate:"min=0"`
}

type CreateLectureInput struct {
	BatchID         uint      `json:"batchId" validate:"required"`
	ChapterID       *uint     `json:"chapterId"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	DateTime        time.Time `json:"dateTime" validate:"required"`
	LiveLink        string    `json:"liveLink" validate:"omitempty,url"`
	MeetingProvider string    `json:"meetingProvider"`
}

type UpdateLectureInput struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	DateTime     *time.Time `json:"dateTime"`
	LiveLink     *string    `json:"liveLink" validate:"omitempty,url"`
	RecordingURL *string    `json:"recordingUrl" validate:"omitempty,url"`
	IsCompleted  *bool      `json:"isCompleted"`
}

type CreateResourceInput struct {
	BatchID     uint       `json:"batchId" validate:"required"`
	Type        string     `json:"type" validate:"required,oneof=pdf notes assignment"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	FileURL     string     `json:"fileUrl" validate:"omitempty,url"`
	DueDate     *time.Time `json:"dueDate"`
}

type CreateSubmissionInput struct {
	ResourceID uint   `json:"resourceId" validate:"required"`
	FileURL    string `json:"fileUrl" validate:"required,url"`
}

type GradeSubmissionInput struct {
	Grade    int    `json:"grade" validate:"min=0,max=100"`
	Feedback string `json:"feedback"`
}
