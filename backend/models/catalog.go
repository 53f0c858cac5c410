package models

import "time"

type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Course is soft-deleted via IsActive: deactivated courses stay
// addressable by primary key for orders and enrollments but never show
// up in list or slug lookups.
type Course struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Description string    `json:"description"`
	Price       string    `gorm:"type:decimal(10,2);not null" json:"price"`
	Thumbnail   string    `json:"thumbnail"`
	CategoryID  *uint     `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Duration    string    `json:"duration"` // free text, e.g. "6 weeks"
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
}

type CreateCourseInput struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Thumbnail   string `json:"thumbnail" validate:"omitempty,url"`
	CategoryID  *uint  `json:"categoryId"`
	Duration    string `json:"duration"`
}

// UpdateCourseInput carries partial changes; nil means "leave as is".
type UpdateCourseInput struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Thumbnail   *string `json:"thumbnail" validate:"omitempty,url"`
	CategoryID  *uint   `json:"categoryId"`
	Duration    *string `json:"duration"`
	IsActive    *bool   `json:"isActive"`
}
