// Package dbstore is the persistent backend, Postgres through GORM.
package dbstore

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open connects, pings and migrates. A nil error means the backend is
// usable; any failure makes main fall back to memstore.
func Open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Batch{},
		&models.Enrollment{},
		&models.Chapter{},
		&models.ChapterItem{},
		&models.Lecture{},
		&models.Resource{},
		&models.AssignmentSubmission{},
		&models.Order{},
		&models.Announcement{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// guard fails fast when the store was built without a live connection.
func (s *Store) guard() error {
	if s.db == nil {
		return store.ErrUnavailable
	}
	return nil
}

// translate maps GORM errors onto the store sentinel set.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	}
	return err
}
