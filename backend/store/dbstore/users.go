package dbstore

import (
	"time"

	"gorm.io/gorm/clause"

	"gurukul/backend/models"
)

// UpsertUser inserts or refreshes the identity-provider profile fields.
// Role and CreatedAt are never touched on conflict.
func (s *Store) UpsertUser(user models.User) (models.User, error) {
	if err := s.guard(); err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return models.User{}, translate(err)
	}

	var stored models.User
	if err := s.db.First(&stored, "id = ?", user.ID).Error; err != nil {
		return models.User{}, translate(err)
	}
	return stored, nil
}

func (s *Store) GetUser(id string) (models.User, error) {
	if err := s.guard(); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Order("created_at asc, id asc").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (s *Store) UpdateUserRole(id, role string) (models.User, error) {
	if err := s.guard(); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}
