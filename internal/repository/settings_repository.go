package repository

import (
	"errors"

	"dashboard_api/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetByUserID(userID uint) (*models.UserSettings, error)
	Create(settings *models.UserSettings) error
	Update(settings *models.UserSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByUserID(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(settings *models.UserSettings) error {
	return r.db.Create(settings).Error
}

func (r *settingsRepository) Update(settings *models.UserSettings) error {
	return r.db.Save(settings).Error
}
