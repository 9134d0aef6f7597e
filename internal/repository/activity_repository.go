package repository

import (
	"errors"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	GetByID(userID, id uint) (*models.Activity, error)
	GetRecent(userID uint, limit int) ([]models.Activity, error)
	GetAll(userID uint) ([]models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id uint) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) GetByID(userID, id uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.Where("user_id = ?", userID).First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("activity %d", id)
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) GetRecent(userID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) GetAll(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).Find(&activities).Error
	return activities, err
}

func (r *activityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) Delete(id uint) error {
	return r.db.Delete(&models.Activity{}, id).Error
}
