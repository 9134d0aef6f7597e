package repository

import (
	"errors"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(userID, id uint) (*models.Report, error)
	List(userID uint, page, limit int, reportType string) ([]models.Report, int64, error)
	Delete(id uint) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) GetByID(userID, id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.Where("user_id = ?", userID).First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("report %d", id)
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(userID uint, page, limit int, reportType string) ([]models.Report, int64, error) {
	query := r.db.Model(&models.Report{}).Where("user_id = ?", userID)
	if reportType != "" {
		query = query.Where("type = ?", reportType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.
		Order("generated_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&reports).Error
	return reports, total, err
}

func (r *reportRepository) Delete(id uint) error {
	return r.db.Delete(&models.Report{}, id).Error
}
