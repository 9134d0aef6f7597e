package repository

import (
	"errors"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(userID, id uint) (*models.Product, error)
	GetAll(userID uint) ([]models.Product, error)
	GetAllByStock(userID uint) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	Count(userID uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(userID, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("user_id = ?", userID).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product %d", id)
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&products).Error
	return products, err
}

// GetAllByStock returns products with the lowest stock first, untracked
// stock last, for the inventory report.
func (r *productRepository) GetAllByStock(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("user_id = ?", userID).
		Order("stock ASC NULLS LAST").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
