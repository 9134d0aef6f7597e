package repository

import (
	"errors"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"

	"gorm.io/gorm"
)

// TopCustomerRow is one row of the top-customers aggregate.
type TopCustomerRow struct {
	CustomerID uint    `json:"customer_id"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
	OrderCount int64   `json:"order_count"`
}

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(userID, id uint) (*models.Customer, error)
	GetByIDWithOrders(userID, id uint) (*models.Customer, error)
	GetByEmail(userID uint, email string) (*models.Customer, error)
	List(userID uint, page, limit int, search, status string) ([]models.Customer, int64, error)
	GetAll(userID uint) ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	Count(userID uint) (int64, error)
	CountByStatus(userID uint, status string) (int64, error)
	SumTotalSpent(userID uint) (float64, error)
	TopBySpent(userID uint, limit int) ([]TopCustomerRow, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(userID, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("user_id = ?", userID).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("customer %d", id)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByIDWithOrders(userID, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("orders.order_date DESC")
		}).
		Preload("Orders.OrderItems.Product").
		Where("user_id = ?", userID).
		First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("customer %d", id)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByEmail(userID uint, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("user_id = ? AND email = ?", userID, email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(userID uint, page, limit int, search, status string) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{}).Where("user_id = ?", userID)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&customers).Error
	return customers, total, err
}

func (r *customerRepository) GetAll(userID uint) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("user_id = ?", userID).Order("total_spent DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}

func (r *customerRepository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *customerRepository) CountByStatus(userID uint, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) SumTotalSpent(userID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Customer{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_spent), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *customerRepository) TopBySpent(userID uint, limit int) ([]TopCustomerRow, error) {
	var rows []TopCustomerRow
	err := r.db.Model(&models.Customer{}).
		Select("customers.id AS customer_id, customers.name, customers.total_spent, COUNT(orders.id) AS order_count").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id AND orders.deleted_at IS NULL").
		Where("customers.user_id = ?", userID).
		Group("customers.id, customers.name, customers.total_spent").
		Order("customers.total_spent DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
