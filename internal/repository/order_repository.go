package repository

import (
	"errors"
	"time"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"

	"gorm.io/gorm"
)

// TopProductRow is one row of the top-products aggregate.
type TopProductRow struct {
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type OrderRepository interface {
	PlaceOrder(order *models.Order, items []models.OrderItem) error
	DeleteWithRestock(order *models.Order) error
	GetByID(userID, id uint) (*models.Order, error)
	List(userID uint, page, limit int, status string, customerID uint) ([]models.Order, int64, error)
	GetByDateRange(userID uint, start, end time.Time) ([]models.Order, error)
	GetAllByUser(userID uint) ([]models.Order, error)
	Update(order *models.Order) error
	Count(userID uint) (int64, error)
	CountByStatus(userID uint, status string) (int64, error)
	SumTotalAmount(userID uint) (float64, error)
	TopProducts(userID uint, limit int) ([]TopProductRow, error)
	CountByCustomer(customerID uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// PlaceOrder persists the order, its items, the stock decrements and the
// customer aggregate as one transaction. Stock rows are decremented with
// a `stock >= quantity` guard so a concurrent placement that drained the
// stock between the service-level check and this write fails the whole
// transaction instead of overselling. Untracked stock (NULL) passes the
// guard and stays NULL.
func (r *orderRepository) PlaceOrder(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Where("stock IS NULL OR stock >= ?", item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &apperrors.InsufficientStockError{
					ProductName: productName(tx, item.ProductID),
					Requested:   item.Quantity,
					Available:   productStock(tx, item.ProductID),
				}
			}
		}

		return tx.Model(&models.Customer{}).
			Where("id = ?", order.CustomerID).
			Updates(map[string]interface{}{
				"total_spent": gorm.Expr("total_spent + ?", order.TotalAmount),
				"last_order":  order.OrderDate,
			}).Error
	})
}

// DeleteWithRestock reverses a pending order: restores stock per item,
// removes the items and the order, and rolls the customer total back.
// The caller is responsible for the pending-status check.
func (r *orderRepository) DeleteWithRestock(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.OrderItems {
			err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
			return err
		}

		return tx.Model(&models.Customer{}).
			Where("id = ?", order.CustomerID).
			Update("total_spent", gorm.Expr("total_spent - ?", order.TotalAmount)).Error
	})
}

func (r *orderRepository) GetByID(userID, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("order %d", id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(userID uint, page, limit int, status string, customerID uint) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID != 0 {
		query = query.Where("customer_id = ?", customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.
		Preload("Customer").Preload("OrderItems.Product").
		Order("order_date DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) GetByDateRange(userID uint, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Customer").Preload("OrderItems.Product").
		Where("user_id = ? AND order_date BETWEEN ? AND ?", userID, start, end).
		Where("status <> ?", string(models.OrderCancelled)).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAllByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByStatus(userID uint, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) SumTotalAmount(userID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *orderRepository) TopProducts(userID uint, limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id, products.name AS product_name, SUM(order_items.quantity) AS total_quantity, SUM(order_items.total) AS total_revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.user_id = ?", userID).
		Group("order_items.product_id, products.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) CountByCustomer(customerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}

func productName(tx *gorm.DB, productID uint) string {
	var name string
	tx.Model(&models.Product{}).Where("id = ?", productID).Select("name").Scan(&name)
	return name
}

func productStock(tx *gorm.DB, productID uint) int {
	var stock int
	tx.Model(&models.Product{}).Where("id = ?", productID).
		Select("COALESCE(stock, 0)").Scan(&stock)
	return stock
}
