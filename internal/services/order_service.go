package services

import (
	"fmt"
	"log"
	"time"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"
	"dashboard_api/internal/redis"
	"dashboard_api/internal/repository"

	"github.com/google/uuid"
)

// lowStockThreshold triggers a warning notification after an order
// drains a tracked stock below it.
const lowStockThreshold = 10

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type PlaceOrderInput struct {
	CustomerID      uint             `json:"customer_id" binding:"required"`
	OrderItems      []OrderItemInput `json:"order_items" binding:"required"`
	ShippingAddress string           `json:"shipping_address"`
	PaymentMethod   string           `json:"payment_method"`
}

type OrderAnalytics struct {
	TotalOrders     int64                      `json:"total_orders"`
	PendingOrders   int64                      `json:"pending_orders"`
	CompletedOrders int64                      `json:"completed_orders"`
	TotalRevenue    float64                    `json:"total_revenue"`
	TopProducts     []repository.TopProductRow `json:"top_products"`
}

type OrderService interface {
	PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error)
	GetOrderByID(userID, id uint) (*models.Order, error)
	ListOrders(userID uint, page, limit int, status string, customerID uint) ([]models.Order, int64, error)
	UpdateOrderStatus(userID, id uint, status string, deliveryDate *time.Time) (*models.Order, error)
	DeleteOrder(userID, id uint) error
	GetOrderAnalytics(userID uint) (*OrderAnalytics, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	notifRepo    repository.NotificationRepository
	cache        *redis.Client
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
	cache *redis.Client,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		notifRepo:    notifRepo,
		cache:        cache,
	}
}

// PlaceOrder validates the customer and every line item against live
// stock, prices the order from live product prices, and persists order,
// items, stock decrements and the customer aggregate atomically. The
// caller-supplied item price is stored as a per-item snapshot; the
// authoritative order total always comes from the live product price.
func (s *orderService) PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error) {
	if len(input.OrderItems) == 0 {
		return nil, apperrors.Validationf("customer id and order items are required")
	}

	customer, err := s.customerRepo.GetByID(userID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(input.OrderItems))
	type stockLevel struct {
		product   *models.Product
		remaining int
	}
	var drained []stockLevel

	for _, item := range input.OrderItems {
		if item.Quantity <= 0 {
			return nil, apperrors.Validationf("quantity must be positive for product %d", item.ProductID)
		}

		product, err := s.productRepo.GetByID(userID, item.ProductID)
		if err != nil {
			return nil, err
		}

		if product.Stock != nil && *product.Stock < item.Quantity {
			return nil, &apperrors.InsufficientStockError{
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   *product.Stock,
			}
		}

		if product.Price != nil {
			totalAmount += *product.Price * float64(item.Quantity)
		}

		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     float64(item.Quantity) * item.Price,
		})

		if product.Stock != nil {
			drained = append(drained, stockLevel{product: product, remaining: *product.Stock - item.Quantity})
		}
	}

	now := time.Now()
	order := &models.Order{
		UserID:          userID,
		CustomerID:      customer.ID,
		OrderNumber:     newOrderNumber(),
		Status:          string(models.OrderPending),
		TotalAmount:     totalAmount,
		OrderDate:       now,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
	}

	if err := s.orderRepo.PlaceOrder(order, items); err != nil {
		return nil, err
	}
	order.OrderItems = items

	for _, level := range drained {
		if level.remaining < lowStockThreshold {
			s.notifyLowStock(userID, level.product.Name, level.remaining)
		}
	}
	s.invalidateMetrics(userID)

	return order, nil
}

func (s *orderService) GetOrderByID(userID, id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(userID, id)
}

func (s *orderService) ListOrders(userID uint, page, limit int, status string, customerID uint) ([]models.Order, int64, error) {
	return s.orderRepo.List(userID, page, limit, status, customerID)
}

// UpdateOrderStatus overwrites the status without transition
// constraints. DeliveryDate is only recorded when the order moves to
// delivered.
func (s *orderService) UpdateOrderStatus(userID, id uint, status string, deliveryDate *time.Time) (*models.Order, error) {
	if status == "" {
		return nil, apperrors.Validationf("status is required")
	}

	order, err := s.orderRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if status == string(models.OrderDelivered) && deliveryDate != nil {
		order.DeliveryDate = deliveryDate
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.invalidateMetrics(userID)

	return order, nil
}

// DeleteOrder reverses a pending order in one transaction: stock is
// restored per item and the customer total rolled back. Non-pending
// orders are refused.
func (s *orderService) DeleteOrder(userID, id uint) error {
	order, err := s.orderRepo.GetByID(userID, id)
	if err != nil {
		return err
	}

	if order.Status != string(models.OrderPending) {
		return apperrors.Conflictf("cannot delete order %s with status %s", order.OrderNumber, order.Status)
	}

	if err := s.orderRepo.DeleteWithRestock(order); err != nil {
		return err
	}
	s.invalidateMetrics(userID)

	return nil
}

func (s *orderService) GetOrderAnalytics(userID uint) (*OrderAnalytics, error) {
	total, err := s.orderRepo.Count(userID)
	if err != nil {
		return nil, err
	}
	pending, err := s.orderRepo.CountByStatus(userID, string(models.OrderPending))
	if err != nil {
		return nil, err
	}
	completed, err := s.orderRepo.CountByStatus(userID, string(models.OrderDelivered))
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumTotalAmount(userID)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.orderRepo.TopProducts(userID, 5)
	if err != nil {
		return nil, err
	}

	return &OrderAnalytics{
		TotalOrders:     total,
		PendingOrders:   pending,
		CompletedOrders: completed,
		TotalRevenue:    revenue,
		TopProducts:     topProducts,
	}, nil
}

func (s *orderService) notifyLowStock(userID uint, productName string, remaining int) {
	notification := &models.Notification{
		UserID:  userID,
		Title:   "Low stock",
		Message: fmt.Sprintf("Product %s is down to %d units", productName, remaining),
		Type:    string(models.NotificationWarning),
	}
	if err := s.notifRepo.Create(notification); err != nil {
		log.Printf("Warning: failed to create low stock notification: %v", err)
		return
	}
	if s.cache != nil {
		if err := s.cache.InvalidateNotificationCount(userID); err != nil {
			log.Printf("Warning: failed to invalidate notification count cache: %v", err)
		}
	}
}

func (s *orderService) invalidateMetrics(userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMetrics(userID); err != nil {
		log.Printf("Warning: failed to invalidate metrics cache: %v", err)
	}
}

func newOrderNumber() string {
	return "ORD-" + uuid.New().String()
}
