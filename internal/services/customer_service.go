package services

import (
	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"
	"dashboard_api/internal/repository"
)

type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Status  string `json:"status"`
}

type CustomerAnalytics struct {
	TotalCustomers  int64                       `json:"total_customers"`
	ActiveCustomers int64                       `json:"active_customers"`
	VIPCustomers    int64                       `json:"vip_customers"`
	TotalRevenue    float64                     `json:"total_revenue"`
	TopCustomers    []repository.TopCustomerRow `json:"top_customers"`
}

type CustomerService interface {
	CreateCustomer(userID uint, input CustomerInput) (*models.Customer, error)
	GetCustomerByID(userID, id uint) (*models.Customer, error)
	ListCustomers(userID uint, page, limit int, search, status string) ([]models.Customer, int64, error)
	UpdateCustomer(userID, id uint, input CustomerInput) (*models.Customer, error)
	DeleteCustomer(userID, id uint) error
	GetCustomerAnalytics(userID uint) (*CustomerAnalytics, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, orderRepo: orderRepo}
}

func (s *customerService) CreateCustomer(userID uint, input CustomerInput) (*models.Customer, error) {
	existing, err := s.customerRepo.GetByEmail(userID, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validationf("customer with email %s already exists", input.Email)
	}

	status := input.Status
	if status == "" {
		status = string(models.CustomerActive)
	}

	customer := &models.Customer{
		UserID:  userID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
		Status:  status,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerByID(userID, id uint) (*models.Customer, error) {
	return s.customerRepo.GetByIDWithOrders(userID, id)
}

func (s *customerService) ListCustomers(userID uint, page, limit int, search, status string) ([]models.Customer, int64, error) {
	return s.customerRepo.List(userID, page, limit, search, status)
}

func (s *customerService) UpdateCustomer(userID, id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != customer.Email {
		existing, err := s.customerRepo.GetByEmail(userID, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperrors.Validationf("customer with email %s already exists", input.Email)
		}
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.City = input.City
	customer.Country = input.Country
	if input.Status != "" {
		customer.Status = input.Status
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer refuses to remove a customer that still owns orders.
func (s *customerService) DeleteCustomer(userID, id uint) error {
	customer, err := s.customerRepo.GetByID(userID, id)
	if err != nil {
		return err
	}

	orderCount, err := s.orderRepo.CountByCustomer(customer.ID)
	if err != nil {
		return err
	}
	if orderCount > 0 {
		return apperrors.Conflictf("cannot delete customer %s with existing orders", customer.Name)
	}

	return s.customerRepo.Delete(customer.ID)
}

func (s *customerService) GetCustomerAnalytics(userID uint) (*CustomerAnalytics, error) {
	total, err := s.customerRepo.Count(userID)
	if err != nil {
		return nil, err
	}
	active, err := s.customerRepo.CountByStatus(userID, string(models.CustomerActive))
	if err != nil {
		return nil, err
	}
	vip, err := s.customerRepo.CountByStatus(userID, string(models.CustomerVIP))
	if err != nil {
		return nil, err
	}
	revenue, err := s.customerRepo.SumTotalSpent(userID)
	if err != nil {
		return nil, err
	}
	top, err := s.customerRepo.TopBySpent(userID, 5)
	if err != nil {
		return nil, err
	}

	return &CustomerAnalytics{
		TotalCustomers:  total,
		ActiveCustomers: active,
		VIPCustomers:    vip,
		TotalRevenue:    revenue,
		TopCustomers:    top,
	}, nil
}
