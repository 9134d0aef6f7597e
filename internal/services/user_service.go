package services

import (
	"encoding/json"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"
	"dashboard_api/internal/repository"
)

type ProfileInput struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

type SettingsInput struct {
	Theme              string          `json:"theme"`
	Language           string          `json:"language"`
	EmailNotifications *bool           `json:"email_notifications"`
	PushNotifications  *bool           `json:"push_notifications"`
	DashboardLayout    json.RawMessage `json:"dashboard_layout"`
}

type UserStatistics struct {
	TotalProducts  int64   `json:"total_products"`
	TotalCustomers int64   `json:"total_customers"`
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type UserService interface {
	GetProfile(userID uint) (*models.User, error)
	UpdateProfile(userID uint, input ProfileInput) (*models.User, error)
	GetStatistics(userID uint) (*UserStatistics, error)
	GetSettings(userID uint) (*models.UserSettings, error)
	UpdateSettings(userID uint, input SettingsInput) (*models.UserSettings, error)
	ResetSettings(userID uint) (*models.UserSettings, error)
}

type userService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *userService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *userService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperrors.Validationf("name is required")
	}

	user.Name = input.Name
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetStatistics(userID uint) (*UserStatistics, error) {
	products, err := s.productRepo.Count(userID)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.Count(userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count(userID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumTotalAmount(userID)
	if err != nil {
		return nil, err
	}

	return &UserStatistics{
		TotalProducts:  products,
		TotalCustomers: customers,
		TotalOrders:    orders,
		TotalRevenue:   revenue,
	}, nil
}

// GetSettings creates defaults on first read.
func (s *userService) GetSettings(userID uint) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = defaultSettings(userID)
	if err := s.settingsRepo.Create(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *userService) UpdateSettings(userID uint, input SettingsInput) (*models.UserSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if input.Theme != "" {
		settings.Theme = input.Theme
	}
	if input.Language != "" {
		settings.Language = input.Language
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.PushNotifications != nil {
		settings.PushNotifications = *input.PushNotifications
	}
	if len(input.DashboardLayout) > 0 {
		settings.DashboardLayout = string(input.DashboardLayout)
	}

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *userService) ResetSettings(userID uint) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	defaults := defaultSettings(userID)
	if settings == nil {
		if err := s.settingsRepo.Create(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	settings.Theme = defaults.Theme
	settings.Language = defaults.Language
	settings.EmailNotifications = defaults.EmailNotifications
	settings.PushNotifications = defaults.PushNotifications
	settings.DashboardLayout = defaults.DashboardLayout

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func defaultSettings(userID uint) *models.UserSettings {
	return &models.UserSettings{
		UserID:             userID,
		Theme:              "light",
		Language:           "en",
		EmailNotifications: true,
		PushNotifications:  true,
		DashboardLayout:    models.DefaultDashboardLayout,
	}
}
