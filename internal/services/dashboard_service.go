package services

import (
	"log"
	"math"
	"time"

	"dashboard_api/internal/models"
	"dashboard_api/internal/redis"
	"dashboard_api/internal/repository"
)

type MetricValue struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type DashboardMetrics struct {
	TotalRevenues     MetricValue `json:"total_revenues"`
	TotalTransactions MetricValue `json:"total_transactions"`
	TotalLikes        MetricValue `json:"total_likes"`
	TotalUsers        MetricValue `json:"total_users"`
}

type ActivityInput struct {
	Week      string `json:"week" binding:"required"`
	Guest     *int   `json:"guest" binding:"required"`
	UserCount *int   `json:"user_count" binding:"required"`
}

type DashboardService interface {
	GetMetrics(userID uint) (*DashboardMetrics, error)
	GetActivities(userID uint) ([]models.Activity, error)
	CreateActivity(userID uint, input ActivityInput) (*models.Activity, error)
	UpdateActivity(userID, id uint, input ActivityInput) (*models.Activity, error)
	DeleteActivity(userID, id uint) error
}

type dashboardService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
	cache        *redis.Client
	cacheTTL     time.Duration
}

func NewDashboardService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// GetMetrics computes dashboard headline numbers with 7-day versus
// prior-7-day change percentages. Results are cached per user; order
// mutations invalidate the cache.
func (s *dashboardService) GetMetrics(userID uint) (*DashboardMetrics, error) {
	if s.cache != nil {
		var cached DashboardMetrics
		if err := s.cache.GetMetrics(userID, &cached); err == nil {
			return &cached, nil
		} else if err != redis.ErrCacheMiss {
			log.Printf("Warning: metrics cache read failed: %v", err)
		}
	}

	orders, err := s.orderRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.activityRepo.GetAll(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	var totalRevenue, currentRevenue, previousRevenue float64
	var currentOrders, previousOrders int
	for _, order := range orders {
		totalRevenue += order.TotalAmount
		switch {
		case order.OrderDate.After(sevenDaysAgo):
			currentRevenue += order.TotalAmount
			currentOrders++
		case order.OrderDate.After(fourteenDaysAgo):
			previousRevenue += order.TotalAmount
			previousOrders++
		}
	}

	var currentLikes, previousLikes, currentUsers, previousUsers int
	for _, activity := range activities {
		switch {
		case activity.Date.After(sevenDaysAgo):
			currentLikes += activity.Guest
			currentUsers += activity.UserCount
		case activity.Date.After(fourteenDaysAgo):
			previousLikes += activity.Guest
			previousUsers += activity.UserCount
		}
	}

	metrics := &DashboardMetrics{
		TotalRevenues: MetricValue{
			Value:  round2(totalRevenue),
			Change: round2(changePercent(currentRevenue, previousRevenue)),
		},
		TotalTransactions: MetricValue{
			Value:  float64(len(orders)),
			Change: round2(changePercent(float64(currentOrders), float64(previousOrders))),
		},
		TotalLikes: MetricValue{
			Value:  float64(currentLikes),
			Change: round2(changePercent(float64(currentLikes), float64(previousLikes))),
		},
		TotalUsers: MetricValue{
			Value:  float64(currentUsers),
			Change: round2(changePercent(float64(currentUsers), float64(previousUsers))),
		},
	}

	if s.cache != nil {
		if err := s.cache.SetMetrics(userID, metrics, s.cacheTTL); err != nil {
			log.Printf("Warning: metrics cache write failed: %v", err)
		}
	}

	return metrics, nil
}

func (s *dashboardService) GetActivities(userID uint) ([]models.Activity, error) {
	return s.activityRepo.GetRecent(userID, 4)
}

func (s *dashboardService) CreateActivity(userID uint, input ActivityInput) (*models.Activity, error) {
	activity := &models.Activity{
		UserID:    userID,
		Week:      input.Week,
		Guest:     *input.Guest,
		UserCount: *input.UserCount,
		Date:      time.Now(),
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *dashboardService) UpdateActivity(userID, id uint, input ActivityInput) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	activity.Week = input.Week
	activity.Guest = *input.Guest
	activity.UserCount = *input.UserCount

	if err := s.activityRepo.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *dashboardService) DeleteActivity(userID, id uint) error {
	activity, err := s.activityRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	return s.activityRepo.Delete(activity.ID)
}

func changePercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
