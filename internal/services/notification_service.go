package services

import (
	"log"
	"time"

	"dashboard_api/internal/models"
	"dashboard_api/internal/redis"
	"dashboard_api/internal/repository"
)

type NotificationInput struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

type NotificationCount struct {
	UnreadCount int64 `json:"unread_count"`
	TotalCount  int64 `json:"total_count"`
}

type NotificationService interface {
	ListNotifications(userID uint, page, limit int, unreadOnly bool) ([]models.Notification, int64, error)
	CreateNotification(userID uint, input NotificationInput) (*models.Notification, error)
	MarkAsRead(userID, id uint) (*models.Notification, error)
	MarkAllAsRead(userID uint) error
	DeleteNotification(userID, id uint) error
	GetCount(userID uint) (*NotificationCount, error)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	cache     *redis.Client
	cacheTTL  time.Duration
}

func NewNotificationService(notifRepo repository.NotificationRepository, cache *redis.Client, cacheTTL time.Duration) NotificationService {
	return &notificationService{notifRepo: notifRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *notificationService) ListNotifications(userID uint, page, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	return s.notifRepo.List(userID, page, limit, unreadOnly)
}

func (s *notificationService) CreateNotification(userID uint, input NotificationInput) (*models.Notification, error) {
	notifType := input.Type
	if notifType == "" {
		notifType = string(models.NotificationInfo)
	}

	notification := &models.Notification{
		UserID:  userID,
		Title:   input.Title,
		Message: input.Message,
		Type:    notifType,
	}

	if err := s.notifRepo.Create(notification); err != nil {
		return nil, err
	}
	s.invalidateCount(userID)

	return notification, nil
}

func (s *notificationService) MarkAsRead(userID, id uint) (*models.Notification, error) {
	notification, err := s.notifRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.notifRepo.MarkRead(userID, id); err != nil {
		return nil, err
	}
	notification.IsRead = true
	s.invalidateCount(userID)

	return notification, nil
}

func (s *notificationService) MarkAllAsRead(userID uint) error {
	if err := s.notifRepo.MarkAllRead(userID); err != nil {
		return err
	}
	s.invalidateCount(userID)
	return nil
}

func (s *notificationService) DeleteNotification(userID, id uint) error {
	notification, err := s.notifRepo.GetByID(userID, id)
	if err != nil {
		return err
	}

	if err := s.notifRepo.Delete(notification.ID); err != nil {
		return err
	}
	s.invalidateCount(userID)
	return nil
}

func (s *notificationService) GetCount(userID uint) (*NotificationCount, error) {
	if s.cache != nil {
		unread, total, err := s.cache.GetNotificationCount(userID)
		if err == nil {
			return &NotificationCount{UnreadCount: unread, TotalCount: total}, nil
		}
		if err != redis.ErrCacheMiss {
			log.Printf("Warning: notification count cache read failed: %v", err)
		}
	}

	unread, err := s.notifRepo.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	total, err := s.notifRepo.Count(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetNotificationCount(userID, unread, total, s.cacheTTL); err != nil {
			log.Printf("Warning: notification count cache write failed: %v", err)
		}
	}

	return &NotificationCount{UnreadCount: unread, TotalCount: total}, nil
}

func (s *notificationService) invalidateCount(userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateNotificationCount(userID); err != nil {
		log.Printf("Warning: failed to invalidate notification count cache: %v", err)
	}
}
