package services

import (
	"context"

	"asset-console/internal/entities"

	"go.uber.org/zap"
)

type notificationAPI interface {
	ListNotifications(ctx context.Context) ([]entities.Notification, error)
}

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context) ([]entities.Notification, int, error)
}

type NotificationService struct {
	api    notificationAPI
	logger *zap.Logger
}

func NewNotificationService(api notificationAPI, logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{api: api, logger: logger}
}

// GetNotifications returns the user's notifications with an unread count for
// the bell badge.
func (s *NotificationService) GetNotifications(ctx context.Context) ([]entities.Notification, int, error) {
	items, err := s.api.ListNotifications(ctx)
	if err != nil {
		return nil, 0, err
	}
	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}
	return items, unread, nil
}
