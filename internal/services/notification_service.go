package services

import (
	"context"

	"arboris/internal/models/db_models"
	"arboris/internal/models/request_models"
	"arboris/internal/models/response_models"
	"arboris/internal/repositories"
	"arboris/pkg/utils"

	"go.uber.org/zap"
)

// Listings never return more than this many notifications.
const notificationListLimit = 50

type NotificationServiceInterface interface {
	List(ctx context.Context, email string) ([]response_models.NotificationResponse, error)
	Create(ctx context.Context, email string, request request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error)
	MarkRead(ctx context.Context, email string, id string) (*response_models.NotificationResponse, error)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	logger           *zap.Logger
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (s *NotificationService) List(ctx context.Context, email string) ([]response_models.NotificationResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, user.ID, notificationListLimit)
	if err != nil {
		s.logger.Error("listing notifications failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, toNotificationResponse(notification))
	}
	return responses, nil
}

// Create always targets the authenticated user; there is no cross-user fan-out
// through this surface.
func (s *NotificationService) Create(ctx context.Context, email string, request request_models.CreateNotificationRequest) (*response_models.NotificationResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	notificationType := request.Type
	if notificationType == "" {
		notificationType = "info"
	}

	notification := &db_models.Notification{
		UserID:  user.ID,
		Title:   request.Title,
		Message: request.Message,
		Type:    notificationType,
		Link:    request.Link,
	}

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		s.logger.Error("notification creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	response := toNotificationResponse(*notification)
	return &response, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, email string, id string) (*response_models.NotificationResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	notification, err := s.notificationRepo.MarkRead(ctx, id, user.ID)
	if err != nil {
		s.logger.Error("marking notification read failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if notification == nil {
		return nil, utils.ErrNotificationNotFound
	}

	response := toNotificationResponse(*notification)
	return &response, nil
}

func toNotificationResponse(notification db_models.Notification) response_models.NotificationResponse {
	return response_models.NotificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Link:      notification.Link,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
