package repositories

import (
	"context"
	"errors"

	"arboris/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryInterface interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Notification, error)
	Insert(ctx context.Context, notification *db_models.Notification) error
	MarkRead(ctx context.Context, id string, userID uuid.UUID) (*db_models.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepositoryInterface {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := n.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

// MarkRead sets is_read for a notification owned by userID. Setting it on an
// already-read row is a no-op success. Returns (nil, nil) when the id does not
// exist or belongs to someone else.
func (n *notificationRepository) MarkRead(ctx context.Context, id string, userID uuid.UUID) (*db_models.Notification, error) {
	err := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
	if err != nil {
		return nil, err
	}

	var notification db_models.Notification
	err = n.db.WithContext(ctx).
		First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}
