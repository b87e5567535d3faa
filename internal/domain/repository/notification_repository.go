package repository

import (
	"context"

	"flightwatch-service/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
}
