package interfaces

import (
	"context"
	"estimate_request_service/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/notification_repository_interface_mock.go -package=mock_interfaces

// INotificationRepository abstracts DynamoDB persistence for in-app
// notifications.
//
// GetByID returns a zero-ID notification when the item does not exist and
// MarkAsRead reports false when there was nothing to update.

type INotificationRepository interface {
	ListByUserID(ctx context.Context, userID uint) ([]entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	MarkAsRead(ctx context.Context, id string, at time.Time) (bool, error)
}
