package interfaces

import (
	"context"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/notification"
)

//go:generate mockgen -source=notification_dispatcher_interface.go -destination=mocks/notification_dispatcher_interface_mock.go -package=mock_interfaces

// INotificationDispatcher hands an event to the notification layer, which
// resolves channels for the recipient and delivers rendered payloads.

type INotificationDispatcher interface {
	Dispatch(ctx context.Context, event notification.Event, recipient entities.User) (notification.Delivery, error)
}

// IPasswordHasher hides the hashing algorithm from the user use case.
type IPasswordHasher interface {
	Hash(password string) (string, error)
}

var _ INotificationDispatcher = (*notification.Dispatcher)(nil)
