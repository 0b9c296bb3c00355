package usecase

//go:generate mockgen -source=notification_usecase.go -destination=../adapter/http/handlers/mocks/notification_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/usecase/interfaces"
	"strings"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

type INotificationUseCase interface {
	List(ctx context.Context, actor entities.Actor) ([]entities.Notification, error)
	MarkAsRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
	auth interfaces.IAuthorizer
	now  func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, auth interfaces.IAuthorizer) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, auth: auth, now: time.Now}
}

func (u *NotificationUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Notification, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapNotificationRead); err != nil {
		return nil, err
	}
	return u.repo.ListByUserID(ctx, actor.UserID)
}

// MarkAsRead is idempotent: an already read notification is returned as is.
func (u *NotificationUseCase) MarkAsRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error) {
	if err := u.auth.Authorize(ctx, actor, authz.CapNotificationRead); err != nil {
		return entities.Notification{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" || n.UserID != actor.UserID {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.Read() {
		return n, nil
	}

	at := u.now().UTC()
	updated, err := u.repo.MarkAsRead(ctx, id, at)
	if err != nil {
		return entities.Notification{}, err
	}
	if !updated {
		// read concurrently
		return u.repo.GetByID(ctx, id)
	}
	n.ReadAt = &at
	return n, nil
}
