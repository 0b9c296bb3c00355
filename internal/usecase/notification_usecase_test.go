package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
	mock_interfaces "estimate_request_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase(t *testing.T) {
	actor := entities.Actor{UserID: 10}
	fixed := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*NotificationUseCase, *mock_interfaces.MockINotificationRepository, *mock_interfaces.MockIAuthorizer) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		auth := mock_interfaces.NewMockIAuthorizer(ctrl)
		uc := NewNotificationUseCase(repo, auth)
		uc.now = func() time.Time { return fixed }
		return uc, repo, auth
	}

	t.Run("list own notifications", func(t *testing.T) {
		uc, repo, auth := setup(t)
		auth.EXPECT().Authorize(gomock.Any(), actor, authz.CapNotificationRead).Return(nil)
		repo.EXPECT().ListByUserID(gomock.Any(), uint(10)).Return([]entities.Notification{{ID: "a"}}, nil)

		list, err := uc.List(context.Background(), actor)
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result %v %v", list, err)
		}
	})

	t.Run("list unauthenticated", func(t *testing.T) {
		uc, _, auth := setup(t)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(authz.ErrUnauthenticated)

		if _, err := uc.List(context.Background(), entities.Actor{}); !errors.Is(err, authz.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("mark as read", func(t *testing.T) {
		uc, repo, auth := setup(t)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", UserID: 10}, nil)
		repo.EXPECT().MarkAsRead(gomock.Any(), "n1", fixed).Return(true, nil)

		n, err := uc.MarkAsRead(context.Background(), actor, "n1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.ReadAt == nil || !n.ReadAt.Equal(fixed) {
			t.Fatalf("expected read_at %v, got %v", fixed, n.ReadAt)
		}
	})

	t.Run("already read is returned untouched", func(t *testing.T) {
		uc, repo, auth := setup(t)
		readAt := fixed.Add(-time.Hour)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", UserID: 10, ReadAt: &readAt}, nil)

		n, err := uc.MarkAsRead(context.Background(), actor, "n1")
		if err != nil || !n.ReadAt.Equal(readAt) {
			t.Fatalf("unexpected result %v %v", n, err)
		}
	})

	t.Run("someone else's notification is not found", func(t *testing.T) {
		uc, repo, auth := setup(t)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", UserID: 11}, nil)

		if _, err := uc.MarkAsRead(context.Background(), actor, "n1"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("missing notification", func(t *testing.T) {
		uc, repo, auth := setup(t)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Notification{}, nil)

		if _, err := uc.MarkAsRead(context.Background(), actor, "n1"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("concurrent read refetches", func(t *testing.T) {
		uc, repo, auth := setup(t)
		readAt := fixed.Add(-time.Minute)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", UserID: 10}, nil),
			repo.EXPECT().MarkAsRead(gomock.Any(), "n1", fixed).Return(false, nil),
			repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", UserID: 10, ReadAt: &readAt}, nil),
		)

		n, err := uc.MarkAsRead(context.Background(), actor, "n1")
		if err != nil || n.ReadAt == nil || !n.ReadAt.Equal(readAt) {
			t.Fatalf("unexpected result %v %v", n, err)
		}
	})
}
