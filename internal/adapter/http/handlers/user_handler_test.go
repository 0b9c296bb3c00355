package handlers

import (
	"net/http"
	"testing"

	"estimate_request_service/internal/adapter/http/handlers/mocks"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/notification"
	"estimate_request_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUserRouter(t *testing.T) (*gin.Engine, *mocks.MockIUserUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := NewUserHandler(uc)

	r := gin.New()
	r.POST("/v1/users", withActor, h.CreateUser)
	r.POST("/v1/users/:id/welcome", withActor, h.ResendWelcome)
	return r, uc
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newUserRouter(t)

		w := doRequest(r, http.MethodPost, "/v1/users", "[")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		r, uc := newUserRouter(t)
		uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
			Return(usecase.UserResult{}, &usecase.ValidationError{Fields: map[string]string{"email": "taken"}, Cause: usecase.ErrEmailTaken})

		w := doRequest(r, http.MethodPost, "/v1/users", `{"name":"Ana","email":"ana@example.com","password":"secret123","role":"client"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newUserRouter(t)
		uc.EXPECT().Create(gomock.Any(), testActor, usecase.UserDraft{Name: "Ana", Email: "ana@example.com", Password: "secret123", Role: "client"}).
			Return(usecase.UserResult{
				User:     entities.User{ID: 50, Name: "Ana", Roles: "client"},
				Channels: []notification.Channel{notification.ChannelDatabase, notification.ChannelMail},
			}, nil)

		w := doRequest(r, http.MethodPost, "/v1/users", `{"name":"Ana","email":"ana@example.com","password":"secret123","role":"client"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestUserHandler_ResendWelcome(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		r, _ := newUserRouter(t)

		w := doRequest(r, http.MethodPost, "/v1/users/x/welcome", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		r, uc := newUserRouter(t)
		uc.EXPECT().ResendWelcome(gomock.Any(), testActor, uint(50)).Return(usecase.UserResult{}, authz.ErrPermissionDenied)

		w := doRequest(r, http.MethodPost, "/v1/users/50/welcome", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newUserRouter(t)
		uc.EXPECT().ResendWelcome(gomock.Any(), testActor, uint(50)).Return(usecase.UserResult{}, usecase.ErrUserNotFound)

		w := doRequest(r, http.MethodPost, "/v1/users/50/welcome", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
