package chat

import (
	"context"
	"strings"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/notification"
)

// UserHandleDirectory resolves chat handles from the user's stored
// slack username.
type UserHandleDirectory struct{}

var _ notification.ChatDirectory = UserHandleDirectory{}

func (UserHandleDirectory) LookupHandle(_ context.Context, user entities.User) (string, error) {
	handle := strings.TrimPrefix(strings.TrimSpace(user.SlackUsername), "@")
	if handle == "" {
		return "", notification.ErrChatHandleNotFound
	}
	return "@" + handle, nil
}
