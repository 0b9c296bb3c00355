package response

import (
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/usecase"
	"time"
)

// UserSummary is the short form used in client pickers.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func FromUserSummary(u entities.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func FromUserSummaries(users []entities.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, FromUserSummary(u))
	}
	return out
}

type UserResponse struct {
	ID                 uint      `json:"id"`
	CompanyID          *uint     `json:"company_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Locale             string    `json:"locale"`
	Roles              []string  `json:"roles"`
	EmailNotifications bool      `json:"email_notifications"`
	SlackUsername      string    `json:"slack_username,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		CompanyID:          u.CompanyID,
		Name:               u.Name,
		Email:              u.Email,
		Locale:             u.Locale,
		Roles:              u.RoleList(),
		EmailNotifications: u.WantsEmail(),
		SlackUsername:      u.SlackUsername,
		CreatedAt:          u.CreatedAt,
	}
}

type UserResultResponse struct {
	Data     UserResponse `json:"data"`
	Channels []string     `json:"channels"`
	Message  string       `json:"message"`
}

func FromUserResult(r usecase.UserResult) UserResultResponse {
	channels := make([]string, 0, len(r.Channels))
	for _, c := range r.Channels {
		channels = append(channels, string(c))
	}
	return UserResultResponse{Data: FromUser(r.User), Channels: channels, Message: r.Message}
}
