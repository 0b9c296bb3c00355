package request

import "estimate_request_service/internal/usecase"

type CreateUserRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	Locale             string `json:"locale"`
	EmailNotifications *bool  `json:"email_notifications"`
	SlackUsername      string `json:"slack_username"`
}

func (r CreateUserRequest) ToDraft() usecase.UserDraft {
	return usecase.UserDraft{
		Name:               r.Name,
		Email:              r.Email,
		Password:           r.Password,
		Role:               r.Role,
		Locale:             r.Locale,
		EmailNotifications: r.EmailNotifications,
		SlackUsername:      r.SlackUsername,
	}
}
