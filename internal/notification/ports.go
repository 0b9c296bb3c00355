// Package notification resolves delivery channels for notification events
// and renders one payload per channel.
//
// Delivery itself belongs to the transports behind Store, Mailer and
// ChatPublisher; this package stops once every payload is handed over.
package notification

import (
	"context"
	"errors"

	"estimate_request_service/internal/domain/entities"
)

var (
	ErrChatHandleNotFound  = errors.New("chat handle not found")
	ErrChannelNotSupported = errors.New("channel not supported by event")
)

// SettingsProvider reads company level notification settings. Lookups
// return zero-ID values when nothing is stored.
type SettingsProvider interface {
	GetCompany(ctx context.Context, id uint) (entities.Company, error)
	GetEmailSetting(ctx context.Context, companyID uint, slug string) (entities.EmailNotificationSetting, error)
	GetSlackSetting(ctx context.Context, companyID uint) (entities.SlackSetting, error)
}

// ChatDirectory resolves the chat handle of a user.
type ChatDirectory interface {
	LookupHandle(ctx context.Context, user entities.User) (string, error)
}

// Store persists database channel payloads.
type Store interface {
	Save(ctx context.Context, n entities.Notification) (entities.Notification, error)
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

type ChatPublisher interface {
	Publish(ctx context.Context, msg ChatMessage) error
}

// MailMessage is the rendered mail channel payload.
type MailMessage struct {
	To         string   `json:"to"`
	ToName     string   `json:"to_name"`
	Subject    string   `json:"subject"`
	Greeting   string   `json:"greeting"`
	Lines      []string `json:"lines"`
	ActionText string   `json:"action_text"`
	ActionURL  string   `json:"action_url"`
	ThemeColor string   `json:"theme_color,omitempty"`
	HTML       string   `json:"-"`
	Text       string   `json:"-"`
}

// ChatMessage is the rendered chat channel payload. The delivery worker
// looks up the company's webhook before posting it.
type ChatMessage struct {
	CompanyID uint   `json:"company_id"`
	Handle    string `json:"handle"`
	Text      string `json:"text"`
	Fallback  bool   `json:"fallback"`
}
