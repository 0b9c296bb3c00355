package notification

import (
	"fmt"

	"estimate_request_service/internal/i18n"
)

// Event is a notification that knows its channel pipeline and how to render
// itself for each channel.
type Event interface {
	Type() string
	// SettingSlug selects the company's EmailNotificationSetting row.
	SettingSlug() string
	Pipeline() Pipeline
	ToDatabase(rc *RecipientContext) (map[string]any, error)
	ToMail(rc *RecipientContext) (MailMessage, error)
	ToChat(rc *RecipientContext) (ChatMessage, error)
}

const (
	NewUserSettingSlug               = "user-registrationadded-by-admin"
	EstimateRequestInviteSettingSlug = "estimate-request-invite"
)

// NewUser welcomes an account created by an administrator.
//
// Password is the plaintext chosen at creation. It is empty when the welcome
// is sent again later, in which case the mail shows a placeholder.
type NewUser struct {
	Password string
}

var _ Event = NewUser{}

func (NewUser) Type() string        { return "new_user" }
func (NewUser) SettingSlug() string { return NewUserSettingSlug }

func (NewUser) Pipeline() Pipeline {
	return Pipeline{
		Always(ChannelDatabase),
		MailWithoutCompany(),
		MailBySettings(),
		ChatBySettings(),
	}
}

func (NewUser) ToDatabase(rc *RecipientContext) (map[string]any, error) {
	return serializeRecipient(rc)
}

func (e NewUser) ToMail(rc *RecipientContext) (MailMessage, error) {
	loginURL, err := rc.URL("/login")
	if err != nil {
		return MailMessage{}, err
	}

	password := e.Password
	if password == "" {
		password = i18n.T(rc.Lang, "superadmin.previousPassword")
	}

	msg := MailMessage{
		To:       rc.Email(),
		ToName:   rc.User.Name,
		Subject:  i18n.T(rc.Lang, "email.newUser.subject") + " " + rc.App.Name,
		Greeting: greeting(rc),
		Lines: []string{
			i18n.T(rc.Lang, "email.newUser.text"),
			i18n.T(rc.Lang, "app.email") + ": " + rc.Email(),
			i18n.T(rc.Lang, "app.password") + ": " + password,
		},
		ActionText: i18n.T(rc.Lang, "email.newUser.action"),
		ActionURL:  loginURL,
		ThemeColor: rc.ThemeColor(),
	}
	return renderMail(rc, msg)
}

func (NewUser) ToChat(rc *RecipientContext) (ChatMessage, error) {
	loginURL, err := rc.URL("/login")
	if err != nil {
		return ChatMessage{}, err
	}
	text := fmt.Sprintf("*%s %s!*\n%s\n<%s|%s>",
		i18n.T(rc.Lang, "email.newUser.subject"),
		rc.App.Name,
		i18n.T(rc.Lang, "email.newUser.text"),
		loginURL,
		i18n.T(rc.Lang, "email.newUser.action"),
	)
	return ChatMessage{Text: text}, nil
}

// EstimateRequestInvite asks a client to submit an estimate request.
type EstimateRequestInvite struct{}

var _ Event = EstimateRequestInvite{}

func (EstimateRequestInvite) Type() string        { return "estimate_request_invite" }
func (EstimateRequestInvite) SettingSlug() string { return EstimateRequestInviteSettingSlug }

func (EstimateRequestInvite) Pipeline() Pipeline {
	return Pipeline{
		Always(ChannelDatabase),
		MailWhenAddressed(),
	}
}

func (EstimateRequestInvite) ToDatabase(rc *RecipientContext) (map[string]any, error) {
	return serializeRecipient(rc)
}

func (EstimateRequestInvite) ToMail(rc *RecipientContext) (MailMessage, error) {
	actionURL, err := rc.URL("/estimate-requests/create")
	if err != nil {
		return MailMessage{}, err
	}
	msg := MailMessage{
		To:         rc.Email(),
		ToName:     rc.User.Name,
		Subject:    i18n.T(rc.Lang, "email.estimateRequestInvite.subject"),
		Greeting:   greeting(rc),
		Lines:      []string{i18n.T(rc.Lang, "email.estimateRequestInvite.text")},
		ActionText: i18n.T(rc.Lang, "email.estimateRequestInvite.action"),
		ActionURL:  actionURL,
		ThemeColor: rc.ThemeColor(),
	}
	return renderMail(rc, msg)
}

func (EstimateRequestInvite) ToChat(*RecipientContext) (ChatMessage, error) {
	return ChatMessage{}, ErrChannelNotSupported
}
