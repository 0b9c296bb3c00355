package notification

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"estimate_request_service/internal/domain/entities"
)

var errMissingHost = errors.New("absolute url with host required")

// AppInfo describes the application as shown in messages.
type AppInfo struct {
	Name string
	URL  string
}

// RecipientContext gathers everything channel resolution and rendering need
// for one recipient of one event. It lives for a single dispatch.
type RecipientContext struct {
	User    entities.User
	Company *entities.Company
	Setting *entities.EmailNotificationSetting
	Slack   *entities.SlackSetting
	Lang    string
	App     AppInfo

	directory  ChatDirectory
	chatHandle string
	chatLooked bool
	chatErr    error
}

func (rc *RecipientContext) HasCompany() bool {
	return rc.Company != nil
}

func (rc *RecipientContext) Email() string {
	return strings.TrimSpace(rc.User.Email)
}

// ResolveChatHandle looks the handle up once and caches the outcome.
func (rc *RecipientContext) ResolveChatHandle(ctx context.Context) (string, error) {
	if rc.chatLooked {
		return rc.chatHandle, rc.chatErr
	}
	rc.chatLooked = true
	if rc.directory == nil {
		rc.chatErr = ErrChatHandleNotFound
		return "", rc.chatErr
	}
	rc.chatHandle, rc.chatErr = rc.directory.LookupHandle(ctx, rc.User)
	if rc.chatErr == nil && rc.chatHandle == "" {
		rc.chatErr = ErrChatHandleNotFound
	}
	return rc.chatHandle, rc.chatErr
}

// URL builds an absolute application URL for path, served from the
// company's custom domain when it has one.
func (rc *RecipientContext) URL(path string) (string, error) {
	return DomainSpecificURL(strings.TrimRight(rc.App.URL, "/")+path, rc.Company)
}

func (rc *RecipientContext) ThemeColor() string {
	if rc.Company == nil {
		return ""
	}
	return rc.Company.HeaderColor
}

// DomainSpecificURL swaps the host of raw for the company's custom domain.
func DomainSpecificURL(raw string, company *entities.Company) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &url.Error{Op: "parse", URL: raw, Err: errMissingHost}
	}
	if company != nil && strings.TrimSpace(company.CustomDomain) != "" {
		u.Host = strings.TrimSpace(company.CustomDomain)
	}
	return u.String(), nil
}
