package notification

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/i18n"
	"estimate_request_service/internal/logger"

	"github.com/google/uuid"
)

// Delivery describes what a dispatch resolved and handed to transports.
type Delivery struct {
	Channels     []Channel
	Notification *entities.Notification
	Mail         *MailMessage
	Chat         *ChatMessage
}

func (d Delivery) Has(ch Channel) bool {
	for _, c := range d.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// Dispatcher resolves channels for an event and recipient, renders every
// payload and hands them to the transports.
type Dispatcher struct {
	settings      SettingsProvider
	directory     ChatDirectory
	store         Store
	mailer        Mailer
	chat          ChatPublisher
	app           AppInfo
	defaultLocale string
	now           func() time.Time
}

func NewDispatcher(settings SettingsProvider, directory ChatDirectory, store Store, mailer Mailer, chat ChatPublisher, app AppInfo, defaultLocale string) *Dispatcher {
	if defaultLocale == "" {
		defaultLocale = i18n.DefaultLanguage
	}
	return &Dispatcher{
		settings:      settings,
		directory:     directory,
		store:         store,
		mailer:        mailer,
		chat:          chat,
		app:           app,
		defaultLocale: defaultLocale,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Context builds the recipient context for event. A company that no longer
// exists is treated like no company at all.
func (d *Dispatcher) Context(ctx context.Context, event Event, recipient entities.User) (*RecipientContext, error) {
	rc := d.baseContext(recipient)
	if recipient.CompanyID == nil {
		return rc, nil
	}

	company, err := d.settings.GetCompany(ctx, *recipient.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("load company: %w", err)
	}
	if company.ID == 0 {
		return rc, nil
	}
	rc.Company = &company

	setting, err := d.settings.GetEmailSetting(ctx, company.ID, event.SettingSlug())
	if err != nil {
		return nil, fmt.Errorf("load notification setting: %w", err)
	}
	if setting.ID != 0 {
		rc.Setting = &setting
	}

	slack, err := d.settings.GetSlackSetting(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("load slack setting: %w", err)
	}
	if slack.ID != 0 {
		rc.Slack = &slack
	}
	return rc, nil
}

// baseContext holds what is known without loading company data.
func (d *Dispatcher) baseContext(recipient entities.User) *RecipientContext {
	lang := recipient.Locale
	if strings.TrimSpace(lang) == "" {
		lang = d.defaultLocale
	}
	return &RecipientContext{
		User:      recipient,
		Lang:      i18n.Normalize(lang),
		App:       d.app,
		directory: d.directory,
	}
}

// Resolve returns the ordered channel set for event and recipient.
func (d *Dispatcher) Resolve(ctx context.Context, event Event, recipient entities.User) ([]Channel, error) {
	rc, err := d.Context(ctx, event, recipient)
	if err != nil {
		return nil, err
	}
	return event.Pipeline().Resolve(ctx, rc), nil
}

// Dispatch renders and hands over every resolved channel. A failing channel
// never prevents the others; all failures are joined in the returned error.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event, recipient entities.User) (Delivery, error) {
	logger.EnterMethod("Dispatcher.Dispatch", "event", event.Type(), "user_id", recipient.ID)

	rc, err := d.Context(ctx, event, recipient)
	if err != nil {
		delivery, err := d.dispatchUnresolved(ctx, event, recipient, err)
		logger.ExitMethodWithError("Dispatcher.Dispatch", err, "channels", delivery.Channels)
		return delivery, err
	}

	delivery := Delivery{Channels: event.Pipeline().Resolve(ctx, rc)}
	var errs []error
	for _, ch := range delivery.Channels {
		switch ch {
		case ChannelDatabase:
			n, err := d.deliverDatabase(ctx, event, rc)
			if err != nil {
				errs = append(errs, fmt.Errorf("database channel: %w", err))
				continue
			}
			delivery.Notification = &n
		case ChannelMail:
			msg, err := event.ToMail(rc)
			if err != nil {
				logger.WarnContext(ctx, "mail render failed", "event", event.Type(), "user_id", recipient.ID, "error", err)
				errs = append(errs, fmt.Errorf("mail channel render: %w", err))
				continue
			}
			delivery.Mail = &msg
			if err := d.mailer.Send(ctx, msg); err != nil {
				errs = append(errs, fmt.Errorf("mail channel: %w", err))
			}
		case ChannelChat:
			msg := d.renderChat(ctx, event, rc)
			delivery.Chat = &msg
			if err := d.chat.Publish(ctx, msg); err != nil {
				errs = append(errs, fmt.Errorf("chat channel: %w", err))
			}
		}
	}

	err = errors.Join(errs...)
	if err != nil {
		logger.ExitMethodWithError("Dispatcher.Dispatch", err, "channels", delivery.Channels)
		return delivery, err
	}
	logger.ExitMethod("Dispatcher.Dispatch", "channels", delivery.Channels)
	return delivery, nil
}

// dispatchUnresolved runs when company data could not be loaded. Only the
// unconditional database record is written; mail and chat depend on the
// settings that failed to load.
func (d *Dispatcher) dispatchUnresolved(ctx context.Context, event Event, recipient entities.User, cause error) (Delivery, error) {
	logger.WarnContext(ctx, "recipient context failed, writing database record only", "event", event.Type(), "user_id", recipient.ID, "error", cause)
	var delivery Delivery
	if !slices.Contains(event.Pipeline().Unconditional(), ChannelDatabase) {
		return delivery, cause
	}
	delivery.Channels = []Channel{ChannelDatabase}
	n, err := d.deliverDatabase(ctx, event, d.baseContext(recipient))
	if err != nil {
		return delivery, errors.Join(cause, fmt.Errorf("database channel: %w", err))
	}
	delivery.Notification = &n
	return delivery, cause
}

func (d *Dispatcher) deliverDatabase(ctx context.Context, event Event, rc *RecipientContext) (entities.Notification, error) {
	data, err := event.ToDatabase(rc)
	if err != nil {
		return entities.Notification{}, err
	}
	return d.store.Save(ctx, entities.Notification{
		ID:        uuid.NewString(),
		UserID:    rc.User.ID,
		Type:      event.Type(),
		Data:      data,
		CreatedAt: d.now(),
	})
}

// renderChat never fails: a render error yields the generic redirect text.
func (d *Dispatcher) renderChat(ctx context.Context, event Event, rc *RecipientContext) ChatMessage {
	handle, _ := rc.ResolveChatHandle(ctx)

	msg, err := event.ToChat(rc)
	if err != nil {
		logger.WarnContext(ctx, "chat render failed, using fallback", "event", event.Type(), "user_id", rc.User.ID, "error", err)
		msg = ChatMessage{Text: fallbackChatText(rc), Fallback: true}
	}
	msg.Handle = handle
	if rc.Company != nil {
		msg.CompanyID = rc.Company.ID
	}
	return msg
}

func fallbackChatText(rc *RecipientContext) string {
	text := i18n.T(rc.Lang, "messages.slackRedirectMessage")
	if rc.App.URL != "" {
		text += "\n" + rc.App.URL
	}
	return text
}
