package mail

import (
	"context"
	"errors"
	"fmt"

	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/notification"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendGridAPIKey = errors.New("missing SENDGRID_API_KEY")

type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer delivers rendered mail payloads through SendGrid.
type SendGridMailer struct {
	client   sendClient
	fromMail string
	fromName string
}

var _ notification.Mailer = (*SendGridMailer)(nil)

func NewSendGridMailer(apiKey, fromMail, fromName string) (*SendGridMailer, error) {
	if apiKey == "" {
		return nil, ErrMissingSendGridAPIKey
	}
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromMail: fromMail,
		fromName: fromName,
	}, nil
}

func (m *SendGridMailer) Send(ctx context.Context, msg notification.MailMessage) error {
	from := sgmail.NewEmail(m.fromName, m.fromMail)
	to := sgmail.NewEmail(msg.ToName, msg.To)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	logger.ExternalServiceCall("sendgrid", "send", "to", msg.To, "subject", msg.Subject)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		err = fmt.Errorf("failed to send email: %w", err)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	if resp.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil, "status", resp.StatusCode)
	return nil
}

// LogMailer only logs what would have been sent. It stands in for SendGrid
// when no API key is configured.
type LogMailer struct{}

var _ notification.Mailer = LogMailer{}

func (LogMailer) Send(ctx context.Context, msg notification.MailMessage) error {
	logger.InfoContext(ctx, "[mail] delivery skipped, no provider configured",
		"to", msg.To,
		"subject", msg.Subject,
		"action_url", msg.ActionURL,
	)
	return nil
}

// New picks SendGrid when a key is present and the log mailer otherwise.
func New(apiKey, fromMail, fromName string) notification.Mailer {
	m, err := NewSendGridMailer(apiKey, fromMail, fromName)
	if err != nil {
		logger.Warn("[mail] sendgrid disabled", "error", err)
		return LogMailer{}
	}
	return m
}
