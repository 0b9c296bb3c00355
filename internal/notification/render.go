package notification

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"strings"

	"estimate_request_service/internal/i18n"
)

const defaultThemeColor = "#1d82f5"

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplate = template.Must(template.ParseFS(templateFS, "templates/mail.html"))

type mailView struct {
	Lang       string
	AppName    string
	Subject    string
	Greeting   string
	Lines      []string
	ActionText string
	ActionURL  string
	ThemeColor string
	Regards    string
}

// renderMail fills HTML and Text of msg from its structured fields.
func renderMail(rc *RecipientContext, msg MailMessage) (MailMessage, error) {
	color := msg.ThemeColor
	if color == "" {
		color = defaultThemeColor
	}

	var buf bytes.Buffer
	err := mailTemplate.Execute(&buf, mailView{
		Lang:       rc.Lang,
		AppName:    rc.App.Name,
		Subject:    msg.Subject,
		Greeting:   msg.Greeting,
		Lines:      msg.Lines,
		ActionText: msg.ActionText,
		ActionURL:  msg.ActionURL,
		ThemeColor: color,
		Regards:    i18n.T(rc.Lang, "email.regards"),
	})
	if err != nil {
		return MailMessage{}, err
	}
	msg.HTML = buf.String()

	var text strings.Builder
	text.WriteString(msg.Greeting + "\n\n")
	for _, l := range msg.Lines {
		text.WriteString(l + "\n")
	}
	if msg.ActionURL != "" {
		text.WriteString("\n" + msg.ActionText + ": " + msg.ActionURL + "\n")
	}
	msg.Text = text.String()
	return msg, nil
}

func greeting(rc *RecipientContext) string {
	name := strings.TrimSpace(rc.User.Name)
	if name == "" {
		return i18n.T(rc.Lang, "email.hello") + ","
	}
	return i18n.T(rc.Lang, "email.hello") + " " + name + ","
}

// serializeRecipient is the database channel body: the user's JSON field set.
func serializeRecipient(rc *RecipientContext) (map[string]any, error) {
	raw, err := json.Marshal(rc.User)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
