package notification

import (
	"context"
	"slices"

	"estimate_request_service/internal/logger"
)

type Channel string

const (
	ChannelDatabase Channel = "database"
	ChannelMail     Channel = "mail"
	ChannelChat     Channel = "slack"
)

// Decision is what a step says about its channel.
type Decision int

const (
	Skip Decision = iota
	Include
	// IncludeAndStop includes the channel and ends resolution.
	IncludeAndStop
)

// ChannelStep is one independent predicate of a pipeline.
type ChannelStep struct {
	Name    string
	Channel Channel
	Decide  func(ctx context.Context, rc *RecipientContext) Decision
	// Unconditional steps do not look at the recipient context.
	Unconditional bool
}

// Pipeline is evaluated in order; the result keeps the first position of
// every included channel.
type Pipeline []ChannelStep

func (p Pipeline) Resolve(ctx context.Context, rc *RecipientContext) []Channel {
	var out []Channel
	seen := make(map[Channel]bool, len(p))
	for _, step := range p {
		d := step.Decide(ctx, rc)
		if d == Skip {
			continue
		}
		if !seen[step.Channel] {
			seen[step.Channel] = true
			out = append(out, step.Channel)
		}
		if d == IncludeAndStop {
			break
		}
	}
	return out
}

// Unconditional lists the channels of steps that never depend on the
// recipient context.
func (p Pipeline) Unconditional() []Channel {
	var out []Channel
	for _, step := range p {
		if step.Unconditional && !slices.Contains(out, step.Channel) {
			out = append(out, step.Channel)
		}
	}
	return out
}

// Always includes ch unconditionally.
func Always(ch Channel) ChannelStep {
	return ChannelStep{
		Name:          "always_" + string(ch),
		Channel:       ch,
		Decide:        func(context.Context, *RecipientContext) Decision { return Include },
		Unconditional: true,
	}
}

// MailWithoutCompany sends mail to recipients outside any company and stops
// resolution there.
func MailWithoutCompany() ChannelStep {
	return ChannelStep{
		Name:    "mail_without_company",
		Channel: ChannelMail,
		Decide: func(_ context.Context, rc *RecipientContext) Decision {
			if rc.HasCompany() {
				return Skip
			}
			return IncludeAndStop
		},
	}
}

// MailBySettings requires the company switch, the personal preference and an
// address.
func MailBySettings() ChannelStep {
	return ChannelStep{
		Name:    "mail_by_settings",
		Channel: ChannelMail,
		Decide: func(_ context.Context, rc *RecipientContext) Decision {
			if rc.Setting == nil || !rc.Setting.EmailEnabled() {
				return Skip
			}
			if !rc.User.WantsEmail() || rc.Email() == "" {
				return Skip
			}
			return Include
		},
	}
}

// MailWhenAddressed only needs an email address.
func MailWhenAddressed() ChannelStep {
	return ChannelStep{
		Name:    "mail_when_addressed",
		Channel: ChannelMail,
		Decide: func(_ context.Context, rc *RecipientContext) Decision {
			if rc.Email() == "" {
				return Skip
			}
			return Include
		},
	}
}

// ChatBySettings requires the company switch, an active integration and a
// resolvable handle. A failed lookup only drops the channel.
func ChatBySettings() ChannelStep {
	return ChannelStep{
		Name:    "chat_by_settings",
		Channel: ChannelChat,
		Decide: func(ctx context.Context, rc *RecipientContext) Decision {
			if rc.Setting == nil || !rc.Setting.SlackEnabled() {
				return Skip
			}
			if rc.Slack == nil || !rc.Slack.Active() {
				return Skip
			}
			if _, err := rc.ResolveChatHandle(ctx); err != nil {
				logger.DebugContext(ctx, "chat handle not resolved", "user_id", rc.User.ID, "error", err)
				return Skip
			}
			return Include
		},
	}
}
