package entities

import "time"

const (
	SettingYes = "yes"
	SettingNo  = "no"

	SlackStatusActive   = "active"
	SlackStatusInactive = "inactive"
)

// Company owns users, projects and per-event notification settings.
type Company struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyName  string    `gorm:"size:191;not null" json:"company_name"`
	CustomDomain string    `gorm:"size:191" json:"custom_domain"`
	HeaderColor  string    `gorm:"size:20" json:"header_color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmailNotificationSetting is the per-company switch for one notification
// event, identified by its slug.
type EmailNotificationSetting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyID   uint   `gorm:"not null;uniqueIndex:idx_company_setting_slug" json:"company_id"`
	Slug        string `gorm:"size:100;not null;uniqueIndex:idx_company_setting_slug" json:"slug"`
	SettingName string `gorm:"size:191" json:"setting_name"`
	SendEmail   string `gorm:"size:3;not null;default:no" json:"send_email"`
	SendSlack   string `gorm:"size:3;not null;default:no" json:"send_slack"`
}

func (s EmailNotificationSetting) EmailEnabled() bool { return s.SendEmail == SettingYes }
func (s EmailNotificationSetting) SlackEnabled() bool { return s.SendSlack == SettingYes }

// SlackSetting is the company's chat integration.
type SlackSetting struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	CompanyID      uint   `gorm:"not null;uniqueIndex" json:"company_id"`
	Status         string `gorm:"size:10;not null;default:inactive" json:"status"`
	WebhookURL     string `gorm:"size:255" json:"-"`
	DefaultChannel string `gorm:"size:100" json:"default_channel"`
}

func (s SlackSetting) Active() bool { return s.Status == SlackStatusActive }
