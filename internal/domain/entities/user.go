package entities

import (
	"strings"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

// User is any account of the application: staff or client.
//
// EmailNotifications is tri-state: nil means the user never chose, which
// counts as opted in.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CompanyID          *uint     `gorm:"index" json:"company_id"`
	Name               string    `gorm:"size:191;not null" json:"name"`
	Email              string    `gorm:"size:191;index" json:"email"`
	PasswordHash       string    `gorm:"size:255" json:"-"`
	Locale             string    `gorm:"size:10;not null;default:en" json:"locale"`
	Roles              string    `gorm:"size:191;not null;default:employee" json:"roles"`
	EmailNotifications *bool     `json:"email_notifications"`
	SlackUsername      string    `gorm:"size:191" json:"slack_username"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Company *Company `json:"company,omitempty"`
}

func (u User) RoleList() []string {
	var out []string
	for _, r := range strings.Split(u.Roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func (u User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}

// WantsEmail reports the personal preference; unset means yes.
func (u User) WantsEmail() bool {
	return u.EmailNotifications == nil || *u.EmailNotifications
}
