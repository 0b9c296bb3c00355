package entities

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   *uint     `gorm:"index" json:"company_id"`
	ClientID    *uint     `gorm:"index" json:"client_id"`
	ProjectName string    `gorm:"size:191;not null" json:"project_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Currency struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	CompanyID      *uint  `gorm:"index" json:"company_id"`
	CurrencyName   string `gorm:"size:100" json:"currency_name"`
	CurrencyCode   string `gorm:"size:10;not null" json:"currency_code"`
	CurrencySymbol string `gorm:"size:10" json:"currency_symbol"`
}
