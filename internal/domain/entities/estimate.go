package entities

import "time"

// EstimateStatus represents the lifecycle of a formal estimate.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusWaiting  EstimateStatus = "waiting"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusDeclined EstimateStatus = "declined"
)

// Estimate is the formal priced document an estimate request may point to.
//
// Only the fields needed to render the request's estimate link are modelled.
type Estimate struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CompanyID      *uint          `gorm:"index" json:"company_id"`
	EstimateNumber string         `gorm:"size:50;not null" json:"estimate_number"`
	Total          float64        `gorm:"type:decimal(15,2);not null;default:0" json:"total"`
	Status         EstimateStatus `gorm:"size:20;not null;default:waiting" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (e Estimate) DisplayLabel() string {
	return e.EstimateNumber
}
