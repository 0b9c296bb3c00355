package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateRequestStatus represents the review state of an estimate request.
//
// Domain notes:
//   - A request is created as pending and any edit puts it back to pending.
//   - Staff may set any of the three values at any time; there is no
//     transition graph.

type EstimateRequestStatus string

const (
	EstimateRequestStatusPending  EstimateRequestStatus = "pending"
	EstimateRequestStatusAccepted EstimateRequestStatus = "accepted"
	EstimateRequestStatusRejected EstimateRequestStatus = "rejected"
)

func (s EstimateRequestStatus) Valid() bool {
	switch s {
	case EstimateRequestStatusPending, EstimateRequestStatusAccepted, EstimateRequestStatusRejected:
		return true
	default:
		return false
	}
}

// EstimateLinkPlaceholder is shown when a request was never converted.
const EstimateLinkPlaceholder = "--"

// EstimateRequest is a client-submitted proposal awaiting staff review.
//
// Storage model (relational, estimate_requests):
//   - company_id is copied from the creating client and never updated.
//   - estimated_budget is stored as decimal(15,2).
//   - reason only carries meaning while status is rejected.
//   - estimate_id links the formal estimate; conversion is disabled, so it is
//     only ever read.
type EstimateRequest struct {
	ID               uint                  `gorm:"primaryKey" json:"id"`
	CompanyID        *uint                 `gorm:"index" json:"company_id"`
	ClientID         uint                  `gorm:"index;not null" json:"client_id"`
	Description      string                `gorm:"type:text;not null" json:"description"`
	EstimatedBudget  float64               `gorm:"type:decimal(15,2);not null;default:0" json:"estimated_budget"`
	CurrencyID       uint                  `gorm:"not null" json:"currency_id"`
	ProjectID        *uint                 `json:"project_id"`
	EarlyRequirement string                `gorm:"size:255" json:"early_requirement"`
	Status           EstimateRequestStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	Reason           *string               `gorm:"type:text" json:"reason"`
	EstimateID       *uint                 `json:"estimate_id"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`

	Client   *User     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Project  *Project  `json:"project,omitempty"`
	Currency *Currency `json:"currency,omitempty"`
	Estimate *Estimate `json:"estimate,omitempty"`
}

// EstimateLink returns the linked estimate's label or the placeholder.
func (r EstimateRequest) EstimateLink() string {
	if r.Estimate == nil || r.Estimate.ID == 0 {
		return EstimateLinkPlaceholder
	}
	return r.Estimate.DisplayLabel()
}

// RoundBudget rounds a monetary amount to two fractional digits, half away
// from zero, on its shortest decimal form so 1.005 becomes 1.01.
func RoundBudget(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
