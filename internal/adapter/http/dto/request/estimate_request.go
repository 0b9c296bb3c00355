package request

import (
	"encoding/json"
	"estimate_request_service/internal/usecase"
	"strconv"
	"strings"
)

// EstimateRequestPayload is the body accepted by create and update. Any
// status sent by the caller is ignored.
//
// currency_id is kept raw so that -1 or "abc" end up as a field error from
// the use case rather than a bind failure.
type EstimateRequestPayload struct {
	Description      string          `json:"description"`
	EstimatedBudget  float64         `json:"estimated_budget"`
	CurrencyID       json.RawMessage `json:"currency_id" swaggertype:"integer"`
	ProjectID        *uint           `json:"project_id"`
	EarlyRequirement string          `json:"early_requirement"`
	RedirectURL      string          `json:"redirect_url"`
}

func (p EstimateRequestPayload) ToDraft() usecase.EstimateRequestDraft {
	currencyID, malformed := parseID(p.CurrencyID)
	return usecase.EstimateRequestDraft{
		Description:         p.Description,
		EstimatedBudget:     p.EstimatedBudget,
		CurrencyID:          currencyID,
		CurrencyIDMalformed: malformed,
		ProjectID:           p.ProjectID,
		EarlyRequirement:    p.EarlyRequirement,
		RedirectURL:         p.RedirectURL,
	}
}

// parseID accepts a JSON number or numeric string. Absent and null give 0.
func parseID(raw json.RawMessage) (uint, bool) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, false
	}
	text = strings.TrimSpace(strings.Trim(text, `"`))
	if text == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, true
	}
	return uint(id), false
}

// EstimateRequestListQuery binds the listing query string.
type EstimateRequestListQuery struct {
	Status   string `form:"status"`
	ClientID *uint  `form:"client_id"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

func (q EstimateRequestListQuery) ToListQuery() usecase.ListQuery {
	return usecase.ListQuery{
		Status:   q.Status,
		ClientID: q.ClientID,
		Search:   q.Search,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}
}

type ChangeStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type QuickActionRequest struct {
	ActionType string `json:"action_type"`
}

// InviteClientRequest keeps client_id as text so an empty or malformed id
// reaches the use case validation instead of failing the bind.
type InviteClientRequest struct {
	ClientID string `json:"client_id"`
}
