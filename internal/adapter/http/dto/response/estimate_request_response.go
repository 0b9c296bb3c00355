package response

import (
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/usecase"
	"fmt"
	"time"
)

type CurrencyResponse struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type ProjectResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EstimateRequestResponse struct {
	ID               uint              `json:"id"`
	CompanyID        *uint             `json:"company_id"`
	ClientID         uint              `json:"client_id"`
	Client           *UserSummary      `json:"client,omitempty"`
	Description      string            `json:"description"`
	EstimatedBudget  string            `json:"estimated_budget"`
	Currency         *CurrencyResponse `json:"currency,omitempty"`
	Project          *ProjectResponse  `json:"project,omitempty"`
	EarlyRequirement string            `json:"early_requirement"`
	Status           string            `json:"status"`
	Reason           *string           `json:"reason,omitempty"`
	EstimateID       *uint             `json:"estimate_id"`
	EstimateLink     string            `json:"estimate_link"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// FromEstimateRequest renders the budget with its two stored decimals and
// only exposes the reason of rejected requests.
func FromEstimateRequest(r entities.EstimateRequest) EstimateRequestResponse {
	res := EstimateRequestResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		ClientID:         r.ClientID,
		Description:      r.Description,
		EstimatedBudget:  fmt.Sprintf("%.2f", r.EstimatedBudget),
		EarlyRequirement: r.EarlyRequirement,
		Status:           string(r.Status),
		EstimateID:       r.EstimateID,
		EstimateLink:     r.EstimateLink(),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.Status == entities.EstimateRequestStatusRejected {
		res.Reason = r.Reason
	}
	if r.Client != nil {
		c := FromUserSummary(*r.Client)
		res.Client = &c
	}
	if r.Currency != nil {
		c := FromCurrency(*r.Currency)
		res.Currency = &c
	}
	if r.Project != nil {
		p := FromProject(*r.Project)
		res.Project = &p
	}
	return res
}

func FromEstimateRequests(items []entities.EstimateRequest) []EstimateRequestResponse {
	out := make([]EstimateRequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromEstimateRequest(r))
	}
	return out
}

func FromCurrency(c entities.Currency) CurrencyResponse {
	return CurrencyResponse{ID: c.ID, Code: c.CurrencyCode, Symbol: c.CurrencySymbol, Name: c.CurrencyName}
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{ID: p.ID, Name: p.ProjectName}
}

type PaginationMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

type EstimateRequestListResponse struct {
	Data    []EstimateRequestResponse `json:"data"`
	Meta    PaginationMeta            `json:"meta"`
	Clients []UserSummary             `json:"clients"`
}

func FromEstimateRequestList(l usecase.EstimateRequestList) EstimateRequestListResponse {
	return EstimateRequestListResponse{
		Data:    FromEstimateRequests(l.Items),
		Meta:    PaginationMeta{Page: l.Page, PerPage: l.PerPage, Total: l.Total},
		Clients: FromUserSummaries(l.Clients),
	}
}

type EstimateRequestFormResponse struct {
	Request    *EstimateRequestResponse `json:"request,omitempty"`
	Projects   []ProjectResponse        `json:"projects"`
	Clients    []UserSummary            `json:"clients"`
	Currencies []CurrencyResponse       `json:"currencies"`
}

func FromEstimateRequestForm(f usecase.EstimateRequestForm) EstimateRequestFormResponse {
	res := EstimateRequestFormResponse{
		Projects:   make([]ProjectResponse, 0, len(f.Projects)),
		Clients:    FromUserSummaries(f.Clients),
		Currencies: make([]CurrencyResponse, 0, len(f.Currencies)),
	}
	if f.Request != nil {
		r := FromEstimateRequest(*f.Request)
		res.Request = &r
	}
	for _, p := range f.Projects {
		res.Projects = append(res.Projects, FromProject(p))
	}
	for _, c := range f.Currencies {
		res.Currencies = append(res.Currencies, FromCurrency(c))
	}
	return res
}

type SaveResponse struct {
	Data        EstimateRequestResponse `json:"data"`
	RedirectURL string                  `json:"redirect_url"`
	Message     string                  `json:"message"`
}

func FromSaveResult(r usecase.SaveResult) SaveResponse {
	return SaveResponse{Data: FromEstimateRequest(r.Request), RedirectURL: r.Redirect, Message: r.Message}
}

type PermissionsResponse struct {
	Delete string `json:"delete"`
	Edit   string `json:"edit"`
	Add    string `json:"add"`
}

type EstimateRequestViewResponse struct {
	Data        EstimateRequestResponse `json:"data"`
	Permissions PermissionsResponse     `json:"permissions"`
}

func FromEstimateRequestView(v usecase.EstimateRequestView) EstimateRequestViewResponse {
	data := FromEstimateRequest(v.Request)
	data.EstimateLink = v.EstimateLink
	return EstimateRequestViewResponse{
		Data: data,
		Permissions: PermissionsResponse{
			Delete: string(v.Permissions.Delete),
			Edit:   string(v.Permissions.Edit),
			Add:    string(v.Permissions.Add),
		},
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
