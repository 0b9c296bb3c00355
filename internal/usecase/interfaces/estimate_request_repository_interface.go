package interfaces

import (
	"context"
	"estimate_request_service/internal/domain/entities"
)

//go:generate mockgen -source=estimate_request_repository_interface.go -destination=mocks/estimate_request_repository_interface_mock.go -package=mock_interfaces

// EstimateRequestFilter is the scoped query used by listings.
//
// CompanyID is always applied (nil matches company-less rows). ClientID, when
// set, restricts rows to a single client.
type EstimateRequestFilter struct {
	CompanyID *uint
	ClientID  *uint
	Status    entities.EstimateRequestStatus
	Search    string
	Page      int
	PerPage   int
}

// IEstimateRequestRepository abstracts relational persistence for
// EstimateRequest.
//
// GetByID returns a zero-ID entity (and no error) when the row does not
// exist.

type IEstimateRequestRepository interface {
	List(ctx context.Context, filter EstimateRequestFilter) ([]entities.EstimateRequest, int64, error)
	Create(ctx context.Context, r *entities.EstimateRequest) error
	GetByID(ctx context.Context, id uint) (entities.EstimateRequest, error)
	Update(ctx context.Context, r *entities.EstimateRequest) error
	UpdateStatus(ctx context.Context, id uint, status entities.EstimateRequestStatus, reason *string) error
	Delete(ctx context.Context, id uint) error
}
