package interfaces

import (
	"context"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/domain/entities"
)

//go:generate mockgen -source=authorizer_interface.go -destination=mocks/authorizer_interface_mock.go -package=mock_interfaces

// IAuthorizer is the capability check every use case operation runs first.
type IAuthorizer interface {
	Authorize(ctx context.Context, actor entities.Actor, capability authz.Capability) error
	Can(ctx context.Context, actor entities.Actor, capability authz.Capability) bool
}

var _ IAuthorizer = (*authz.Gate)(nil)
