package interfaces

import (
	"context"
	"estimate_request_service/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_interface_mock.go -package=mock_interfaces

// IUserRepository abstracts persistence for users (staff and clients).
// Lookups return a zero-ID user when nothing matches.

type IUserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	GetByID(ctx context.Context, id uint) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListClients(ctx context.Context, companyID *uint, withEmailOnly bool) ([]entities.User, error)
}
