package interfaces

import (
	"context"
	"estimate_request_service/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_interface_mock.go -package=mock_interfaces

// ICatalogRepository serves the lookup lists shown on estimate request forms.

type ICatalogRepository interface {
	ListProjectsByClient(ctx context.Context, clientID uint) ([]entities.Project, error)
	ListCurrencies(ctx context.Context, companyID *uint) ([]entities.Currency, error)
}
