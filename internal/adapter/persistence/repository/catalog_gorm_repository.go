package repository

import (
	"context"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CatalogGormRepository reads projects and currencies for form dropdowns.

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListProjectsByClient(ctx context.Context, clientID uint) ([]entities.Project, error) {
	var projects []entities.Project
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("project_name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *CatalogGormRepository) ListCurrencies(ctx context.Context, companyID *uint) ([]entities.Currency, error) {
	var currencies []entities.Currency
	err := scopeCompany(r.db.WithContext(ctx), companyID).
		Order("currency_code ASC").
		Find(&currencies).Error
	return currencies, err
}
