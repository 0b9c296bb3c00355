package repository

import (
	"context"
	"errors"
	"strings"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EstimateRequestGormRepository persists EstimateRequest rows.
//
// Relations (client, project, currency, estimate) are preloaded on reads and
// never written back.

type EstimateRequestGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRequestRepository = (*EstimateRequestGormRepository)(nil)

func NewEstimateRequestGormRepository(db *gorm.DB) *EstimateRequestGormRepository {
	return &EstimateRequestGormRepository{db: db}
}

func (r *EstimateRequestGormRepository) List(ctx context.Context, f interfaces.EstimateRequestFilter) ([]entities.EstimateRequest, int64, error) {
	base := func() *gorm.DB {
		q := scopeCompany(r.db.WithContext(ctx).Model(&entities.EstimateRequest{}), f.CompanyID)
		if f.ClientID != nil {
			q = q.Where("client_id = ?", *f.ClientID)
		}
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if s := strings.TrimSpace(f.Search); s != "" {
			q = q.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(s)+"%")
		}
		return q
	}

	logger.DatabaseCall("list", "estimate_requests")
	var total int64
	if err := base().Count(&total).Error; err != nil {
		logger.DatabaseResult("count", 0, err)
		return nil, 0, err
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	var items []entities.EstimateRequest
	err := withRelations(base()).
		Order("id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	logger.DatabaseResult("list", int64(len(items)), err)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *EstimateRequestGormRepository) Create(ctx context.Context, req *entities.EstimateRequest) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Create(req)
	logger.DatabaseResult("create", res.RowsAffected, res.Error, "table", "estimate_requests")
	return res.Error
}

func (r *EstimateRequestGormRepository) GetByID(ctx context.Context, id uint) (entities.EstimateRequest, error) {
	var req entities.EstimateRequest
	err := withRelations(r.db.WithContext(ctx)).First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.EstimateRequest{}, nil
	}
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	return req, nil
}

// Update overwrites the editable fields and the status. CompanyID, ClientID
// and Reason are never touched here.
func (r *EstimateRequestGormRepository) Update(ctx context.Context, req *entities.EstimateRequest) error {
	res := r.db.WithContext(ctx).
		Model(&entities.EstimateRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"description":       req.Description,
			"estimated_budget":  req.EstimatedBudget,
			"project_id":        req.ProjectID,
			"early_requirement": req.EarlyRequirement,
			"currency_id":       req.CurrencyID,
			"status":            req.Status,
		})
	logger.DatabaseResult("update", res.RowsAffected, res.Error, "table", "estimate_requests", "id", req.ID)
	return res.Error
}

// UpdateStatus writes the reason only when one is given.
func (r *EstimateRequestGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.EstimateRequestStatus, reason *string) error {
	values := map[string]any{"status": status}
	if reason != nil {
		values["reason"] = *reason
	}
	res := r.db.WithContext(ctx).
		Model(&entities.EstimateRequest{}).
		Where("id = ?", id).
		Updates(values)
	logger.DatabaseResult("update_status", res.RowsAffected, res.Error, "table", "estimate_requests", "id", id)
	return res.Error
}

func (r *EstimateRequestGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.EstimateRequest{}, id)
	logger.DatabaseResult("delete", res.RowsAffected, res.Error, "table", "estimate_requests", "id", id)
	return res.Error
}

func withRelations(q *gorm.DB) *gorm.DB {
	return q.Preload("Client").Preload("Project").Preload("Currency").Preload("Estimate")
}
