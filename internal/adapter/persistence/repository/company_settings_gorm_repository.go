package repository

import (
	"context"
	"errors"

	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/notification"

	"gorm.io/gorm"
)

// CompanySettingsGormRepository provides the company level switches read
// during channel resolution.

type CompanySettingsGormRepository struct {
	db *gorm.DB
}

var _ notification.SettingsProvider = (*CompanySettingsGormRepository)(nil)

func NewCompanySettingsGormRepository(db *gorm.DB) *CompanySettingsGormRepository {
	return &CompanySettingsGormRepository{db: db}
}

func (r *CompanySettingsGormRepository) GetCompany(ctx context.Context, id uint) (entities.Company, error) {
	var c entities.Company
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Company{}, nil
	}
	return c, err
}

func (r *CompanySettingsGormRepository) GetEmailSetting(ctx context.Context, companyID uint, slug string) (entities.EmailNotificationSetting, error) {
	var s entities.EmailNotificationSetting
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND slug = ?", companyID, slug).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.EmailNotificationSetting{}, nil
	}
	return s, err
}

func (r *CompanySettingsGormRepository) GetSlackSetting(ctx context.Context, companyID uint) (entities.SlackSetting, error) {
	var s entities.SlackSetting
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.SlackSetting{}, nil
	}
	return s, err
}
