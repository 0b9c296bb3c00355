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

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *entities.User) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Create(u)
	logger.DatabaseResult("create", res.RowsAffected, res.Error, "table", "users")
	return res.Error
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	return u, err
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	return u, err
}

// ListClients returns the users of a company holding the client role.
func (r *UserGormRepository) ListClients(ctx context.Context, companyID *uint, withEmailOnly bool) ([]entities.User, error) {
	q := scopeCompany(r.db.WithContext(ctx).Model(&entities.User{}), companyID).
		Where("roles LIKE ?", "%"+entities.RoleClient+"%")
	if withEmailOnly {
		q = q.Where("email IS NOT NULL AND email <> ''")
	}

	logger.DatabaseCall("list_clients", "users")
	var users []entities.User
	err := q.Order("name ASC").Find(&users).Error
	logger.DatabaseResult("list_clients", int64(len(users)), err)
	if err != nil {
		return nil, err
	}
	clients := users[:0]
	for _, u := range users {
		if u.HasRole(entities.RoleClient) {
			clients = append(clients, u)
		}
	}
	return clients, nil
}
