package renter

import (
	"context"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]View, error)
	Get(ctx context.Context, id string) (*View, error)
	Update(ctx context.Context, id string, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("renters").
		Select("renters.*, profiles.full_name AS full_name, profiles.email AS email, profiles.phone AS phone").
		Joins("LEFT JOIN profiles ON profiles.id = renters.user_id")
}

func (r *repository) List(ctx context.Context) ([]View, error) {
	var views []View
	if err := r.base(ctx).Order("renters.created_at DESC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) Get(ctx context.Context, id string) (*View, error) {
	var views []View
	if err := r.base(ctx).Where("renters.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrRenterNotFound
	}
	return &views[0], nil
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Renter{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRenterNotFound
	}
	return nil
}
