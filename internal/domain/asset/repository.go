package asset

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Asset, error)
	Get(ctx context.Context, id string) (*domain.Asset, error)
	OwnerExists(ctx context.Context, ownerID string) (bool, error)
	Create(ctx context.Context, a *domain.Asset) error
	Save(ctx context.Context, a *domain.Asset) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Asset, error) {
	q := r.db.WithContext(ctx).Model(&domain.Asset{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}

	var assets []domain.Asset
	if err := q.Order("created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Asset, error) {
	var a domain.Asset
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) OwnerExists(ctx context.Context, ownerID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Owner{}).Where("id = ?", ownerID).Count(&n).Error
	return n > 0, err
}

func (r *repository) Create(ctx context.Context, a *domain.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Save writes every column of a loaded asset, including the JSON list fields.
func (r *repository) Save(ctx context.Context, a *domain.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Asset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}
