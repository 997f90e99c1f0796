package maintenance

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.MaintenanceRequest, error)
	Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	Create(ctx context.Context, m *domain.MaintenanceRequest) error
	Update(ctx context.Context, id string, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.MaintenanceRequest, error) {
	q := r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}

	var out []domain.MaintenanceRequest
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *repository) Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	var m domain.MaintenanceRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
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

func (r *repository) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
