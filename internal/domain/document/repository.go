package document

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, d *domain.Document) error
	Get(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, f Filter) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Document, error) {
	var d domain.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Document, error) {
	q := r.db.WithContext(ctx).Model(&domain.Document{})
	if f.DocumentType != "" {
		q = q.Where("document_type = ?", f.DocumentType)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.BookingID != "" {
		q = q.Where("booking_id = ?", f.BookingID)
	}

	var docs []domain.Document
	err := q.Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Document{}).Error
}
