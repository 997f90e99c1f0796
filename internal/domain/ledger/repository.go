package ledger

import (
	"context"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Filter struct {
	OwnerID   string
	AssetID   string
	BookingID string
	Type      string
	Status    string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Transaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Transaction, error) {
	q := r.db.WithContext(ctx).Model(&domain.Transaction{})
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.BookingID != "" {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	if f.Type != "" {
		q = q.Where("transaction_type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var txns []domain.Transaction
	if err := q.Order("transaction_date DESC").Order("created_at DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
