package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/domain/ledger"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]View, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	CreateWithIncome(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, id string, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter) ([]View, error) {
	q := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, assets.name AS asset_name").
		Joins("LEFT JOIN assets ON assets.id = bookings.asset_id")
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.AssetID != "" {
		q = q.Where("bookings.asset_id = ?", f.AssetID)
	}
	if f.RenterID != "" {
		q = q.Where("bookings.renter_id = ?", f.RenterID)
	}
	if f.OwnerID != "" {
		q = q.Where("bookings.owner_id = ?", f.OwnerID)
	}

	var views []View
	if err := q.Order("bookings.created_at DESC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
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

// CreateWithIncome inserts the booking and its rental income row atomically.
func (r *repository) CreateWithIncome(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return tx.Create(ledger.RentalIncome(b)).Error
	})
}

// Update applies the changes and keeps the rental income row in step: a
// completed booking completes it and a repriced booking moves a pending amount.
func (r *repository) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Booking{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingNotFound
		}

		income := tx.Model(&domain.Transaction{}).
			Where("booking_id = ? AND transaction_type = ?", id, domain.TxRentalIncome).
			Session(&gorm.Session{})

		if total, ok := updates["total_amount"]; ok {
			if err := income.Where("status = ?", domain.TxStatusPending).
				Update("amount", total).Error; err != nil {
				return err
			}
		}
		if status, ok := updates["status"]; ok && status == domain.BookingCompleted {
			if err := income.Update("status", domain.TxStatusCompleted).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
