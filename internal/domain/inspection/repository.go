package inspection

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	CreateWithDamage(ctx context.Context, insp *domain.Inspection, dmg *domain.DamageReport) error
	List(ctx context.Context, f Filter) ([]domain.Inspection, error)
	ListDamage(ctx context.Context, f DamageFilter) ([]domain.DamageReport, error)
	GetDamage(ctx context.Context, id string) (*domain.DamageReport, error)
	UpdateDamage(ctx context.Context, id string, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
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

// CreateWithDamage writes the inspection and its damage report (when dmg is
// not nil) in one transaction.
func (r *repository) CreateWithDamage(ctx context.Context, insp *domain.Inspection, dmg *domain.DamageReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(insp).Error; err != nil {
			return err
		}
		if dmg == nil {
			return nil
		}
		dmg.InspectionID = insp.ID
		return tx.Create(dmg).Error
	})
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Inspection, error) {
	q := r.db.WithContext(ctx).Model(&domain.Inspection{})
	if f.BookingID != "" {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.OwnerID != "" {
		q = q.Where("asset_id IN (?)", r.db.Model(&domain.Asset{}).Select("id").Where("owner_id = ?", f.OwnerID))
	}
	if f.RenterID != "" {
		q = q.Where("booking_id IN (?)", r.db.Model(&domain.Booking{}).Select("id").Where("renter_id = ?", f.RenterID))
	}

	var out []domain.Inspection
	if err := q.Order("inspection_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListDamage(ctx context.Context, f DamageFilter) ([]domain.DamageReport, error) {
	q := r.db.WithContext(ctx).Model(&domain.DamageReport{})
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OwnerID != "" {
		q = q.Where("asset_id IN (?)", r.db.Model(&domain.Asset{}).Select("id").Where("owner_id = ?", f.OwnerID))
	}

	var out []domain.DamageReport
	if err := q.Order("discovery_date DESC").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) GetDamage(ctx context.Context, id string) (*domain.DamageReport, error) {
	var d domain.DamageReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDamageReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) UpdateDamage(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.DamageReport{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDamageReportNotFound
	}
	return nil
}
