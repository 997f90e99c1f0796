package owner

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]View, error)
	Get(ctx context.Context, id string) (*domain.Owner, error)
	Assets(ctx context.Context, ownerID string) ([]domain.Asset, error)
	Update(ctx context.Context, id string, updates map[string]any) error
	CreateWithAsset(ctx context.Context, o *domain.Owner, a *domain.Asset) error
	Earnings(ctx context.Context, ownerID string) (*Earnings, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]View, error) {
	var views []View
	err := r.db.WithContext(ctx).
		Table("owners").
		Select("owners.*, (SELECT COUNT(*) FROM assets WHERE assets.owner_id = owners.id) AS asset_count").
		Order("owners.created_at DESC").
		Scan(&views).Error
	return views, err
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Owner, error) {
	var o domain.Owner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Assets(ctx context.Context, ownerID string) ([]domain.Asset, error) {
	var assets []domain.Asset
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&assets).Error
	return assets, err
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Owner{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOwnerNotFound
	}
	return nil
}

// CreateWithAsset inserts an onboarded owner and the first vehicle together.
func (r *repository) CreateWithAsset(ctx context.Context, o *domain.Owner, a *domain.Asset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		a.OwnerID = o.ID
		return tx.Create(a).Error
	})
}

func (r *repository) Earnings(ctx context.Context, ownerID string) (*Earnings, error) {
	out := &Earnings{OwnerID: ownerID}
	db := r.db.WithContext(ctx)

	var bookings struct {
		Total float64
		Count int
	}
	if err := db.Model(&domain.Booking{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where("owner_id = ? AND status = ?", ownerID, domain.BookingCompleted).
		Scan(&bookings).Error; err != nil {
		return nil, err
	}
	out.TotalRevenue = bookings.Total
	out.CompletedBookings = bookings.Count

	if err := db.Model(&domain.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_id = ? AND status = ?", ownerID, domain.ExpenseApproved).
		Scan(&out.ApprovedExpenses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Remittance{}).
		Select("COALESCE(SUM(owner_payout_amount), 0)").
		Where("owner_id = ? AND status = ?", ownerID, domain.RemittancePaid).
		Scan(&out.PaidOut).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Remittance{}).
		Select("COALESCE(SUM(owner_payout_amount), 0)").
		Where("owner_id = ? AND status IN ?", ownerID, []domain.RemittanceStatus{domain.RemittancePending, domain.RemittanceProcessing}).
		Scan(&out.PendingPayout).Error; err != nil {
		return nil, err
	}

	var assets int64
	if err := db.Model(&domain.Asset{}).Where("owner_id = ?", ownerID).Count(&assets).Error; err != nil {
		return nil, err
	}
	out.AssetCount = int(assets)
	return out, nil
}
