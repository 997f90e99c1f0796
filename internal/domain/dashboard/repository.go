package dashboard

import (
	"context"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

// activeBookingStatuses are bookings holding an RV right now or soon.
var activeBookingStatuses = []domain.BookingStatus{
	domain.BookingConfirmed, domain.BookingCheckedIn, domain.BookingActive,
}

type Repository interface {
	AssetCounts(ctx context.Context) (map[string]int, error)
	CountBookings(ctx context.Context, statuses ...domain.BookingStatus) (int, error)
	SumBookings(ctx context.Context, column string, status domain.BookingStatus) (float64, error)
	Expenses(ctx context.Context, status domain.ExpenseStatus) (count int, total float64, err error)
	CountOpenMaintenance(ctx context.Context) (int, error)
	CountOwners(ctx context.Context) (int, error)
	SumPayouts(ctx context.Context, statuses ...domain.RemittanceStatus) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AssetCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	if err := r.db.WithContext(ctx).Model(&domain.Asset{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int, len(domain.AllAssetStatuses))
	for _, st := range domain.AllAssetStatuses {
		out[string(st)] = 0
	}
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *repository) CountBookings(ctx context.Context, statuses ...domain.BookingStatus) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("status IN ?", statuses).Count(&n).Error
	return int(n), err
}

// SumBookings sums a money column over bookings in one status. column is
// never user input.
func (r *repository) SumBookings(ctx context.Context, column string, status domain.BookingStatus) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("COALESCE(SUM("+column+"), 0)").
		Where("status = ?", status).
		Scan(&total).Error
	return total, err
}

func (r *repository) Expenses(ctx context.Context, status domain.ExpenseStatus) (int, float64, error) {
	var row struct {
		Count int
		Total float64
	}
	err := r.db.WithContext(ctx).Model(&domain.Expense{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", status).
		Scan(&row).Error
	return row.Count, row.Total, err
}

func (r *repository) CountOpenMaintenance(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{}).
		Where("status IN ?", domain.OpenMaintenanceStatuses).
		Count(&n).Error
	return int(n), err
}

func (r *repository) CountOwners(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Owner{}).Count(&n).Error
	return int(n), err
}

func (r *repository) SumPayouts(ctx context.Context, statuses ...domain.RemittanceStatus) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Remittance{}).
		Select("COALESCE(SUM(owner_payout_amount), 0)").
		Where("status IN ?", statuses).
		Scan(&total).Error
	return total, err
}
