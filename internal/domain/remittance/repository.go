package remittance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
)

type Repository interface {
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	OwnerEmail(ctx context.Context, owner *domain.Owner) (email, name string, err error)
	CompletedBookings(ctx context.Context, ownerID string, start, end time.Time) ([]BookingLine, error)
	ApprovedExpenses(ctx context.Context, ownerID string, start, end time.Time) ([]ExpenseLine, error)
	Create(ctx context.Context, r *domain.Remittance) error
	List(ctx context.Context, f Filter) ([]domain.Remittance, error)
	Get(ctx context.Context, id string) (*domain.Remittance, error)
	Update(ctx context.Context, id string, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
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

// OwnerEmail prefers the login profile address over the contact address on the owner row.
func (r *repository) OwnerEmail(ctx context.Context, owner *domain.Owner) (string, string, error) {
	email, name := owner.Email, owner.ContactName
	if owner.UserID != "" {
		var p domain.Profile
		err := r.db.WithContext(ctx).Where("id = ?", owner.UserID).First(&p).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", err
		}
		if err == nil && p.Email != "" {
			email = p.Email
			if p.FullName != "" {
				name = p.FullName
			}
		}
	}
	if name == "" {
		name = owner.BusinessName
	}
	return email, name, nil
}

func (r *repository) CompletedBookings(ctx context.Context, ownerID string, start, end time.Time) ([]BookingLine, error) {
	var lines []BookingLine
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id, bookings.booking_number, assets.name AS asset_name, bookings.start_date, "+
			"bookings.end_date, bookings.total_amount AS amount, bookings.cleaning_fee").
		Joins("LEFT JOIN assets ON assets.id = bookings.asset_id").
		Where("bookings.owner_id = ? AND bookings.status = ?", ownerID, domain.BookingCompleted).
		Where("bookings.end_date >= ? AND bookings.end_date <= ?", start, end).
		Order("bookings.end_date").
		Scan(&lines).Error
	return lines, err
}

func (r *repository) ApprovedExpenses(ctx context.Context, ownerID string, start, end time.Time) ([]ExpenseLine, error) {
	var lines []ExpenseLine
	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("id, description, category, amount, expense_date AS date").
		Where("owner_id = ? AND status = ?", ownerID, domain.ExpenseApproved).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Order("expense_date").
		Scan(&lines).Error
	return lines, err
}

func (r *repository) Create(ctx context.Context, rem *domain.Remittance) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Remittance, error) {
	q := r.db.WithContext(ctx).Model(&domain.Remittance{})
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var rows []domain.Remittance
	if err := q.Order("generated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Remittance, error) {
	var rem domain.Remittance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRemittanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Remittance{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRemittanceNotFound
	}
	return nil
}
