package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/middleware"
)

type Repository interface {
	CreateAccount(ctx context.Context, p *domain.Profile, owner *domain.Owner, renter *domain.Renter) error
	ProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Profile(ctx context.Context, id string) (*domain.Profile, error)
	OwnerForUser(ctx context.Context, userID string) (*domain.Owner, error)
	RenterForUser(ctx context.Context, userID string) (*domain.Renter, error)
	OwnerIDForUser(ctx context.Context, userID string) (string, error)
	RenterIDForUser(ctx context.Context, userID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateAccount writes the profile and its owner or renter row together.
func (r *repository) CreateAccount(ctx context.Context, p *domain.Profile, owner *domain.Owner, renter *domain.Renter) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if owner != nil {
			owner.UserID = p.ID
			if err := tx.Create(owner).Error; err != nil {
				return err
			}
		}
		if renter != nil {
			renter.UserID = p.ID
			if err := tx.Create(renter).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) ProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Profile(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) OwnerForUser(ctx context.Context, userID string) (*domain.Owner, error) {
	var o domain.Owner
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, middleware.ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) RenterForUser(ctx context.Context, userID string) (*domain.Renter, error) {
	var rt domain.Renter
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, middleware.ErrNoAccount
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) OwnerIDForUser(ctx context.Context, userID string) (string, error) {
	o, err := r.OwnerForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return o.ID, nil
}

func (r *repository) RenterIDForUser(ctx context.Context, userID string) (string, error) {
	rt, err := r.RenterForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return rt.ID, nil
}
