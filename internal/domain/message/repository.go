package message

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Communication, error)
	ListForUserNewestFirst(ctx context.Context, userID string) ([]domain.Communication, error)
	Create(ctx context.Context, m *domain.Communication) error
	MarkRead(ctx context.Context, id, recipientID string) (*domain.Communication, error)
	ProfilesByID(ctx context.Context, ids []string) (map[string]domain.Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Communication, error) {
	q := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", f.UserID, f.UserID)
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}

	var out []domain.Communication
	err := q.Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *repository) ListForUserNewestFirst(ctx context.Context, userID string) ([]domain.Communication, error) {
	var out []domain.Communication
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) Create(ctx context.Context, m *domain.Communication) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// MarkRead only touches messages addressed to recipientID.
func (r *repository) MarkRead(ctx context.Context, id, recipientID string) (*domain.Communication, error) {
	var m domain.Communication
	err := r.db.WithContext(ctx).Where("id = ? AND to_user_id = ?", id, recipientID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	if m.IsRead {
		return &m, nil
	}

	now := dates.Now()
	if err := r.db.WithContext(ctx).Model(&m).Updates(map[string]any{"is_read": true, "read_at": now}).Error; err != nil {
		return nil, err
	}
	m.IsRead = true
	m.ReadAt = &now
	return &m, nil
}

func (r *repository) ProfilesByID(ctx context.Context, ids []string) (map[string]domain.Profile, error) {
	out := make(map[string]domain.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var profiles []domain.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}
