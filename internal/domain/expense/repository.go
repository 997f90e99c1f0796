package expense

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rvconsign/internal/domain"
	"rvconsign/internal/domain/ledger"
	"rvconsign/internal/pkg/refnum"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Expense, error)
	Get(ctx context.Context, id string) (*domain.Expense, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	Create(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, id string, updates map[string]any) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, f Filter) ([]domain.Expense, error) {
	q := r.db.WithContext(ctx).Model(&domain.Expense{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}

	var expenses []domain.Expense
	if err := q.Order("expense_date DESC").Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Expense, error) {
	var e domain.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
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

func (r *repository) Create(ctx context.Context, e *domain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update applies the changes and, when the expense ends up approved, makes
// sure its EXP-{id} ledger row exists exactly once.
func (r *repository) Update(ctx context.Context, id string, updates map[string]any) (*domain.Expense, error) {
	var out domain.Expense
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&out).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		if err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&domain.Expense{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
				return err
			}
		}

		if out.Status != domain.ExpenseApproved {
			return nil
		}

		var existing int64
		if err := tx.Model(&domain.Transaction{}).
			Where("reference_number = ?", refnum.ExpenseReference(id)).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}
		return tx.Create(ledger.ExpenseCharge(&out)).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
