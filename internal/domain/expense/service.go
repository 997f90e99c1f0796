package expense

import (
	"context"
	"strings"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Expense, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Expense, error) {
	return s.repo.Get(ctx, id)
}

// Create records a pending expense. The owner defaults to the asset's owner.
// A non-empty scopeOwnerID restricts the asset to that owner's fleet.
func (s *Service) Create(ctx context.Context, req CreateRequest, scopeOwnerID string) (*domain.Expense, error) {
	category := domain.ExpenseCategory(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	asset, err := s.repo.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if scopeOwnerID != "" && asset.OwnerID != scopeOwnerID {
		return nil, ErrAssetNotFound
	}

	expenseDate := dates.Today()
	if req.ExpenseDate != "" {
		if expenseDate, err = dates.Parse(req.ExpenseDate); err != nil {
			return nil, err
		}
	}

	e := &domain.Expense{
		AssetID:                    asset.ID,
		OwnerID:                    req.OwnerID,
		MaintenanceRequestID:       req.MaintenanceRequestID,
		Category:                   category,
		Amount:                     req.Amount,
		Description:                req.Description,
		Vendor:                     req.Vendor,
		PaidTo:                     req.PaidTo,
		PaymentMethod:              req.PaymentMethod,
		ReceiptURL:                 req.ReceiptURL,
		Status:                     domain.ExpensePending,
		DeductFromOwner:            true,
		OwnerResponsiblePercentage: 100,
		ExpenseDate:                expenseDate,
	}
	if e.OwnerID == "" {
		e.OwnerID = asset.OwnerID
	}
	if req.DeductFromOwner != nil {
		e.DeductFromOwner = *req.DeductFromOwner
	}
	if req.OwnerResponsiblePercentage != nil {
		e.OwnerResponsiblePercentage = *req.OwnerResponsiblePercentage
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies a partial update. Moving into approved stamps the approver
// and books the expense on the ledger.
func (s *Service) Update(ctx context.Context, id, actorID string, req UpdateRequest) (*domain.Expense, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Category != nil {
		c := domain.ExpenseCategory(*req.Category)
		if !c.Valid() {
			return nil, ErrInvalidCategory
		}
		updates["category"] = c
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		updates["amount"] = *req.Amount
	}
	if req.Status != nil {
		status := domain.ExpenseStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
		if status == domain.ExpenseApproved && current.Status != domain.ExpenseApproved {
			updates["approved_at"] = dates.Now()
			updates["approved_by"] = actorID
		}
	}
	for col, v := range map[string]*string{
		"description":    req.Description,
		"vendor":         req.Vendor,
		"paid_to":        req.PaidTo,
		"payment_method": req.PaymentMethod,
		"receipt_url":    req.ReceiptURL,
	} {
		if v != nil {
			updates[col] = *v
		}
	}
	if req.ExpenseDate != nil {
		d, err := dates.Parse(*req.ExpenseDate)
		if err != nil {
			return nil, err
		}
		updates["expense_date"] = d
	}
	if req.PaymentDate != nil {
		d, err := dates.ParseOptional(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
		updates["payment_date"] = d
	}
	if req.DeductFromOwner != nil {
		updates["deduct_from_owner"] = *req.DeductFromOwner
	}
	if req.OwnerResponsiblePercentage != nil {
		updates["owner_responsible_percentage"] = *req.OwnerResponsiblePercentage
	}

	return s.repo.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	return s.repo.Delete(ctx, id)
}
