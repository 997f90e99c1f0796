package remittance

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rvconsign/internal/domain"
	"rvconsign/internal/notify"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/pkg/pricing"
	"rvconsign/internal/pkg/refnum"
)

type Service struct {
	repo     Repository
	notifier notify.Notifier
}

func NewService(repo Repository, notifier notify.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func parsePeriod(req PeriodRequest) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.OwnerID) == "" || req.PeriodStart == "" || req.PeriodEnd == "" {
		return time.Time{}, time.Time{}, ErrMissingFields
	}
	start, err := dates.Parse(req.PeriodStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dates.Parse(req.PeriodEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}

// Calculate computes the owner payout for a period. Gross income sums booking
// totals and the platform share uses the fixed platform rate, not the owner's
// configured percentage.
func (s *Service) Calculate(ctx context.Context, req PeriodRequest) (*Calculation, error) {
	start, end, err := parsePeriod(req)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.GetOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.CompletedBookings(ctx, owner.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	expenses, err := s.repo.ApprovedExpenses(ctx, owner.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	return calculate(owner, start, end, bookings, expenses), nil
}

func calculate(owner *domain.Owner, start, end time.Time, bookings []BookingLine, expenses []ExpenseLine) *Calculation {
	var gross, cleaning, spent float64
	for _, b := range bookings {
		gross += b.Amount
		cleaning += b.CleaningFee
	}
	for _, e := range expenses {
		spent += e.Amount
	}

	platform := gross * pricing.PlatformFeeRate
	deductions := platform + cleaning + spent
	net := gross - deductions
	payout := net * owner.RevenueSplitPercentage / 100

	if bookings == nil {
		bookings = []BookingLine{}
	}
	if expenses == nil {
		expenses = []ExpenseLine{}
	}

	return &Calculation{
		Owner: OwnerSummary{
			ID:                     owner.ID,
			BusinessName:           owner.BusinessName,
			RevenueSplitPercentage: owner.RevenueSplitPercentage,
		},
		Period:          Period{Start: dates.Format(start), End: dates.Format(end)},
		GrossIncome:     pricing.RoundCents(gross),
		PlatformFees:    pricing.RoundCents(platform),
		CleaningFees:    pricing.RoundCents(cleaning),
		Expenses:        pricing.RoundCents(spent),
		TotalDeductions: pricing.RoundCents(deductions),
		NetIncome:       pricing.RoundCents(net),
		OwnerPayout:     pricing.RoundCents(payout),
		BookingsCount:   len(bookings),
		ExpensesCount:   len(expenses),
		Bookings:        bookings,
		ExpenseItems:    expenses,
	}
}

// Send recomputes the calculation, stores it as a pending remittance and
// emails the statement. Sending twice stores two remittances.
func (s *Service) Send(ctx context.Context, req PeriodRequest) (*domain.Remittance, outcome.Effects, error) {
	calc, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	owner, err := s.repo.GetOwner(ctx, calc.Owner.ID)
	if err != nil {
		return nil, nil, err
	}

	start, _ := dates.Parse(calc.Period.Start)
	end, _ := dates.Parse(calc.Period.End)
	now := dates.Now()

	rem := &domain.Remittance{
		RemittanceNumber:     refnum.Remittance(now),
		OwnerID:              owner.ID,
		PeriodStart:          start,
		PeriodEnd:            end,
		GrossRentalIncome:    calc.GrossIncome,
		PlatformFees:         calc.PlatformFees,
		CleaningFees:         calc.CleaningFees,
		MaintenanceExpenses:  calc.Expenses,
		TotalDeductions:      calc.TotalDeductions,
		NetIncome:            calc.NetIncome,
		OwnerSplitPercentage: calc.Owner.RevenueSplitPercentage,
		OwnerPayoutAmount:    calc.OwnerPayout,
		BookingIDs:           make([]string, 0, len(calc.Bookings)),
		ExpenseIDs:           make([]string, 0, len(calc.ExpenseItems)),
		Status:               domain.RemittancePending,
		GeneratedAt:          now,
		SentAt:               &now,
	}
	for _, b := range calc.Bookings {
		rem.BookingIDs = append(rem.BookingIDs, b.ID)
	}
	for _, e := range calc.ExpenseItems {
		rem.ExpenseIDs = append(rem.ExpenseIDs, e.ID)
	}

	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, nil, fmt.Errorf("save remittance: %w", err)
	}
	log.Printf("remittance_created number=%s owner_id=%s payout=%.2f", rem.RemittanceNumber, owner.ID, rem.OwnerPayoutAmount)

	var effects outcome.Effects
	effects.Record("notify.owner_statement", s.sendStatement(ctx, owner, rem))
	return rem, effects, nil
}

func (s *Service) sendStatement(ctx context.Context, owner *domain.Owner, rem *domain.Remittance) error {
	email, name, err := s.repo.OwnerEmail(ctx, owner)
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("%w: %v", outcome.ErrSkipped, ErrNoRecipient)
	}
	if err := s.notifier.Send(ctx, notify.RemittanceStatement(email, name, rem)); err != nil {
		log.Printf("notify_failed kind=owner_statement remittance=%s err=%v", rem.RemittanceNumber, err)
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Remittance, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Remittance, error) {
	return s.repo.Get(ctx, id)
}

// Update records payout progress. Marking paid without a payment date uses today.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Remittance, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Status != nil {
		status := domain.RemittanceStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
		if status == domain.RemittancePaid && req.PaymentDate == nil {
			updates["payment_date"] = dates.Today()
		}
	}
	if req.PaymentDate != nil {
		d, err := dates.ParseOptional(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
		updates["payment_date"] = d
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentReference != nil {
		updates["payment_reference"] = *req.PaymentReference
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, id)
}
