package dashboard

import (
	"context"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/pricing"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Manager(ctx context.Context) (*ManagerStats, error) {
	var (
		out ManagerStats
		err error
	)
	if out.AssetsByStatus, err = s.repo.AssetCounts(ctx); err != nil {
		return nil, err
	}
	for _, n := range out.AssetsByStatus {
		out.TotalAssets += n
	}
	if out.ActiveBookings, err = s.repo.CountBookings(ctx, activeBookingStatuses...); err != nil {
		return nil, err
	}
	if out.CompletedBookings, err = s.repo.CountBookings(ctx, domain.BookingCompleted); err != nil {
		return nil, err
	}
	if out.TotalRevenue, err = s.repo.SumBookings(ctx, "total_amount", domain.BookingCompleted); err != nil {
		return nil, err
	}
	if out.PendingExpenses, out.PendingExpenseTotal, err = s.repo.Expenses(ctx, domain.ExpensePending); err != nil {
		return nil, err
	}
	if out.OpenMaintenance, err = s.repo.CountOpenMaintenance(ctx); err != nil {
		return nil, err
	}
	if out.OwnerCount, err = s.repo.CountOwners(ctx); err != nil {
		return nil, err
	}

	out.TotalRevenue = pricing.RoundCents(out.TotalRevenue)
	out.PendingExpenseTotal = pricing.RoundCents(out.PendingExpenseTotal)
	return &out, nil
}

func (s *Service) Financials(ctx context.Context) (*Financials, error) {
	var (
		out Financials
		err error
	)
	if out.TotalRevenue, err = s.repo.SumBookings(ctx, "total_amount", domain.BookingCompleted); err != nil {
		return nil, err
	}
	if out.PlatformFees, err = s.repo.SumBookings(ctx, "platform_fee", domain.BookingCompleted); err != nil {
		return nil, err
	}
	if _, out.ApprovedExpenses, err = s.repo.Expenses(ctx, domain.ExpenseApproved); err != nil {
		return nil, err
	}
	if out.PaidRemittances, err = s.repo.SumPayouts(ctx, domain.RemittancePaid); err != nil {
		return nil, err
	}
	if out.PendingPayouts, err = s.repo.SumPayouts(ctx, domain.RemittancePending, domain.RemittanceProcessing); err != nil {
		return nil, err
	}

	out.TotalRevenue = pricing.RoundCents(out.TotalRevenue)
	out.PlatformFees = pricing.RoundCents(out.PlatformFees)
	out.ApprovedExpenses = pricing.RoundCents(out.ApprovedExpenses)
	out.PaidRemittances = pricing.RoundCents(out.PaidRemittances)
	out.PendingPayouts = pricing.RoundCents(out.PendingPayouts)
	return &out, nil
}
