package owner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"rvconsign/internal/domain"
	"rvconsign/internal/notify"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/pkg/pricing"
)

// OnboardingDealDays prices the onboarding deal as a month of rentals.
const OnboardingDealDays = 30

// CRMSyncer pushes an owner to the CRM as a contact.
type CRMSyncer interface {
	SyncOwner(ctx context.Context, ownerID string) error
}

// OnboardingCRM opens the lead records for a new owner application.
type OnboardingCRM interface {
	CreateOnboardingContact(ctx context.Context, email, firstName, lastName, phone, company string) (string, error)
	CreateOnboardingDeal(ctx context.Context, contactID, dealName string, amount float64) error
}

type CRM interface {
	CRMSyncer
	OnboardingCRM
}

type Service struct {
	repo      Repository
	crm       CRM
	notifier  notify.Notifier
	teamEmail string
}

func NewService(repo Repository, crm CRM, notifier notify.Notifier, teamEmail string) *Service {
	return &Service{repo: repo, crm: crm, notifier: notifier, teamEmail: teamEmail}
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	assets, err := s.repo.Assets(ctx, id)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return &Detail{Owner: *o, Assets: assets}, nil
}

// Update changes contact details and contract terms, then re-syncs the CRM contact.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Owner, outcome.Effects, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, nil, err
	}

	updates := map[string]any{}
	if req.Status != nil {
		switch domain.OwnerStatus(*req.Status) {
		case domain.OwnerPendingApproval, domain.OwnerActive, domain.OwnerInactive:
		default:
			return nil, nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	for column, v := range map[string]*float64{
		"revenue_split_percentage": req.RevenueSplitPercentage,
		"platform_fee_percentage":  req.PlatformFeePercentage,
	} {
		if v == nil {
			continue
		}
		if *v < 0 || *v > 100 {
			return nil, nil, ErrInvalidSplit
		}
		updates[column] = *v
	}
	for column, v := range map[string]*string{
		"business_name":           req.BusinessName,
		"contact_name":            req.ContactName,
		"email":                   req.Email,
		"phone":                   req.Phone,
		"address":                 req.Address,
		"city":                    req.City,
		"state":                   req.State,
		"zip_code":                req.ZipCode,
		"tax_id":                  req.TaxID,
		"preferred_payout_method": req.PreferredPayoutMethod,
		"contract_type":           req.ContractType,
		"notes":                   req.Notes,
	} {
		if v != nil {
			updates[column] = *v
		}
	}
	if req.ExpenseCapMonthly != nil {
		updates["expense_cap_monthly"] = *req.ExpenseCapMonthly
	}
	if req.MinimumGuaranteeMonthly != nil {
		updates["minimum_guarantee_monthly"] = *req.MinimumGuaranteeMonthly
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, nil, err
		}
	}
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var effects outcome.Effects
	effects.Record("crm.sync_owner", s.crm.SyncOwner(ctx, id))
	return o, effects, nil
}

// Onboard registers a public owner application: CRM contact, owner and first
// asset (one transaction), CRM deal, then the team alert. Only the database
// write can fail the request.
func (s *Service) Onboard(ctx context.Context, req OnboardRequest) (*OnboardResult, outcome.Effects, error) {
	first, last := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if first == "" || last == "" || email == "" {
		return nil, nil, ErrMissingContact
	}
	contactName := first + " " + last
	company := strings.TrimSpace(req.Company)

	var effects outcome.Effects
	contactID, err := s.crm.CreateOnboardingContact(ctx, email, first, last, req.Phone, company)
	effects.Record("crm.onboarding_contact", err)

	businessName := company
	if businessName == "" {
		businessName = contactName
	}
	o := &domain.Owner{
		BusinessName:           businessName,
		ContactName:            contactName,
		Email:                  email,
		Phone:                  req.Phone,
		RevenueSplitPercentage: domain.DefaultRevenueSplitPercentage,
		PlatformFeePercentage:  domain.DefaultPlatformFeePercentage,
		ContractType:           domain.DefaultContractType,
		Status:                 domain.OwnerPendingApproval,
		Notes:                  req.Notes,
		HubspotContactID:       contactID,
	}
	a := &domain.Asset{
		Name:                fmt.Sprintf("%d %s %s", req.VehicleYear, strings.TrimSpace(req.VehicleMake), strings.TrimSpace(req.VehicleModel)),
		Year:                req.VehicleYear,
		Make:                req.VehicleMake,
		Model:               req.VehicleModel,
		RVType:              req.RVType,
		Status:              domain.AssetPendingApproval,
		BasePricePerNight:   req.BasePrice,
		CleaningFee:         domain.DefaultCleaningFee,
		SecurityDeposit:     domain.DefaultSecurityDeposit,
		MinimumRentalNights: domain.DefaultMinimumRentalNights,
	}
	if err := s.repo.CreateWithAsset(ctx, o, a); err != nil {
		return nil, effects, fmt.Errorf("save onboarding: %w", err)
	}
	log.Printf("owner_onboarded owner_id=%s asset_id=%s", o.ID, a.ID)

	dealName := "New Owner Onboarding - " + businessName
	effects.Record("crm.onboarding_deal",
		s.crm.CreateOnboardingDeal(ctx, contactID, dealName, pricing.RoundCents(req.BasePrice*OnboardingDealDays)))

	effects.Record("notify.team_onboarding", s.notifyTeam(ctx, o, a))
	return &OnboardResult{Owner: o, Asset: a}, effects, nil
}

func (s *Service) notifyTeam(ctx context.Context, o *domain.Owner, a *domain.Asset) error {
	if s.teamEmail == "" {
		return fmt.Errorf("%w: %v", outcome.ErrSkipped, ErrNoTeamAddress)
	}
	if err := s.notifier.Send(ctx, notify.OwnerOnboarded(s.teamEmail, o, a)); err != nil {
		log.Printf("notify_failed kind=owner_onboarded owner_id=%s err=%v", o.ID, err)
		return err
	}
	return nil
}

func (s *Service) Earnings(ctx context.Context, ownerID string) (*Earnings, error) {
	if _, err := s.repo.Get(ctx, ownerID); err != nil {
		return nil, err
	}
	e, err := s.repo.Earnings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	e.TotalRevenue = pricing.RoundCents(e.TotalRevenue)
	e.ApprovedExpenses = pricing.RoundCents(e.ApprovedExpenses)
	e.PaidOut = pricing.RoundCents(e.PaidOut)
	e.PendingPayout = pricing.RoundCents(e.PendingPayout)
	return e, nil
}
