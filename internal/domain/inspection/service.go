package inspection

import (
	"context"
	"fmt"
	"log"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/refnum"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records an inspection. When damage was found a damage report is
// written in the same transaction, graded by the repair estimate.
func (s *Service) Create(ctx context.Context, req CreateRequest, inspectorID string) (*CreateResult, error) {
	if req.InspectionType != domain.InspectionCheckin && req.InspectionType != domain.InspectionCheckout {
		return nil, ErrInvalidType
	}
	b, err := s.repo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	when := dates.Now()
	if req.InspectionDate != "" {
		if when, err = dates.Parse(req.InspectionDate); err != nil {
			return nil, err
		}
	}
	assetID := req.AssetID
	if assetID == "" {
		assetID = b.AssetID
	}

	insp := &domain.Inspection{
		BookingID:           b.ID,
		AssetID:             assetID,
		InspectionType:      req.InspectionType,
		InspectorID:         inspectorID,
		InspectionDate:      when,
		Mileage:             req.Mileage,
		FuelLevel:           req.FuelLevel,
		ExteriorCondition:   req.ExteriorCondition,
		InteriorCondition:   req.InteriorCondition,
		MechanicalCondition: req.MechanicalCondition,
		ChecklistItems:      req.ChecklistItems,
		DamagesFound:        req.DamagesFound,
		DamageDescription:   req.DamageDescription,
		EstimatedRepairCost: req.EstimatedRepairCost,
		PhotoURLs:           req.PhotoURLs,
		RenterSigned:        req.RenterSigned,
		Notes:               req.Notes,
	}

	var dmg *domain.DamageReport
	if req.DamagesFound {
		dmg = &domain.DamageReport{
			ReportNumber:        refnum.DamageReport(dates.Now()),
			BookingID:           b.ID,
			AssetID:             assetID,
			Title:               "Damage found during " + req.InspectionType,
			Description:         req.DamageDescription,
			Severity:            domain.SeverityFor(req.EstimatedRepairCost),
			DiscoveredBy:        inspectorID,
			DiscoveryDate:       dates.Today(),
			RenterID:            b.RenterID,
			EstimatedRepairCost: req.EstimatedRepairCost,
			Status:              domain.DamageReported,
		}
	}

	if err := s.repo.CreateWithDamage(ctx, insp, dmg); err != nil {
		return nil, fmt.Errorf("save inspection: %w", err)
	}
	if dmg != nil {
		log.Printf("damage_report_created number=%s booking_id=%s severity=%s", dmg.ReportNumber, b.ID, dmg.Severity)
	}
	return &CreateResult{Inspection: insp, DamageReport: dmg}, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Inspection, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) ListDamage(ctx context.Context, f DamageFilter) ([]domain.DamageReport, error) {
	return s.repo.ListDamage(ctx, f)
}

// UpdateDamage moves a damage report along. Resolving stamps the resolution date.
func (s *Service) UpdateDamage(ctx context.Context, id string, req DamageUpdateRequest) (*domain.DamageReport, error) {
	current, err := s.repo.GetDamage(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Status != nil {
		switch *req.Status {
		case domain.DamageReported, domain.DamageAssessed, domain.DamageRepairing, domain.DamageResolved:
		default:
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
		if *req.Status == domain.DamageResolved && current.ResolutionDate == nil {
			updates["resolution_date"] = dates.Today()
		}
	}
	if req.ResponsibleParty != nil {
		updates["responsible_party"] = *req.ResponsibleParty
	}
	if req.ActualRepairCost != nil {
		updates["actual_repair_cost"] = *req.ActualRepairCost
	}
	if req.RenterChargeAmount != nil {
		updates["renter_charge_amount"] = *req.RenterChargeAmount
	}
	if req.ResolutionNotes != nil {
		updates["resolution_notes"] = *req.ResolutionNotes
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateDamage(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.GetDamage(ctx, id)
}
