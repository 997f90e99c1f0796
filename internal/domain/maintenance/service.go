package maintenance

import (
	"context"
	"fmt"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/dberr"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/pkg/refnum"
)

const DefaultPriority = "medium"

// CRMSyncer pushes a maintenance request to the CRM as a ticket.
type CRMSyncer interface {
	SyncMaintenance(ctx context.Context, requestID string) error
}

type Service struct {
	repo Repository
	crm  CRMSyncer
}

func NewService(repo Repository, crm CRMSyncer) *Service {
	return &Service{repo: repo, crm: crm}
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.MaintenanceRequest, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	return s.repo.Get(ctx, id)
}

// Create opens a ticket in the requested state. A scoped owner may only file
// against their own assets.
func (s *Service) Create(ctx context.Context, req CreateRequest, reportedBy, scopeOwnerID string) (*domain.MaintenanceRequest, outcome.Effects, error) {
	asset, err := s.repo.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if scopeOwnerID != "" && asset.OwnerID != scopeOwnerID {
		return nil, nil, ErrAssetNotFound
	}

	priority := req.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	scheduled, err := dates.ParseOptional(req.ScheduledDate)
	if err != nil {
		return nil, nil, err
	}

	m := &domain.MaintenanceRequest{
		AssetID:       asset.ID,
		OwnerID:       asset.OwnerID,
		ReportedBy:    reportedBy,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      priority,
		Category:      req.Category,
		Status:        domain.MaintenanceRequested,
		ScheduledDate: scheduled,
		EstimatedCost: req.EstimatedCost,
	}

	for attempt := 0; ; attempt++ {
		m.ID = ""
		m.TicketNumber = refnum.MaintenanceTicket(dates.Now())
		err = s.repo.Create(ctx, m)
		if err == nil {
			break
		}
		if !dberr.IsUniqueViolation(err) {
			return nil, nil, fmt.Errorf("save maintenance request: %w", err)
		}
		if attempt == 4 {
			return nil, nil, ErrTicketNumberUsed
		}
	}

	var effects outcome.Effects
	effects.Record("crm.sync_maintenance", s.crm.SyncMaintenance(ctx, m.ID))
	return m, effects, nil
}

// Update applies a partial change. Completing stamps the completion date.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.MaintenanceRequest, outcome.Effects, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updates := map[string]any{}
	if req.Status != nil {
		status := domain.MaintenanceStatus(*req.Status)
		if !status.Valid() {
			return nil, nil, ErrInvalidStatus
		}
		updates["status"] = status
		if status == domain.MaintenanceCompleted && current.CompletionDate == nil {
			updates["completion_date"] = dates.Today()
		}
	}
	if req.ScheduledDate != nil {
		d, err := dates.ParseOptional(*req.ScheduledDate)
		if err != nil {
			return nil, nil, err
		}
		updates["scheduled_date"] = d
	}
	setString(updates, "priority", req.Priority)
	setString(updates, "title", req.Title)
	setString(updates, "description", req.Description)
	setString(updates, "category", req.Category)
	setString(updates, "assigned_to", req.AssignedTo)
	setString(updates, "vendor_name", req.VendorName)
	setString(updates, "vendor_contact", req.VendorContact)
	setString(updates, "resolution_notes", req.ResolutionNotes)
	if req.EstimatedCost != nil {
		updates["estimated_cost"] = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		updates["actual_cost"] = *req.ActualCost
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, nil, err
		}
	}
	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var effects outcome.Effects
	effects.Record("crm.sync_maintenance", s.crm.SyncMaintenance(ctx, id))
	return updated, effects, nil
}

func setString(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}
