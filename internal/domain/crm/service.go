package crm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"rvconsign/internal/domain"
	"rvconsign/internal/hubspot"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/outcome"
)

var bookingNumberRe = regexp.MustCompile(`BK-\d+-\d+`)

// Service pushes owners, bookings and maintenance requests to HubSpot and
// applies inbound webhook changes.
type Service struct {
	client   *hubspot.Client
	stages   *hubspot.StageMap
	repo     Repository
	maxTries int
}

func NewService(client *hubspot.Client, stages *hubspot.StageMap, repo Repository, maxTries int) *Service {
	if stages == nil {
		stages = hubspot.DefaultStageMap()
	}
	if maxTries <= 0 {
		maxTries = 5
	}
	return &Service{client: client, stages: stages, repo: repo, maxTries: maxTries}
}

func (s *Service) Enabled() bool {
	return s.client.Enabled()
}

func skipped() error {
	return fmt.Errorf("%w: hubspot not configured", outcome.ErrSkipped)
}

// SyncOwner pushes the owner contact. A failed push is queued for retry.
func (s *Service) SyncOwner(ctx context.Context, ownerID string) error {
	_, err := s.pushOwner(ctx, ownerID)
	return s.settle(ctx, domain.CRMOwner, ownerID, err)
}

// SyncBooking pushes the booking deal. A failed push is queued for retry.
func (s *Service) SyncBooking(ctx context.Context, bookingID string) error {
	_, err := s.pushBooking(ctx, bookingID)
	return s.settle(ctx, domain.CRMBooking, bookingID, err)
}

// SyncMaintenance pushes the maintenance ticket. A failed push is queued for retry.
func (s *Service) SyncMaintenance(ctx context.Context, requestID string) error {
	_, err := s.pushMaintenance(ctx, requestID)
	return s.settle(ctx, domain.CRMMaintenance, requestID, err)
}

func (s *Service) settle(ctx context.Context, entity domain.CRMEntity, id string, err error) error {
	if err == nil || errors.Is(err, outcome.ErrSkipped) || errors.Is(err, ErrEntityNotFound) {
		return err
	}
	log.Printf("crm_sync_failed entity=%s id=%s err=%v", entity, id, err)
	if qErr := s.repo.EnqueueOutbox(ctx, entity, id, err.Error()); qErr != nil {
		log.Printf("crm_outbox_enqueue_failed entity=%s id=%s err=%v", entity, id, qErr)
	}
	return err
}

// SyncEntity pushes one record on demand and reports the CRM object id.
func (s *Service) SyncEntity(ctx context.Context, entityType, id string) (*SyncResult, error) {
	entity := domain.CRMEntity(strings.TrimSpace(entityType))
	if !entity.Valid() {
		return nil, ErrInvalidEntityType
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}

	hubspotID, err := s.push(ctx, entity, id)
	if err != nil {
		return nil, err
	}
	return &SyncResult{Type: string(entity), ID: id, HubspotID: hubspotID}, nil
}

func (s *Service) push(ctx context.Context, entity domain.CRMEntity, id string) (string, error) {
	switch entity {
	case domain.CRMOwner:
		return s.pushOwner(ctx, id)
	case domain.CRMBooking:
		return s.pushBooking(ctx, id)
	case domain.CRMMaintenance:
		return s.pushMaintenance(ctx, id)
	}
	return "", ErrInvalidEntityType
}

func (s *Service) pushOwner(ctx context.Context, ownerID string) (string, error) {
	if !s.client.Enabled() {
		return "", skipped()
	}
	owner, err := s.repo.GetOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}

	email, name, phone := owner.Email, owner.ContactName, owner.Phone
	if owner.UserID != "" {
		if p, err := s.repo.GetProfile(ctx, owner.UserID); err == nil {
			if email == "" {
				email = p.Email
			}
			if name == "" {
				name = p.FullName
			}
			if phone == "" {
				phone = p.Phone
			}
		}
	}

	first, last := splitName(name)
	props := hubspot.Properties{
		"email":         email,
		"firstname":     first,
		"lastname":      last,
		"company":       owner.BusinessName,
		"phone":         phone,
		"user_role":     string(domain.RoleOwner),
		"revenue_split": formatFloat(owner.RevenueSplitPercentage),
		"contract_type": owner.ContractType,
	}

	contactID, err := s.upsertContact(ctx, owner.HubspotContactID, email, props)
	if err != nil {
		return "", err
	}
	if contactID != owner.HubspotContactID {
		if err := s.repo.SetOwnerContactID(ctx, owner.ID, contactID); err != nil {
			return "", fmt.Errorf("store contact id: %w", err)
		}
	}
	return contactID, nil
}

// upsertContact updates the known contact, else the one found by email, else creates one.
func (s *Service) upsertContact(ctx context.Context, knownID, email string, props hubspot.Properties) (string, error) {
	if knownID != "" {
		obj, err := s.client.UpdateContact(ctx, knownID, props)
		if err == nil {
			return obj.ID, nil
		}
		var apiErr *hubspot.APIError
		if !errors.As(err, &apiErr) || !apiErr.NotFound() {
			return "", err
		}
	}

	if email != "" {
		found, err := s.client.SearchContactByEmail(ctx, email)
		if err != nil {
			return "", err
		}
		if found != nil {
			if _, err := s.client.UpdateContact(ctx, found.ID, props); err != nil {
				return "", err
			}
			return found.ID, nil
		}
	}

	obj, err := s.client.CreateContact(ctx, props)
	if err != nil {
		return "", err
	}
	return obj.ID, nil
}

func (s *Service) pushBooking(ctx context.Context, bookingID string) (string, error) {
	if !s.client.Enabled() {
		return "", skipped()
	}
	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}

	assetName, rvType := "RV", ""
	if a, err := s.repo.GetAsset(ctx, b.AssetID); err == nil {
		assetName, rvType = a.Name, a.RVType
	}

	props := hubspot.Properties{
		"dealname":      fmt.Sprintf("%s - %s", b.BookingNumber, assetName),
		"amount":        formatFloat(b.TotalAmount),
		"dealstage":     s.stages.DealStage(string(b.Status)),
		"pipeline":      "default",
		"closedate":     dates.Format(b.EndDate),
		"rv_type":       rvType,
		"rental_nights": strconv.Itoa(b.TotalNights),
	}

	dealID := b.HubspotDealID
	if dealID != "" {
		if _, err := s.client.UpdateDeal(ctx, dealID, props); err != nil {
			var apiErr *hubspot.APIError
			if !errors.As(err, &apiErr) || !apiErr.NotFound() {
				return "", err
			}
			dealID = ""
		}
	}
	if dealID == "" {
		obj, err := s.client.CreateDeal(ctx, props)
		if err != nil {
			return "", err
		}
		dealID = obj.ID
		if err := s.repo.SetBookingDealID(ctx, b.ID, dealID); err != nil {
			return "", fmt.Errorf("store deal id: %w", err)
		}
	}

	if b.RenterID != "" {
		if err := s.associateRenter(ctx, dealID, b.RenterID); err != nil {
			return "", err
		}
	}
	return dealID, nil
}

func (s *Service) associateRenter(ctx context.Context, dealID, renterID string) error {
	p, err := s.repo.ProfileForRenter(ctx, renterID)
	if errors.Is(err, ErrEntityNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	contactID := p.HubspotContactID
	if contactID == "" {
		first, last := splitName(p.FullName)
		contactID, err = s.upsertContact(ctx, "", p.Email, hubspot.Properties{
			"email":     p.Email,
			"firstname": first,
			"lastname":  last,
			"phone":     p.Phone,
			"user_role": string(domain.RoleRenter),
		})
		if err != nil {
			return err
		}
	}
	return s.client.AssociateDealToContact(ctx, dealID, contactID)
}

func (s *Service) pushMaintenance(ctx context.Context, requestID string) (string, error) {
	if !s.client.Enabled() {
		return "", skipped()
	}
	m, err := s.repo.GetMaintenance(ctx, requestID)
	if err != nil {
		return "", err
	}

	assetName := ""
	if a, err := s.repo.GetAsset(ctx, m.AssetID); err == nil {
		assetName = a.Name
	}
	priority := strings.ToUpper(strings.TrimSpace(m.Priority))
	if priority == "" {
		priority = "MEDIUM"
	}

	props := hubspot.Properties{
		"subject":            m.Title,
		"content":            m.Description,
		"hs_pipeline":        "0",
		"hs_pipeline_stage":  s.stages.TicketStage(string(m.Status)),
		"hs_ticket_priority": priority,
		"asset_name":         assetName,
	}
	if m.EstimatedCost != nil {
		props["estimated_cost"] = formatFloat(*m.EstimatedCost)
	}

	if m.HubspotTicketID != "" {
		_, err := s.client.UpdateTicket(ctx, m.HubspotTicketID, props)
		if err == nil {
			return m.HubspotTicketID, nil
		}
		var apiErr *hubspot.APIError
		if !errors.As(err, &apiErr) || !apiErr.NotFound() {
			return "", err
		}
	}

	obj, err := s.client.CreateTicket(ctx, props)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetMaintenanceTicketID(ctx, m.ID, obj.ID); err != nil {
		return "", fmt.Errorf("store ticket id: %w", err)
	}
	return obj.ID, nil
}

// ==================== Onboarding ====================

// CreateOnboardingContact finds or creates the contact for a new owner lead.
func (s *Service) CreateOnboardingContact(ctx context.Context, email, firstName, lastName, phone, company string) (string, error) {
	if !s.client.Enabled() {
		return "", skipped()
	}
	return s.upsertContact(ctx, "", email, hubspot.Properties{
		"email":          email,
		"firstname":      firstName,
		"lastname":       lastName,
		"phone":          phone,
		"company":        company,
		"user_role":      string(domain.RoleOwner),
		"lifecyclestage": "lead",
	})
}

// CreateOnboardingDeal opens the onboarding deal and links it to the contact.
func (s *Service) CreateOnboardingDeal(ctx context.Context, contactID, dealName string, amount float64) error {
	if !s.client.Enabled() {
		return skipped()
	}
	deal, err := s.client.CreateDeal(ctx, hubspot.Properties{
		"dealname":  dealName,
		"amount":    formatFloat(amount),
		"dealstage": s.stages.DefaultDealStage,
		"pipeline":  "default",
	})
	if err != nil {
		return err
	}
	if contactID == "" {
		return nil
	}
	return s.client.AssociateDealToContact(ctx, deal.ID, contactID)
}

// ==================== Bulk + outbox ====================

// BulkSync pushes every owner, every booking that is neither cancelled nor
// completed and every open maintenance request.
func (s *Service) BulkSync(ctx context.Context) (*BulkResult, error) {
	if !s.client.Enabled() {
		return nil, skipped()
	}

	res := &BulkResult{}
	steps := []struct {
		entity domain.CRMEntity
		list   func(context.Context) ([]string, error)
		counts *Counts
	}{
		{domain.CRMOwner, s.repo.ListOwnerIDs, &res.Owners},
		{domain.CRMBooking, s.repo.ListActiveBookingIDs, &res.Bookings},
		{domain.CRMMaintenance, s.repo.ListOpenMaintenanceIDs, &res.Maintenance},
	}

	for _, step := range steps {
		ids, err := step.list(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", step.entity, err)
		}
		for _, id := range ids {
			_, err := s.push(ctx, step.entity, id)
			if err := s.settle(ctx, step.entity, id, err); err != nil {
				step.counts.Failed++
				continue
			}
			step.counts.Synced++
		}
	}

	log.Printf("crm_bulk_sync owners=%d/%d bookings=%d/%d maintenance=%d/%d",
		res.Owners.Synced, res.Owners.Failed,
		res.Bookings.Synced, res.Bookings.Failed,
		res.Maintenance.Synced, res.Maintenance.Failed)
	return res, nil
}

// RetryOutbox replays queued pushes. Rows whose entity no longer exists are
// parked immediately.
func (s *Service) RetryOutbox(ctx context.Context) (*RetryResult, error) {
	if !s.client.Enabled() {
		return nil, skipped()
	}
	rows, err := s.repo.PendingOutbox(ctx, 100)
	if err != nil {
		return nil, err
	}

	res := &RetryResult{}
	for _, row := range rows {
		res.Attempted++
		_, pushErr := s.push(ctx, row.EntityType, row.EntityID)
		if pushErr == nil {
			if err := s.repo.MarkOutboxDone(ctx, row.ID); err != nil {
				return res, err
			}
			res.Succeeded++
			continue
		}

		maxTries := s.maxTries
		if errors.Is(pushErr, ErrEntityNotFound) {
			maxTries = 1
		}
		dead, err := s.repo.MarkOutboxFailed(ctx, row.ID, pushErr.Error(), maxTries)
		if err != nil {
			return res, err
		}
		res.Failed++
		if dead {
			res.Dead++
		}
	}
	return res, nil
}

// ==================== Webhook ====================

// HandleWebhook applies CRM-side changes to local records. Each event is
// processed independently.
func (s *Service) HandleWebhook(ctx context.Context, events []hubspot.Event) *WebhookResult {
	res := &WebhookResult{}
	for _, ev := range events {
		var err error
		switch ev.ObjectKind() {
		case "contact":
			err = s.applyContact(ctx, ev)
		case "deal":
			err = s.applyDeal(ctx, ev)
		case "ticket":
			err = s.applyTicket(ctx, ev)
		default:
			res.Ignored++
			continue
		}
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("%s %d: %v", ev.SubscriptionType, ev.ObjectID, err))
			log.Printf("crm_webhook_failed type=%s object_id=%d err=%v", ev.SubscriptionType, ev.ObjectID, err)
			continue
		}
		res.Processed++
	}
	return res
}

func (s *Service) applyContact(ctx context.Context, ev hubspot.Event) error {
	obj, err := s.client.GetContact(ctx, strconv.FormatInt(ev.ObjectID, 10))
	if err != nil {
		return err
	}
	email := obj.Properties["email"]
	if email == "" {
		return fmt.Errorf("contact %s has no email", obj.ID)
	}
	p, err := s.repo.ProfileByEmail(ctx, email)
	if err != nil {
		return err
	}

	fullName := strings.TrimSpace(obj.Properties["firstname"] + " " + obj.Properties["lastname"])
	if err := s.repo.UpdateProfileContact(ctx, p.ID, fullName, obj.Properties["phone"]); err != nil {
		return err
	}
	if p.Role == domain.RoleOwner && obj.Properties["company"] != "" {
		return s.repo.UpdateOwnerBusinessName(ctx, p.ID, obj.Properties["company"])
	}
	return nil
}

func (s *Service) applyDeal(ctx context.Context, ev hubspot.Event) error {
	obj, err := s.client.GetDeal(ctx, strconv.FormatInt(ev.ObjectID, 10))
	if err != nil {
		return err
	}
	number := bookingNumberRe.FindString(obj.Properties["dealname"])
	if number == "" {
		return ErrNoBookingNumber
	}
	b, err := s.repo.BookingByNumber(ctx, number)
	if err != nil {
		return err
	}
	status := domain.BookingStatus(s.stages.BookingStatus(obj.Properties["dealstage"]))
	return s.repo.SetBookingStatus(ctx, b.ID, status)
}

func (s *Service) applyTicket(ctx context.Context, ev hubspot.Event) error {
	ticketID := strconv.FormatInt(ev.ObjectID, 10)
	obj, err := s.client.GetTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	m, err := s.repo.MaintenanceForTicket(ctx, ticketID, obj.Properties["subject"])
	if err != nil {
		return err
	}
	status := domain.MaintenanceStatus(s.stages.MaintenanceStatus(obj.Properties["hs_pipeline_stage"]))
	return s.repo.SetMaintenanceStatus(ctx, m.ID, status)
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// PurgeOutbox drops settled outbox rows: done rows older than doneAge and
// parked rows older than deadAge. Pending rows are never touched.
func (s *Service) PurgeOutbox(ctx context.Context, doneAge, deadAge time.Duration) (*PurgeResult, error) {
	now := dates.Now()
	done, err := s.repo.PurgeOutbox(ctx, domain.OutboxDone, now.Add(-doneAge))
	if err != nil {
		return nil, fmt.Errorf("purge done rows: %w", err)
	}
	dead, err := s.repo.PurgeOutbox(ctx, domain.OutboxDead, now.Add(-deadAge))
	if err != nil {
		return nil, fmt.Errorf("purge dead rows: %w", err)
	}
	return &PurgeResult{Done: done, Dead: dead}, nil
}
