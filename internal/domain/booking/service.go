package booking

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/dberr"
	"rvconsign/internal/pkg/outcome"
	"rvconsign/internal/pkg/pricing"
	"rvconsign/internal/pkg/refnum"
)

const numberAttempts = 5

// CRMSyncer pushes a booking to the CRM as a deal.
type CRMSyncer interface {
	SyncBooking(ctx context.Context, bookingID string) error
}

type Service struct {
	repo Repository
	crm  CRMSyncer
}

func NewService(repo Repository, crm CRMSyncer) *Service {
	return &Service{repo: repo, crm: crm}
}

func (s *Service) List(ctx context.Context, f Filter) ([]View, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.Get(ctx, id)
}

// Create prices the stay from the asset and records the booking together with
// its rental income row. A non-empty scopeOwnerID limits the asset to that
// owner's fleet.
func (s *Service) Create(ctx context.Context, req CreateRequest, scopeOwnerID string) (*domain.Booking, outcome.Effects, error) {
	start, err := dates.Parse(req.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := dates.Parse(req.EndDate)
	if err != nil {
		return nil, nil, err
	}
	if !end.After(start) {
		return nil, nil, ErrInvalidDates
	}

	status := domain.BookingInquiry
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
		if !status.Valid() {
			return nil, nil, ErrInvalidStatus
		}
	}

	asset, err := s.repo.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if scopeOwnerID != "" && asset.OwnerID != scopeOwnerID {
		return nil, nil, ErrAssetNotFound
	}

	quote := pricing.QuoteBooking(asset.BasePricePerNight, pricing.Nights(start, end), asset.CleaningFee)
	b := &domain.Booking{
		AssetID:         asset.ID,
		RenterID:        req.RenterID,
		OwnerID:         asset.OwnerID,
		StartDate:       start,
		EndDate:         end,
		TotalNights:     quote.Nights,
		NightlyRate:     quote.NightlyRate,
		Subtotal:        quote.Subtotal,
		CleaningFee:     quote.CleaningFee,
		SecurityDeposit: asset.SecurityDeposit,
		PlatformFee:     quote.PlatformFee,
		TotalAmount:     quote.Total,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
		InternalNotes:   req.InternalNotes,
	}

	if err := s.insert(ctx, b); err != nil {
		return nil, nil, err
	}

	var effects outcome.Effects
	effects.Record("crm.sync_booking", s.crm.SyncBooking(ctx, b.ID))
	return b, effects, nil
}

// insert retries when the random booking number collides.
func (s *Service) insert(ctx context.Context, b *domain.Booking) error {
	for i := 0; i < numberAttempts; i++ {
		b.ID = ""
		b.BookingNumber = refnum.Booking(dates.Now())
		err := s.repo.CreateWithIncome(ctx, b)
		if err == nil {
			return nil
		}
		if !dberr.IsUniqueViolation(err) {
			return fmt.Errorf("create booking: %w", err)
		}
		log.Printf("booking_number_collision number=%s attempt=%d", b.BookingNumber, i+1)
	}
	return ErrNumberExhausted
}

// Update applies a partial update. Status transitions are not constrained.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Booking, outcome.Effects, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil, ErrMissingID
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.buildUpdates(current, req)
	if err != nil {
		return nil, nil, err
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
	if updated.Status != current.Status {
		effects.Record("crm.sync_booking", s.crm.SyncBooking(ctx, id))
	}
	return updated, effects, nil
}

func (s *Service) buildUpdates(current *domain.Booking, req UpdateRequest) (map[string]any, error) {
	updates := map[string]any{}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if req.RenterID != nil {
		updates["renter_id"] = *req.RenterID
	}
	if req.SecurityDeposit != nil {
		updates["security_deposit"] = *req.SecurityDeposit
	}
	if req.SpecialRequests != nil {
		updates["special_requests"] = *req.SpecialRequests
	}
	if req.InternalNotes != nil {
		updates["internal_notes"] = *req.InternalNotes
	}
	if req.CheckinMileage != nil {
		updates["checkin_mileage"] = *req.CheckinMileage
	}
	if req.CheckoutMileage != nil {
		updates["checkout_mileage"] = *req.CheckoutMileage
	}
	for col, raw := range map[string]*string{
		"actual_checkin_time":  req.ActualCheckinTime,
		"actual_checkout_time": req.ActualCheckoutTime,
	} {
		if raw == nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			return nil, ErrInvalidTime
		}
		updates[col] = t.UTC()
	}

	if req.StartDate != nil || req.EndDate != nil {
		start, end := current.StartDate, current.EndDate
		var err error
		if req.StartDate != nil {
			if start, err = dates.Parse(*req.StartDate); err != nil {
				return nil, err
			}
		}
		if req.EndDate != nil {
			if end, err = dates.Parse(*req.EndDate); err != nil {
				return nil, err
			}
		}
		if !end.After(start) {
			return nil, ErrInvalidDates
		}

		quote := pricing.QuoteBooking(current.NightlyRate, pricing.Nights(start, end), current.CleaningFee)
		updates["start_date"] = start
		updates["end_date"] = end
		updates["total_nights"] = quote.Nights
		updates["subtotal"] = quote.Subtotal
		updates["platform_fee"] = quote.PlatformFee
		updates["total_amount"] = quote.Total
	}

	return updates, nil
}

// Cancel is the soft delete: the row stays with status cancelled and its
// ledger row is left as is.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Booking, outcome.Effects, error) {
	cancelled := string(domain.BookingCancelled)
	return s.Update(ctx, id, UpdateRequest{Status: &cancelled})
}
