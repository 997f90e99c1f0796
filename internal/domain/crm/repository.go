package crm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
)

// Repository reads the records pushed to the CRM and writes back CRM ids and
// inbound changes.
type Repository interface {
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	GetMaintenance(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	ProfileForRenter(ctx context.Context, renterID string) (*domain.Profile, error)

	SetOwnerContactID(ctx context.Context, ownerID, contactID string) error
	SetBookingDealID(ctx context.Context, bookingID, dealID string) error
	SetMaintenanceTicketID(ctx context.Context, requestID, ticketID string) error

	ListOwnerIDs(ctx context.Context) ([]string, error)
	ListActiveBookingIDs(ctx context.Context) ([]string, error)
	ListOpenMaintenanceIDs(ctx context.Context) ([]string, error)

	ProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)
	UpdateProfileContact(ctx context.Context, profileID, fullName, phone string) error
	UpdateOwnerBusinessName(ctx context.Context, userID, businessName string) error
	BookingByNumber(ctx context.Context, number string) (*domain.Booking, error)
	SetBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
	MaintenanceForTicket(ctx context.Context, ticketID, subject string) (*domain.MaintenanceRequest, error)
	SetMaintenanceStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus) error

	EnqueueOutbox(ctx context.Context, entity domain.CRMEntity, entityID, lastError string) error
	PendingOutbox(ctx context.Context, limit int) ([]domain.CRMOutbox, error)
	MarkOutboxDone(ctx context.Context, id string) error
	MarkOutboxFailed(ctx context.Context, id, lastError string, maxTries int) (dead bool, err error)
	PurgeOutbox(ctx context.Context, status string, before time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) first(ctx context.Context, dst any, query string, args ...any) error {
	err := r.db.WithContext(ctx).Where(query, args...).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntityNotFound
	}
	return err
}

func (r *repository) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	var o domain.Owner
	if err := r.first(ctx, &o, "id = ?", id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.first(ctx, &b, "id = ?", id); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetMaintenance(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	var m domain.MaintenanceRequest
	if err := r.first(ctx, &m, "id = ?", id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	var a domain.Asset
	if err := r.first(ctx, &a, "id = ?", id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.first(ctx, &p, "id = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ProfileForRenter(ctx context.Context, renterID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).
		Joins("JOIN renters ON renters.user_id = profiles.id").
		Where("renters.id = ?", renterID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) SetOwnerContactID(ctx context.Context, ownerID, contactID string) error {
	return r.db.WithContext(ctx).Model(&domain.Owner{}).Where("id = ?", ownerID).
		Update("hubspot_contact_id", contactID).Error
}

func (r *repository) SetBookingDealID(ctx context.Context, bookingID, dealID string) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", bookingID).
		Update("hubspot_deal_id", dealID).Error
}

func (r *repository) SetMaintenanceTicketID(ctx context.Context, requestID, ticketID string) error {
	return r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{}).Where("id = ?", requestID).
		Update("hubspot_ticket_id", ticketID).Error
}

func (r *repository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.Owner{}).Order("created_at").Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) ListActiveBookingIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status NOT IN ?", []domain.BookingStatus{domain.BookingCancelled, domain.BookingCompleted}).
		Order("created_at").Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) ListOpenMaintenanceIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{}).
		Where("status IN ?", domain.OpenMaintenanceStatuses).
		Order("created_at").Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) ProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.first(ctx, &p, "LOWER(email) = LOWER(?)", email); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateProfileContact(ctx context.Context, profileID, fullName, phone string) error {
	updates := map[string]any{}
	if fullName != "" {
		updates["full_name"] = fullName
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&domain.Profile{}).Where("id = ?", profileID).Updates(updates).Error
}

func (r *repository) UpdateOwnerBusinessName(ctx context.Context, userID, businessName string) error {
	return r.db.WithContext(ctx).Model(&domain.Owner{}).Where("user_id = ?", userID).
		Update("business_name", businessName).Error
}

func (r *repository) BookingByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.first(ctx, &b, "booking_number = ?", number); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) SetBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Booking{}).Where("id = ?", bookingID).Update("status", status).Error; err != nil {
			return err
		}
		if status != domain.BookingCompleted {
			return nil
		}
		return tx.Model(&domain.Transaction{}).
			Where("booking_id = ? AND transaction_type = ?", bookingID, domain.TxRentalIncome).
			Update("status", domain.TxStatusCompleted).Error
	})
}

func (r *repository) MaintenanceForTicket(ctx context.Context, ticketID, subject string) (*domain.MaintenanceRequest, error) {
	var m domain.MaintenanceRequest
	err := r.first(ctx, &m, "hubspot_ticket_id = ?", ticketID)
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, ErrEntityNotFound) || subject == "" {
		return nil, err
	}
	if err := r.first(ctx, &m, "title = ?", subject); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) SetMaintenanceStatus(ctx context.Context, requestID string, status domain.MaintenanceStatus) error {
	updates := map[string]any{"status": status}
	if status == domain.MaintenanceCompleted {
		updates["completion_date"] = dates.Today()
	}
	return r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{}).Where("id = ?", requestID).Updates(updates).Error
}

// ==================== Outbox ====================

// EnqueueOutbox inserts or re-arms the outbox row for an entity. Re-arming a
// done or dead row starts its attempt count over; a row still pending keeps it.
func (r *repository) EnqueueOutbox(ctx context.Context, entity domain.CRMEntity, entityID, lastError string) error {
	row := domain.CRMOutbox{
		EntityType: entity,
		EntityID:   entityID,
		Status:     domain.OutboxPending,
		LastError:  lastError,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entity_type"}, {Name: "entity_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"attempts": gorm.Expr("CASE WHEN crm_outbox.status = ? THEN crm_outbox.attempts ELSE 0 END", domain.OutboxPending),
			"status":   domain.OutboxPending,
			"last_error": lastError,
			"updated_at": dates.Now(),
		}),
	}).Create(&row).Error
}

func (r *repository) PendingOutbox(ctx context.Context, limit int) ([]domain.CRMOutbox, error) {
	var rows []domain.CRMOutbox
	q := r.db.WithContext(ctx).Where("status = ?", domain.OutboxPending).Order("updated_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) MarkOutboxDone(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&domain.CRMOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": domain.OutboxDone, "last_error": ""}).Error
}

// MarkOutboxFailed bumps the attempt counter and parks the row once maxTries is reached.
func (r *repository) MarkOutboxFailed(ctx context.Context, id, lastError string, maxTries int) (bool, error) {
	var dead bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row domain.CRMOutbox
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		row.Attempts++
		if maxTries > 0 && row.Attempts >= maxTries {
			row.Status = domain.OutboxDead
			dead = true
		}
		return tx.Model(&domain.CRMOutbox{}).Where("id = ?", id).Updates(map[string]any{
			"attempts":   row.Attempts,
			"last_error": lastError,
			"status":     row.Status,
		}).Error
	})
	return dead, err
}

// PurgeOutbox deletes rows in status last touched before the cutoff.
func (r *repository) PurgeOutbox(ctx context.Context, status string, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", status, before).
		Delete(&domain.CRMOutbox{})
	return res.RowsAffected, res.Error
}
