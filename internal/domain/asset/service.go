package asset

import (
	"context"
	"fmt"
	"log"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
	"rvconsign/internal/pkg/outcome"
)

// CRMSyncer re-pushes the owner contact after their fleet changes.
type CRMSyncer interface {
	SyncOwner(ctx context.Context, ownerID string) error
}

type Service struct {
	repo Repository
	crm  CRMSyncer
}

func NewService(repo Repository, crm CRMSyncer) *Service {
	return &Service{repo: repo, crm: crm}
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Asset, error) {
	assets, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Asset, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Asset, outcome.Effects, error) {
	ok, err := s.repo.OwnerExists(ctx, req.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrOwnerNotFound
	}

	status := domain.AssetPendingApproval
	if req.Status != "" {
		status = domain.AssetStatus(req.Status)
		if !status.Valid() {
			return nil, nil, ErrInvalidStatus
		}
	}
	insurance, err := dates.ParseOptional(req.InsuranceExpiryDate)
	if err != nil {
		return nil, nil, err
	}
	registration, err := dates.ParseOptional(req.RegistrationExpiryDate)
	if err != nil {
		return nil, nil, err
	}

	a := &domain.Asset{
		OwnerID:                req.OwnerID,
		Name:                   req.Name,
		Description:            req.Description,
		Status:                 status,
		Year:                   req.Year,
		Make:                   req.Make,
		Model:                  req.Model,
		VIN:                    req.VIN,
		LicensePlate:           req.LicensePlate,
		RVType:                 req.RVType,
		LengthFeet:             req.LengthFeet,
		Sleeps:                 req.Sleeps,
		FuelType:               req.FuelType,
		Mileage:                req.Mileage,
		Amenities:              req.Amenities,
		StorageLocation:        req.StorageLocation,
		City:                   req.City,
		State:                  req.State,
		ZipCode:                req.ZipCode,
		BasePricePerNight:      req.BasePricePerNight,
		CleaningFee:            floatOr(req.CleaningFee, domain.DefaultCleaningFee),
		SecurityDeposit:        floatOr(req.SecurityDeposit, domain.DefaultSecurityDeposit),
		MinimumRentalNights:    domain.DefaultMinimumRentalNights,
		InsurancePolicyNumber:  req.InsurancePolicyNumber,
		InsuranceExpiryDate:    insurance,
		RegistrationNumber:     req.RegistrationNumber,
		RegistrationExpiryDate: registration,
		PrimaryImageURL:        req.PrimaryImageURL,
		ImageURLs:              req.ImageURLs,
	}
	if req.MinimumRentalNights != nil {
		a.MinimumRentalNights = *req.MinimumRentalNights
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, nil, fmt.Errorf("create asset: %w", err)
	}
	log.Printf("asset_created asset_id=%s owner_id=%s", a.ID, a.OwnerID)

	var effects outcome.Effects
	effects.Record("crm.sync_owner", s.crm.SyncOwner(ctx, a.OwnerID))
	return a, effects, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Asset, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(a, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("update asset: %w", err)
	}
	return a, nil
}

func apply(a *domain.Asset, req UpdateRequest) error {
	if req.Status != nil {
		st := domain.AssetStatus(*req.Status)
		if !st.Valid() {
			return ErrInvalidStatus
		}
		a.Status = st
	}
	if req.InsuranceExpiryDate != nil {
		d, err := dates.ParseOptional(*req.InsuranceExpiryDate)
		if err != nil {
			return err
		}
		a.InsuranceExpiryDate = d
	}
	if req.RegistrationExpiryDate != nil {
		d, err := dates.ParseOptional(*req.RegistrationExpiryDate)
		if err != nil {
			return err
		}
		a.RegistrationExpiryDate = d
	}

	setString(&a.Name, req.Name)
	setString(&a.Description, req.Description)
	setString(&a.Make, req.Make)
	setString(&a.Model, req.Model)
	setString(&a.VIN, req.VIN)
	setString(&a.LicensePlate, req.LicensePlate)
	setString(&a.RVType, req.RVType)
	setString(&a.FuelType, req.FuelType)
	setString(&a.StorageLocation, req.StorageLocation)
	setString(&a.City, req.City)
	setString(&a.State, req.State)
	setString(&a.ZipCode, req.ZipCode)
	setString(&a.InsurancePolicyNumber, req.InsurancePolicyNumber)
	setString(&a.RegistrationNumber, req.RegistrationNumber)
	setString(&a.PrimaryImageURL, req.PrimaryImageURL)

	if req.Year != nil {
		a.Year = *req.Year
	}
	if req.Sleeps != nil {
		a.Sleeps = *req.Sleeps
	}
	if req.Mileage != nil {
		a.Mileage = *req.Mileage
	}
	if req.MinimumRentalNights != nil {
		a.MinimumRentalNights = *req.MinimumRentalNights
	}
	if req.LengthFeet != nil {
		a.LengthFeet = *req.LengthFeet
	}
	if req.BasePricePerNight != nil {
		a.BasePricePerNight = *req.BasePricePerNight
	}
	if req.CleaningFee != nil {
		a.CleaningFee = *req.CleaningFee
	}
	if req.SecurityDeposit != nil {
		a.SecurityDeposit = *req.SecurityDeposit
	}
	if req.Amenities != nil {
		a.Amenities = *req.Amenities
	}
	if req.ImageURLs != nil {
		a.ImageURLs = *req.ImageURLs
	}
	return nil
}

// Delete hard-deletes the asset.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("asset_deleted asset_id=%s", id)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
