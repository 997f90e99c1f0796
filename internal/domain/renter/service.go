package renter

import (
	"context"

	"rvconsign/internal/pkg/dates"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	views, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []View{}
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	return s.repo.Get(ctx, id)
}

// Update changes licence, address and emergency contact details.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*View, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for column, v := range map[string]*string{
		"drivers_license_number":  req.DriversLicenseNumber,
		"drivers_license_state":   req.DriversLicenseState,
		"address":                 req.Address,
		"city":                    req.City,
		"state":                   req.State,
		"zip_code":                req.ZipCode,
		"emergency_contact_name":  req.EmergencyContactName,
		"emergency_contact_phone": req.EmergencyContactPhone,
	} {
		if v != nil {
			updates[column] = *v
		}
	}
	for column, v := range map[string]*string{
		"drivers_license_expiry": req.DriversLicenseExpiry,
		"date_of_birth":          req.DateOfBirth,
	} {
		if v == nil {
			continue
		}
		d, err := dates.ParseOptional(*v)
		if err != nil {
			return nil, err
		}
		updates[column] = d
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, id)
}
