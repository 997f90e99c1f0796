package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rvconsign/internal/domain"
	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/dberr"
	"rvconsign/internal/pkg/jwt"
)

type Service struct {
	repo Repository
	jwt  *jwt.Service
}

func NewService(repo Repository, jwtService *jwt.Service) *Service {
	return &Service{repo: repo, jwt: jwtService}
}

// SignUp creates the profile and, for owners and renters, the account row
// that scopes their data.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role == "" {
		role = domain.RoleRenter
	}
	switch role {
	case domain.RoleOwner, domain.RoleRenter:
	case domain.RoleManager, domain.RoleAdmin:
		return nil, ErrRoleNotAllowed
	default:
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := &domain.Profile{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		Role:         role,
	}

	var (
		owner  *domain.Owner
		renter *domain.Renter
	)
	if role == domain.RoleOwner {
		owner = &domain.Owner{
			BusinessName:           p.FullName,
			ContactName:            p.FullName,
			Email:                  p.Email,
			Phone:                  p.Phone,
			RevenueSplitPercentage: domain.DefaultRevenueSplitPercentage,
			PlatformFeePercentage:  domain.DefaultPlatformFeePercentage,
			ContractType:           domain.DefaultContractType,
			Status:                 domain.OwnerPendingApproval,
		}
	} else {
		renter = &domain.Renter{}
	}

	if err := s.repo.CreateAccount(ctx, p, owner, renter); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	log.Printf("signup user_id=%s role=%s", p.ID, p.Role)

	return s.issue(p)
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	p, err := s.repo.ProfileByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(p)
}

func (s *Service) issue(p *domain.Profile) (*Session, error) {
	token, err := s.jwt.GenerateToken(p.ID, string(p.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, Profile: p}, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*Me, error) {
	p, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	me := &Me{Profile: p}

	switch p.Role {
	case domain.RoleOwner:
		me.Owner, err = s.repo.OwnerForUser(ctx, p.ID)
	case domain.RoleRenter:
		me.Renter, err = s.repo.RenterForUser(ctx, p.ID)
	}
	if err != nil && !errors.Is(err, middleware.ErrNoAccount) {
		return nil, err
	}
	return me, nil
}
