package auth

import "rvconsign/internal/domain"

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is returned by sign-up and sign-in.
type Session struct {
	Token   string          `json:"token"`
	Profile *domain.Profile `json:"profile"`
}

// Me is the session profile with the account row linked to it.
type Me struct {
	Profile *domain.Profile `json:"profile"`
	Owner   *domain.Owner   `json:"owner,omitempty"`
	Renter  *domain.Renter  `json:"renter,omitempty"`
}
