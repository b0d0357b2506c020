package api

import (
	"time"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
)

// Request DTOs

type CreateAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EditProfileRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

type VerifyEmailRequest struct {
	Code string `json:"code" validate:"required"`
}

// Response DTOs

// User is the API-facing account shape. The password hash never leaves
// the storage layer through here.
type User struct {
	Id        domain.UserId `json:"id"`
	Email     string        `json:"email"`
	Role      string        `json:"role"`
	Verified  bool          `json:"verified"`
	CreatedAt time.Time     `json:"createdAt"`
}

func UserFromDomain(user domain.User) User {
	return User{
		Id:        user.Id,
		Email:     user.Email,
		Role:      string(user.Role),
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}

type CreateAccountResponse struct {
	Response
}

type LoginResponse struct {
	Response
	Token string `json:"token,omitempty"`
}

type UserProfileResponse struct {
	Response
	User *User `json:"user,omitempty"`
}

type EditProfileResponse struct {
	Response
}

type VerifyEmailResponse struct {
	Response
}
