package domain

import "time"

type Role string

const (
	RoleClient   Role = "client"
	RoleOwner    Role = "owner"
	RoleDelivery Role = "delivery"
)

// Valid reports whether r is one of the closed set of account roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	}
	return false
}

type User struct {
	Id        UserId
	Email     Email
	PassHash  string
	Role      Role
	Verified  bool
	CreatedAt time.Time
}

// ProfileUpdate carries the optional fields of an edit-profile request.
// Nil means "leave unchanged". Password is plaintext here and must be
// hashed before it reaches storage.
type ProfileUpdate struct {
	Email    *Email
	Password *Password
	Role     *Role
}
