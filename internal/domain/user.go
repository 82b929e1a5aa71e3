package domain

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleMover  Role = "mover"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleMover, RoleAdmin:
		return true
	}
	return false
}

// Allowed reports whether role is one of the allowed roles. An empty
// (anonymous) role is always denied.
func Allowed(role Role, allowed ...Role) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// LandingRoute is the role-appropriate view the client navigates to after a
// confirmed booking.
func LandingRoute(role Role) string {
	switch role {
	case RoleClient:
		return "/dashboard/client"
	case RoleMover:
		return "/dashboard/mover"
	case RoleAdmin:
		return "/admin"
	}
	return "/"
}

type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSnapshot is the actor view stored on booking records and carried in
// auth tokens. Nil snapshot means anonymous.
type UserSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Snapshot() *UserSnapshot {
	return &UserSnapshot{Name: u.Name, Email: u.Email, Role: u.Role}
}
