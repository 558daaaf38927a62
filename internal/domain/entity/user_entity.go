package entity

import (
	"time"
)

// UserType is the coarse-grained permission tier attached to a user.
type UserType string

const (
	UserTypeSudo   UserType = "sudo"
	UserTypeAdmin  UserType = "admin"
	UserTypeAudit  UserType = "audit"
	UserTypeClient UserType = "client"
)

// ParseUserType returns the matching UserType, or false when the value is
// not one of the known roles.
func ParseUserType(s string) (UserType, bool) {
	switch UserType(s) {
	case UserTypeSudo, UserTypeAdmin, UserTypeAudit, UserTypeClient:
		return UserType(s), true
	}
	return "", false
}

func (t UserType) Valid() bool {
	_, ok := ParseUserType(string(t))
	return ok
}

// UserStatus controls whether a user may log in. Only active users can.
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
	UserStatusBlocked     UserStatus = "blocked"
)

func ParseUserStatus(s string) (UserStatus, bool) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusDeactivated, UserStatusBlocked:
		return UserStatus(s), true
	}
	return "", false
}

func (s UserStatus) Valid() bool {
	_, ok := ParseUserStatus(string(s))
	return ok
}

// User is the aggregate root for the auth domain.
// PasswordHash holds the bcrypt digest, never the plaintext.
type User struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	PasswordHash    string
	Type            UserType
	Status          UserStatus
	IsEmailVerified bool
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
