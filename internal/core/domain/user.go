package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrSelfDeleteOnly     = errors.New("user can only delete himself")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AnonymousUserID marks the non-persisted sentinel for unauthenticated callers.
const AnonymousUserID = -1

// User models an account in the community. Exactly one role is owned per user.
type User struct {
	ID           int64     `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email" validate:"required,min=10,max=100,email"`
	Name         string    `json:"name" bson:"name" validate:"required,min=4,max=30"`
	PasswordHash string    `json:"-" bson:"password_hash,omitempty"`
	Confirmed    bool      `json:"confirmed" bson:"confirmed"`
	Location     string    `json:"location" bson:"location"`
	AboutMe      string    `json:"aboutMe" bson:"about_me"`
	Avatar       string    `json:"avatar" bson:"avatar"`
	Role         Role      `json:"role" bson:"role"`
	Posts        []Post    `json:"posts,omitempty" bson:"-"`
	MemberSince  time.Time `json:"memberSince" bson:"member_since"`
	LastSeen     time.Time `json:"lastSeen" bson:"last_seen"`
}

// NewUser constructs an unpersisted user. Validation and persistence are
// separate, explicit steps taken by the caller.
func NewUser(email, name string, role Role) User {
	return User{Email: email, Name: name, Role: role}
}

// NewAnonymousUser builds the sentinel representing an unauthenticated caller.
// It is never persisted and fails every permission check.
func NewAnonymousUser() User {
	return User{
		ID:   AnonymousUserID,
		Name: "anonymousUser",
		Role: GetRole(RoleNameAnonymous),
	}
}

// Can reports whether the user holds perm. The anonymous sentinel is denied
// unconditionally, regardless of its role's mask.
func (u User) Can(perm Permission) bool {
	if u.ID == AnonymousUserID {
		return false
	}
	return HasPermission(u.Role, perm)
}

// IsAdministrator reports whether the user holds the admin permission.
func (u User) IsAdministrator() bool {
	return u.Can(PermAdmin)
}
