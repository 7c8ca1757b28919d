package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound = errors.New("user not found")
)

// UserID is the stable identity a chat transport attaches to every inbound
// message (the Telegram user ID for the Telegram transport).
type UserID int64

func (id UserID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// Role is an access tier. Roles form a total order: user < commander < admin.
type Role string

const (
	RoleUser      Role = "user"
	RoleCommander Role = "commander"
	RoleAdmin     Role = "admin"
)

// Level returns the position of the role in the hierarchy. Unknown roles map
// to 0 and therefore never satisfy any requirement.
func (r Role) Level() int {
	switch r {
	case RoleUser:
		return 1
	case RoleCommander:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// User represents a registered chat user and their role.
type User struct {
	ID       UserID `json:"-"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// NewUser returns a new User with the given fields.
func NewUser(id UserID, role Role, username string) *User {
	return &User{ID: id, Role: role, Username: username}
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	// Get returns the user with the given ID, or ErrUserNotFound.
	Get(ctx context.Context, id UserID) (*User, error)
	// Register stores the user if no user with the same ID exists yet.
	// Registering an existing ID is a no-op; an already assigned role is
	// never changed.
	Register(ctx context.Context, user *User) error
}

// AccessService resolves roles and gates actions on them.
type AccessService interface {
	// ResolveRole returns the caller's role, auto-registering unknown
	// identities with RoleUser. It never fails: storage trouble degrades to
	// RoleUser.
	ResolveRole(ctx context.Context, id UserID) Role
	// Authorize reports whether the caller's role satisfies the required
	// minimum role.
	Authorize(ctx context.Context, id UserID, required Role) bool
}
