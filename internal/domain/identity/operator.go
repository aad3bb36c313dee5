package identity

import (
	"context"

	"github.com/google/uuid"
)

// Role is the closed set of operator roles known to the drawer.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// ParseRole maps a raw role string to a known Role. Unknown values
// degrade to RoleCashier so an unrecognized role never gains privilege.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	default:
		return RoleCashier
	}
}

// IsPrivileged reports whether the role may observe an open drawer held
// by someone else and close shifts without a declared cash count.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// String returns the role as a string
func (r Role) String() string {
	return string(r)
}

// Operator is a read model over the shared users table. The drawer never
// mutates operators; account management lives in the auth subsystem.
type Operator struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// IsPrivileged reports whether the operator holds a privileged role
func (o *Operator) IsPrivileged() bool {
	return o.Role.IsPrivileged()
}

// OperatorRepository provides read access to operators
type OperatorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Operator, error)
}
