package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Role classifies an authenticated principal. Roles arrive from the external
// auth collaborator together with the actor id; this core trusts them
// completely and performs no credential checks of its own.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer creates orders and reads its own order list.
	RoleCustomer

	// RoleCourier claims orders from the available pool and advances the
	// ones it owns.
	RoleCourier

	// RoleAdmin reviews all orders and their ledgers.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleCourier:  "courier",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleCourier:  "courier",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name as supplied by the auth collaborator.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role. It implements fmt.Stringer
// and is safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through NewPrincipal.
var ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError(
	"principal must be created via NewPrincipal")

// Principal is an already-authenticated actor identity: who is acting and in
// what role. It is supplied by the auth collaborator on every call.
//
// Example:
//
//	p, err := kernel.NewPrincipal(7, kernel.RoleCourier)
//	if err != nil {
//	    // handle invalid identity
//	}
//	if p.IsCourier() {
//	    // allow claim
//	}
type Principal struct {
	actorID ActorID
	role    Role

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal from an actor id and role.
// Both must be valid; the system actor is not a principal.
func NewPrincipal(actorID ActorID, role Role) (Principal, error) {
	if err := actorID.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Principal was created via NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ActorID returns the identifier of the acting principal.
func (p Principal) ActorID() ActorID {
	return p.actorID
}

// Role returns the authenticated role of the principal.
func (p Principal) Role() Role {
	return p.role
}

// IsCustomer reports whether the principal acts as a customer.
func (p Principal) IsCustomer() bool {
	return p.role == RoleCustomer
}

// IsCourier reports whether the principal acts as a courier.
func (p Principal) IsCourier() bool {
	return p.role == RoleCourier
}

// IsAdmin reports whether the principal acts as an administrator.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}
