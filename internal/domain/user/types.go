package user

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleTenant   Role = "TENANT"
	RoleLandlord Role = "LANDLORD"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleAdmin:
		return true
	default:
		return false
	}
}

// NewRole accepts any letter case.
func NewRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// SelfAssignable reports whether a role can be chosen at registration.
func (r Role) SelfAssignable() bool {
	return r == RoleTenant || r == RoleLandlord
}

type Capability string

const (
	CapBookingCreate     Capability = "booking:create"
	CapBookingManageAny  Capability = "booking:manage_any"
	CapReviewCreate      Capability = "review:create"
	CapReviewModerate    Capability = "review:moderate"
	CapPropertyCreate    Capability = "property:create"
	CapPropertyManageAny Capability = "property:manage_any"
	CapPropertyListOwn   Capability = "property:list_own"
)

var grants = map[Role]map[Capability]struct{}{
	RoleTenant: {
		CapBookingCreate: {},
		CapReviewCreate:  {},
	},
	RoleLandlord: {
		CapBookingCreate:   {},
		CapPropertyCreate:  {},
		CapPropertyListOwn: {},
	},
	RoleAdmin: {
		CapBookingCreate:     {},
		CapBookingManageAny:  {},
		CapReviewModerate:    {},
		CapPropertyCreate:    {},
		CapPropertyManageAny: {},
	},
}

// Authorize is the only place role permissions are decided.
func Authorize(role Role, capability Capability) bool {
	caps, ok := grants[role]
	if !ok {
		return false
	}
	_, ok = caps[capability]
	return ok
}

func CanManageProperty(role Role, actorID, landlordID uuid.UUID) bool {
	if actorID != uuid.Nil && actorID == landlordID {
		return true
	}
	return Authorize(role, CapPropertyManageAny)
}
