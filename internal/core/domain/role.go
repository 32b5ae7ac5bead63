package domain

import (
	"slices"
	"strings"
)

// RoleSet is an explicit, per-route set of roles.
type RoleSet []string

// Roles builds a RoleSet from the given role names.
func Roles(roles ...string) RoleSet {
	return RoleSet(roles)
}

// Allows reports whether role is a member of the set. An empty set allows nobody.
func (s RoleSet) Allows(role string) bool {
	return slices.Contains(s, role)
}

func (s RoleSet) String() string {
	return strings.Join(s, ",")
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleVet, RoleAgrovet, RoleAdmin:
		return true
	}
	return false
}
