package domain

import "strings"

// Identity verified caller
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// StaffPolicy decides who may run staff operations
type StaffPolicy struct {
	roles map[string]struct{}
}

// NewStaffPolicy builds a policy from role names, matched case-insensitively
func NewStaffPolicy(roles []string) StaffPolicy {
	p := StaffPolicy{roles: make(map[string]struct{}, len(roles))}
	for _, r := range roles {
		p.roles[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return p
}

// IsStaff reports whether the identity's role grants staff access
func (p StaffPolicy) IsStaff(id Identity) bool {
	if id.Role == "" {
		return false
	}
	_, ok := p.roles[strings.ToLower(id.Role)]
	return ok
}
