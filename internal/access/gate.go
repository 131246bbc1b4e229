// Package access classifies callers as read-only or full-access.
package access

import (
	"fmt"
	"strings"

	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/domain"
)

// Gate holds the classification rule. It owns no other state.
type Gate struct {
	fullAccessRoles map[string]struct{}
	readOnlyUsers   map[string]struct{}
}

// NewGate builds a gate from configuration. Role and user matching is case
// insensitive.
func NewGate(cfg configs.Access) *Gate {
	g := &Gate{
		fullAccessRoles: make(map[string]struct{}, len(cfg.FullAccessRoles)),
		readOnlyUsers:   make(map[string]struct{}, len(cfg.ReadOnlyUsers)),
	}
	for _, r := range cfg.FullAccessRoles {
		if r = norm(r); r != "" {
			g.fullAccessRoles[r] = struct{}{}
		}
	}
	for _, u := range cfg.ReadOnlyUsers {
		if u = norm(u); u != "" {
			g.readOnlyUsers[u] = struct{}{}
		}
	}
	return g
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// IsReadOnly reports whether p may only view data. Anonymous principals,
// principals without a full-access role and explicitly listed users are
// read-only.
func (g *Gate) IsReadOnly(p domain.Principal) bool {
	if p.Anonymous() {
		return true
	}
	if _, ok := g.readOnlyUsers[norm(p.UserID)]; ok {
		return true
	}
	if p.Email != "" {
		if _, ok := g.readOnlyUsers[norm(p.Email)]; ok {
			return true
		}
	}
	_, full := g.fullAccessRoles[norm(p.Role)]
	return !full
}

// EnforceFullAccess guards mutation and refresh entry points.
func (g *Gate) EnforceFullAccess(p domain.Principal) error {
	if g.IsReadOnly(p) {
		return fmt.Errorf("principal %q is read-only: %w", p.UserID, domain.ErrForbidden)
	}
	return nil
}

// EnforceAuthenticated guards board and data views.
func (g *Gate) EnforceAuthenticated(p domain.Principal) error {
	if p.Anonymous() {
		return domain.ErrUnauthenticated
	}
	return nil
}
