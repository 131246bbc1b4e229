package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/domain"
)

func TestGateClassification(t *testing.T) {
	g := NewGate(configs.Access{
		FullAccessRoles: []string{"admin", " Editor "},
		ReadOnlyUsers:   []string{"auditor@example.com", "u-9"},
	})

	tests := []struct {
		name     string
		p        domain.Principal
		readOnly bool
	}{
		{name: "anonymous", p: domain.Principal{}, readOnly: true},
		{name: "admin", p: domain.Principal{UserID: "u-1", Role: "admin"}, readOnly: false},
		{name: "editor any case", p: domain.Principal{UserID: "u-2", Role: "EDITOR"}, readOnly: false},
		{name: "viewer", p: domain.Principal{UserID: "u-3", Role: "viewer"}, readOnly: true},
		{name: "no role", p: domain.Principal{UserID: "u-4"}, readOnly: true},
		{name: "listed email", p: domain.Principal{UserID: "u-5", Email: "Auditor@example.com", Role: "admin"}, readOnly: true},
		{name: "listed id", p: domain.Principal{UserID: "u-9", Role: "admin"}, readOnly: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.readOnly, g.IsReadOnly(tt.p))
			err := g.EnforceFullAccess(tt.p)
			if tt.readOnly {
				require.ErrorIs(t, err, domain.ErrForbidden)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEnforceAuthenticated(t *testing.T) {
	g := NewGate(configs.Access{FullAccessRoles: []string{"admin"}})

	require.ErrorIs(t, g.EnforceAuthenticated(domain.Principal{}), domain.ErrUnauthenticated)
	require.NoError(t, g.EnforceAuthenticated(domain.Principal{UserID: "u-1", Role: "viewer"}))
}
