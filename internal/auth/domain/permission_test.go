package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPermission(t *testing.T) {
	tests := []struct {
		name     string
		required Permission
		claims   *ClaimSet
		expected error
	}{
		{
			name:     "Success_PermissionGranted",
			required: PermissionPostDrinks,
			claims:   NewClaimSet(map[string]any{"permissions": []any{"get:details", "post:drinks"}}),
			expected: nil,
		},
		{
			name:     "Failure_NilClaims",
			required: PermissionPostDrinks,
			claims:   nil,
			expected: ErrPermissionsClaimMissing,
		},
		{
			name:     "Failure_NoPermissionsClaim",
			required: PermissionPostDrinks,
			claims:   NewClaimSet(map[string]any{"sub": "auth0|customer"}),
			expected: ErrPermissionsClaimMissing,
		},
		{
			name:     "Failure_EmptyPermissions",
			required: PermissionDeleteDrinks,
			claims:   NewClaimSet(map[string]any{"permissions": []any{}}),
			expected: ErrPermissionDenied,
		},
		{
			name:     "Failure_OtherPermissionsOnly",
			required: PermissionPatchDrink,
			claims:   NewClaimSet(map[string]any{"permissions": []any{"get:details"}}),
			expected: ErrPermissionDenied,
		},
		{
			name:     "Failure_PrefixDoesNotMatch",
			required: PermissionPatchDrink,
			claims:   NewClaimSet(map[string]any{"permissions": []any{"patch:drinks"}}),
			expected: ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPermission(tt.required, tt.claims)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
