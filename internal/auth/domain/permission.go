package domain

// CheckPermission verifies that claims grant the required permission.
//
// Returns ErrPermissionsClaimMissing when the claim set has no permissions claim and
// ErrPermissionDenied when the permission is not listed. It has no side effects.
func CheckPermission(required Permission, claims *ClaimSet) error {
	if claims == nil {
		return ErrPermissionsClaimMissing
	}
	if _, ok := claims.Permissions(); !ok {
		return ErrPermissionsClaimMissing
	}
	if !claims.HasPermission(required) {
		return ErrPermissionDenied
	}
	return nil
}
