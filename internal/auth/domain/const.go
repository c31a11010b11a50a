// Package domain defines authentication and authorization domain models.
// Bearer tokens are issued by an external identity provider; this package models the
// decoded claim set, the permission strings guarding each route and the typed failures
// raised while verifying a token.
package domain

// Permission is a capability string carried in the "permissions" claim of a token.
type Permission string

const (
	// PermissionGetDetails allows reading the long form of drinks, including recipes.
	PermissionGetDetails Permission = "get:details"

	// PermissionPostDrinks allows creating drinks.
	PermissionPostDrinks Permission = "post:drinks"

	// PermissionPatchDrink allows renaming an existing drink.
	PermissionPatchDrink Permission = "patch:drink"

	// PermissionDeleteDrinks allows deleting drinks.
	PermissionDeleteDrinks Permission = "delete:drinks"
)

// PermissionsClaim is the name of the claim holding the caller's permissions.
const PermissionsClaim = "permissions"
