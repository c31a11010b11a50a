package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// ClaimSet is the verified payload of a bearer token. Raw holds the claims exactly as
// decoded from the token; the accessors read the registered claims and permissions
// without normalizing Raw.
type ClaimSet struct {
	Raw map[string]any
}

// NewClaimSet wraps decoded token claims.
func NewClaimSet(raw map[string]any) *ClaimSet {
	if raw == nil {
		raw = map[string]any{}
	}
	return &ClaimSet{Raw: raw}
}

// Subject returns the "sub" claim.
func (c *ClaimSet) Subject() string {
	return c.stringClaim("sub")
}

// Issuer returns the "iss" claim.
func (c *ClaimSet) Issuer() string {
	return c.stringClaim("iss")
}

// Audience returns the "aud" claim, which may be a single string or a list.
func (c *ClaimSet) Audience() []string {
	switch aud := c.Raw["aud"].(type) {
	case string:
		return []string{aud}
	default:
		return toStrings(aud)
	}
}

// ExpiresAt returns the "exp" claim and whether it is present.
func (c *ClaimSet) ExpiresAt() (time.Time, bool) {
	var seconds int64
	switch exp := c.Raw["exp"].(type) {
	case float64:
		seconds = int64(exp)
	case int64:
		seconds = exp
	case int:
		seconds = int64(exp)
	case json.Number:
		v, err := exp.Int64()
		if err != nil {
			return time.Time{}, false
		}
		seconds = v
	default:
		return time.Time{}, false
	}
	return time.Unix(seconds, 0).UTC(), true
}

// Permissions returns the permissions claim and whether the claim is present at all.
// A present claim that is not a list of strings yields an empty list.
func (c *ClaimSet) Permissions() ([]string, bool) {
	raw, ok := c.Raw[PermissionsClaim]
	if !ok {
		return nil, false
	}
	return toStrings(raw), true
}

// HasPermission reports whether permission is listed in the permissions claim.
func (c *ClaimSet) HasPermission(permission Permission) bool {
	permissions, _ := c.Permissions()
	return slices.Contains(permissions, string(permission))
}

func (c *ClaimSet) stringClaim(name string) string {
	s, _ := c.Raw[name].(string)
	return s
}

// toStrings converts a decoded JSON array into strings, skipping non-string entries.
func toStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
