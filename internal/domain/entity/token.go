package entity

import (
	"encoding/json"
	"math"
	"time"
)

// TokenClaims is the raw claim set of a decoded session token.
type TokenClaims map[string]any

// RoleClaim is a role as embedded in a session token.
type RoleClaim struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TokenPayload is the typed content of an access or refresh token.
type TokenPayload struct {
	ID        int64
	Method    LoginMethod
	Roles     []RoleClaim
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RoleNames returns the names of the payload's roles.
func (p *TokenPayload) RoleNames() []string {
	names := make([]string, 0, len(p.Roles))
	for _, role := range p.Roles {
		names = append(names, role.Name)
	}

	return names
}

// Claims renders the payload as signable claims, without registered time claims.
func (p *TokenPayload) Claims() TokenClaims {
	roles := make([]any, 0, len(p.Roles))
	for _, role := range p.Roles {
		roles = append(roles, map[string]any{"id": role.ID, "name": role.Name})
	}

	return TokenClaims{
		"id":     p.ID,
		"method": p.Method.String(),
		"roles":  roles,
	}
}

// NewTokenPayload builds the payload issued at login for user.
func NewTokenPayload(user *User) *TokenPayload {
	roles := make([]RoleClaim, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, RoleClaim(role))
	}

	return &TokenPayload{ID: user.ID, Method: user.Method, Roles: roles}
}

// PayloadResult is either a valid payload or the reason a claim set was rejected.
type PayloadResult struct {
	payload *TokenPayload
	reason  string
}

func ValidPayload(payload *TokenPayload) PayloadResult {
	return PayloadResult{payload: payload}
}

func InvalidPayload(reason string) PayloadResult {
	return PayloadResult{reason: reason}
}

func (r PayloadResult) Valid() bool {
	return r.payload != nil
}

// Payload returns the parsed payload, nil when invalid.
func (r PayloadResult) Payload() *TokenPayload {
	return r.payload
}

func (r PayloadResult) Reason() string {
	return r.reason
}

// ParseTokenPayload validates raw claims: id must be a non-negative integer,
// method one of local/google (any case) and roles a non-empty array of named roles.
func ParseTokenPayload(claims TokenClaims) PayloadResult {
	if len(claims) == 0 {
		return InvalidPayload("missing payload")
	}

	id, ok := claimInt(claims["id"])
	if !ok || id < 0 {
		return InvalidPayload("id must be a non-negative number")
	}

	rawMethod, ok := claims["method"].(string)
	if !ok {
		return InvalidPayload("method must be a string")
	}
	method, ok := ParseLoginMethod(rawMethod)
	if !ok {
		return InvalidPayload("method must be local or google")
	}

	roles, ok := ClaimRoles(claims)
	if !ok || len(roles) == 0 {
		return InvalidPayload("roles must be a non-empty array")
	}

	payload := &TokenPayload{ID: id, Method: method, Roles: roles}
	if iat, ok := claimInt(claims["iat"]); ok {
		payload.IssuedAt = time.Unix(iat, 0)
	}
	if exp, ok := claimInt(claims["exp"]); ok {
		payload.ExpiresAt = time.Unix(exp, 0)
	}

	return ValidPayload(payload)
}

// ClaimRoles extracts the roles claim. ok is false when the claim is absent or not an array of role objects.
func ClaimRoles(claims TokenClaims) ([]RoleClaim, bool) {
	rawRoles, ok := claims["roles"].([]any)
	if !ok {
		return nil, false
	}

	roles := make([]RoleClaim, 0, len(rawRoles))
	for _, raw := range rawRoles {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, false
		}
		name, ok := obj["name"].(string)
		if !ok || name == "" {
			return nil, false
		}
		roleID, _ := claimInt(obj["id"])
		roles = append(roles, RoleClaim{ID: roleID, Name: name})
	}

	return roles, true
}

func claimInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}

		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()

		return n, err == nil
	default:
		return 0, false
	}
}
