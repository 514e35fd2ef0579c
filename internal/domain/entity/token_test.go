package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenPayload(t *testing.T) {
	validRoles := []any{map[string]any{"id": float64(1), "name": "admin"}}

	tests := []struct {
		name   string
		claims TokenClaims
		valid  bool
	}{
		{
			name:   "valid local payload",
			claims: TokenClaims{"id": float64(7), "method": "local", "roles": validRoles},
			valid:  true,
		},
		{
			name:   "method is case insensitive",
			claims: TokenClaims{"id": float64(0), "method": "GOOGLE", "roles": validRoles},
			valid:  true,
		},
		{name: "nil claims", claims: nil},
		{
			name:   "negative id",
			claims: TokenClaims{"id": float64(-1), "method": "local", "roles": validRoles},
		},
		{
			name:   "fractional id",
			claims: TokenClaims{"id": 1.5, "method": "local", "roles": validRoles},
		},
		{
			name:   "id as string",
			claims: TokenClaims{"id": "1", "method": "local", "roles": validRoles},
		},
		{
			name:   "unknown method",
			claims: TokenClaims{"id": float64(1), "method": "github", "roles": validRoles},
		},
		{
			name:   "empty method",
			claims: TokenClaims{"id": float64(1), "method": "", "roles": validRoles},
		},
		{
			name:   "empty roles",
			claims: TokenClaims{"id": float64(1), "method": "local", "roles": []any{}},
		},
		{
			name:   "roles not an array",
			claims: TokenClaims{"id": float64(1), "method": "local", "roles": "admin"},
		},
		{
			name:   "role without name",
			claims: TokenClaims{"id": float64(1), "method": "local", "roles": []any{map[string]any{"id": float64(1)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTokenPayload(tt.claims)
			assert.Equal(t, tt.valid, result.Valid())
			if tt.valid {
				require.NotNil(t, result.Payload())
				assert.Empty(t, result.Reason())
			} else {
				assert.Nil(t, result.Payload())
				assert.NotEmpty(t, result.Reason())
			}
		})
	}
}

func TestParseTokenPayload_RoundTripsClaims(t *testing.T) {
	payload := &TokenPayload{
		ID:     42,
		Method: LoginMethodGoogle,
		Roles:  []RoleClaim{{ID: 2, Name: "user"}},
	}

	result := ParseTokenPayload(payload.Claims())

	require.True(t, result.Valid())
	assert.Equal(t, int64(42), result.Payload().ID)
	assert.Equal(t, LoginMethodGoogle, result.Payload().Method)
	assert.Equal(t, []string{"user"}, result.Payload().RoleNames())
}

func TestPriceOrder(t *testing.T) {
	lines := []PricedLine{
		{ProductID: 1, Quantity: 2, Price: 100, Cost: 60},
		{ProductID: 2, Quantity: 1, Price: 50, Cost: 20},
	}

	totals := PriceOrder(lines, 0.21)

	assert.InDelta(t, 250, totals.NetPrice, 1e-9)
	assert.InDelta(t, 302.5, totals.Total, 1e-9)
	assert.InDelta(t, 110, totals.Profit, 1e-9)
	assert.InDelta(t, 0.21, totals.IVA, 1e-9)
}

func TestPriceOrder_ZeroIVA(t *testing.T) {
	totals := PriceOrder([]PricedLine{{Quantity: 3, Price: 10, Cost: 4}}, 0)

	assert.InDelta(t, 30, totals.NetPrice, 1e-9)
	assert.InDelta(t, 30, totals.Total, 1e-9)
	assert.InDelta(t, 18, totals.Profit, 1e-9)
}
