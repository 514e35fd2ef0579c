package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"padelpoint/config"
)

func newTestHasher(cost int) *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("padel-point-1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "padel-point-1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("padel-point-1")
	require.NoError(t, err)

	assert.True(t, hasher.Check("padel-point-1", hash))
	assert.False(t, hasher.Check("padel-point-2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("padel-point-1", "invalid_hash"))
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, newTestHasher(12).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(&config.Config{}).(*bcryptHasher).cost)
}
