package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("demo123")
	require.NoError(t, err)
	assert.NotEqual(t, "demo123", hash)
	assert.True(t, CompareHashAndPassword(hash, "demo123"))
	assert.False(t, CompareHashAndPassword(hash, "demo124"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "demo123"))
}
