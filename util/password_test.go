package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("sup3rsecret")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", hashed)

	assert.True(t, ComparePassword(hashed, "sup3rsecret"))
	assert.False(t, ComparePassword(hashed, "wrong"))
	assert.False(t, ComparePassword("not-a-hash", "sup3rsecret"))
}
