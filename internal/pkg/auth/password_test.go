package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-Pass!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cure-Pass!", hash)

	assert.True(t, CheckPassword(hash, "s3cure-Pass!"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
