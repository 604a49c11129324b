package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairRoundTrip(t *testing.T) {
	pair, err := GeneratePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
}

// refresh 和 access 用不同密钥签名，互相不可替换
func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	pair, err := GeneratePair(42)
	require.NoError(t, err)

	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	pair, err := GeneratePair(7)
	require.NoError(t, err)

	fresh, userID, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.EqualValues(t, 7, userID)

	claims, err := ParseAccess(fresh.AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	pair, err := GeneratePair(7)
	require.NoError(t, err)

	_, _, err = Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	_, err := ParseAccess("not-a-token")
	assert.Error(t, err)
}

func TestRandDigits(t *testing.T) {
	code, err := RandDigits(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
