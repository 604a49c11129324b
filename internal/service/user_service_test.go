package service

import (
	"testing"

	"Hive_Community/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	tokens map[uint64]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{tokens: map[uint64]string{}}
}

func (f *fakeSessionStore) AddUserToken(userID uint64, token string) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeSessionStore) DeleteUserToken(userID uint64) error {
	delete(f.tokens, userID)
	return nil
}

// 刷新出的 access 必须成为新的会话 pin，否则单会话校验会把它拒掉
func TestRefreshRepinsSession(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := &UserService{rUser: sessions}

	pair, err := pkg.GeneratePair(42)
	require.NoError(t, err)
	sessions.tokens[42] = pair.AccessToken

	fresh, appErr := svc.Refresh(pair.RefreshToken)
	require.Nil(t, appErr)
	assert.Equal(t, fresh.AccessToken, sessions.tokens[42])
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := &UserService{rUser: sessions}

	_, appErr := svc.Refresh("not-a-token")
	require.NotNil(t, appErr)
	assert.Equal(t, pkg.CodeUnauthorized, appErr.Code)
	assert.Empty(t, sessions.tokens)
}
