package service

import (
	"testing"
	"time"

	"daily-pulse/internal/model"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", 0)
	user := model.User{ID: 7, Email: "alice@example.com"}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", 0).Issue(model.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	claims, err := NewTokenService("secret-b", 0).Verify(token)
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestVerifyTampered(t *testing.T) {
	svc := NewTokenService("secret", 0)
	token, err := svc.Issue(model.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	// 破壞簽章最後一個字元
	last := token[len(token)-1]
	repl := byte('A')
	if last == 'A' {
		repl = 'B'
	}
	claims, err := svc.Verify(token[:len(token)-1] + string(repl))
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService("secret", -time.Hour)
	token, err := svc.Issue(model.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService("secret", 0)
	claims, err := svc.Verify("not.a.token")
	require.Error(t, err)
	require.Nil(t, claims)
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, ComparePassword(hash, "Secret123!"))
	require.Error(t, ComparePassword(hash, "wrong"))
}
