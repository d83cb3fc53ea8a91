package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shottrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testUserStore(t *testing.T) (*StaticUserStore, models.User) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("114514"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:       "admin",
		HashedPassword: string(hashed),
	}
	return NewStaticUserStore(user), user
}

func TestStaticUserStore_Lookup(t *testing.T) {
	store, user := testUserStore(t)

	found, ok := store.Lookup("admin")
	require.True(t, ok)
	assert.Equal(t, user.Username, found.Username)

	_, ok = store.Lookup("nobody")
	assert.False(t, ok, "unknown username must be a normal non-error absence")
}

func TestVerifyPassword(t *testing.T) {
	store, user := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	assert.True(t, svc.VerifyPassword("114514", user.HashedPassword))
	assert.False(t, svc.VerifyPassword("wrong", user.HashedPassword))
	assert.False(t, svc.VerifyPassword("114514", "not-a-bcrypt-hash"))
	assert.False(t, svc.VerifyPassword("114514", ""))
}

func TestAuthenticate(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	user, err := svc.Authenticate("admin", "114514")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "114514")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGenerateToken_SubjectRoundTrip(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	token, expiresAt, err := svc.GenerateToken("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestValidateToken_Expired(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", -time.Minute)

	token, _, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_Tampered(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	token, _, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	// Flip one byte of the signature
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.ValidateToken(string(tampered))
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	store, _ := testUserStore(t)
	issuer := NewAuthService(store, "secret-one", 30*time.Minute)
	verifier := NewAuthService(store, "secret-two", 30*time.Minute)

	token, _, err := issuer.GenerateToken("admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestCurrentUser(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	token, _, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	user, err := svc.CurrentUser(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestCurrentUser_UnknownSubject(t *testing.T) {
	store, _ := testUserStore(t)
	svc := NewAuthService(store, "test-secret", 30*time.Minute)

	// A validly signed token whose subject no longer resolves to a user
	token, _, err := svc.GenerateToken("ghost")
	require.NoError(t, err)

	_, err = svc.CurrentUser(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
