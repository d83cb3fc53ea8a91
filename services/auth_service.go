package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shottrack/dto"
	"github.com/shottrack/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken covers every token validation failure: bad signature,
	// expiry, or a subject that no longer resolves to a user.
	ErrInvalidToken = errors.New("could not validate credentials")
)

// UserStore resolves usernames to user records. Absence of a username is a
// normal outcome, not an error.
type UserStore interface {
	Lookup(username string) (models.User, bool)
}

// StaticUserStore is a UserStore backed by an in-process map fixed at
// startup.
type StaticUserStore struct {
	users map[string]models.User
}

// NewStaticUserStore builds a store from the given users.
func NewStaticUserStore(users ...models.User) *StaticUserStore {
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &StaticUserStore{users: m}
}

// Lookup returns the user for a username, if present.
func (s *StaticUserStore) Lookup(username string) (models.User, bool) {
	u, ok := s.users[username]
	return u, ok
}

// AuthService issues and validates access tokens and verifies credentials
// against the user store.
type AuthService struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an auth service with the given signing secret and
// token lifetime.
func NewAuthService(users UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// VerifyPassword checks a plaintext password against a bcrypt hash. A
// malformed hash yields false, never a panic.
func (s *AuthService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Authenticate resolves the username and verifies the password.
func (s *AuthService) Authenticate(username, password string) (models.User, error) {
	user, ok := s.users.Lookup(username)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if !s.VerifyPassword(password, user.HashedPassword) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GenerateToken issues a signed token for the given subject, expiring after
// the configured lifetime.
func (s *AuthService) GenerateToken(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := dto.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken checks signature and expiry and returns the subject.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// CurrentUser validates a token and resolves its subject to a user record.
func (s *AuthService) CurrentUser(tokenString string) (models.User, error) {
	subject, err := s.ValidateToken(tokenString)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}
	user, ok := s.users.Lookup(subject)
	if !ok {
		return models.User{}, ErrInvalidToken
	}
	return user, nil
}
