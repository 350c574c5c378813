package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Scope restricts where a token is honored: access tokens authorize API
// calls, refresh tokens only mint new pairs, email tokens only confirm
// an address. The values are the literal claim strings on the wire.
type Scope string

const (
	ScopeAccess  Scope = "access_token"
	ScopeRefresh Scope = "refresh_token"
	ScopeEmail   Scope = "email_token"
)

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
	DefaultEmailTTL   = 7 * 24 * time.Hour
)

var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidScope   = errors.New("invalid scope for token")
)

// Claims is the fixed claim set carried by every token. Decode rejects
// payloads that do not carry all of subject, expiry and scope.
type Claims struct {
	Scope Scope `json:"scope"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	emailTTL   time.Duration
}

func NewJWTManager(secret string, accessTTL, refreshTTL, emailTTL time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		emailTTL:   emailTTL,
	}
}

// Generate создаёт подписанный токен для subject с заданным scope
func (m *JWTManager) Generate(subject string, scope Scope) (string, error) {
	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl(scope))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Decode проверяет подпись, срок действия и scope, возвращает subject
func (m *JWTManager) Decode(raw string, expected Scope) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrTokenMalformed
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrTokenMalformed
	}
	if claims.Scope != expected {
		return "", ErrInvalidScope
	}
	return claims.Subject, nil
}

func (m *JWTManager) ttl(scope Scope) time.Duration {
	switch scope {
	case ScopeRefresh:
		return m.refreshTTL
	case ScopeEmail:
		return m.emailTTL
	default:
		return m.accessTTL
	}
}

// ExtractTokenFromHeader извлекает токен из Authorization header
func ExtractTokenFromHeader(r *http.Request) (string, error) {
	hdr := r.Header.Get("Authorization")
	parts := strings.SplitN(hdr, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid Authorization header")
	}
	return parts[1], nil
}
