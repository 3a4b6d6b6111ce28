package util

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the decoded session: UserID is the effective user, ActorID the
// real user behind an impersonated session (equal to UserID otherwise).
type Identity struct {
	UserID  string
	ActorID string
}

func (i Identity) IsImpersonating() bool {
	return i.ActorID != "" && i.ActorID != i.UserID
}

// GenerateJWT creates a session token for a user.
func GenerateJWT(userID, secret string, ttl time.Duration) (string, error) {
	return generate(userID, "", secret, ttl)
}

// GenerateImpersonationJWT creates a token acting as userID on behalf of
// actorID, the approved admin.
func GenerateImpersonationJWT(userID, actorID, secret string, ttl time.Duration) (string, error) {
	return generate(userID, actorID, secret, ttl)
}

func generate(userID, actorID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	if actorID != "" {
		claims["act"] = actorID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token and extracts the session identity.
func ParseJWT(tokenStr, secret string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}

	if !token.Valid {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, jwt.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, jwt.ErrTokenMalformed
	}

	id := Identity{UserID: userID, ActorID: userID}
	if act, ok := claims["act"].(string); ok && act != "" {
		id.ActorID = act
	}
	return id, nil
}

func ExtractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}
