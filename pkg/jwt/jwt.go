package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

// Claims is the payload of a portal session token.
type Claims struct {
	UserID int64  `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for sess.
func GenerateToken(sess models.Session, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: sess.UserID,
		Name:   sess.Name,
		Email:  sess.Email,
		Role:   string(sess.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(sess.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies tokenString and returns the session it describes.
// The user id is read from user_id, falling back to the numeric subject.
func ParseToken(tokenString, secret string) (models.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return models.Session{}, errors.New("invalid session token")
	}

	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		if userID, err = strconv.ParseInt(claims.Subject, 10, 64); err != nil {
			return models.Session{}, fmt.Errorf("session token subject is not a user id: %w", err)
		}
	}
	if userID <= 0 {
		return models.Session{}, errors.New("session token carries no user id")
	}

	role := models.Role(strings.ToUpper(claims.Role))
	switch role {
	case models.RoleStudent, models.RoleAlumni, models.RoleAdmin:
	default:
		return models.Session{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return models.Session{
		UserID: userID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   role,
		Token:  tokenString,
	}, nil
}
