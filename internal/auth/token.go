package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-saas/internal/domain/access"
)

// Claims is the signed session payload.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Role   access.Role `json:"role"`
	GymID  *uuid.UUID  `json:"gymId"`
	jwt.RegisteredClaims
}

var ErrInvalidClaims = errors.New("invalid token claims")

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithNow pins the issuing clock, for tests.
func (t *TokenIssuer) WithNow(now func() time.Time) *TokenIssuer {
	return &TokenIssuer{secret: t.secret, ttl: t.ttl, now: now}
}

func (t *TokenIssuer) Issue(id access.Identity) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)

	claims := Claims{
		UserID: id.UserID,
		Role:   id.Role,
		GymID:  id.GymID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies signature and expiry and returns the embedded identity.
func (t *TokenIssuer) Parse(raw string) (access.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(
		raw,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return access.Identity{}, err
	}

	if claims.UserID == uuid.Nil || !claims.Role.Valid() {
		return access.Identity{}, ErrInvalidClaims
	}

	return access.Identity{
		UserID: claims.UserID,
		Role:   claims.Role,
		GymID:  claims.GymID,
	}, nil
}
