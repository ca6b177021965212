// Package token signs and verifies HS256 JSON Web Tokens.
package token

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const month = 30 * 24 * time.Hour

var (
	// ErrInvalidTimeDelta is returned for a lifetime that is not <n>h, <n>d, <n>w or <n>m
	ErrInvalidTimeDelta = errors.New("invalid time delta")
	// ErrInvalidToken wraps every verification failure
	ErrInvalidToken = errors.New("invalid token")
)

// ParseTimeDelta parses a positive count followed by h (hours), d (days), w (weeks) or m (30-day months)
func ParseTimeDelta(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, errors.Wrapf(ErrInvalidTimeDelta, "%q", s)
	}

	n, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTimeDelta, "%q", s)
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'h':
		unit = time.Hour
	case 'd':
		unit = 24 * time.Hour
	case 'w':
		unit = 7 * 24 * time.Hour
	case 'm':
		unit = month
	default:
		return 0, errors.Wrapf(ErrInvalidTimeDelta, "unknown unit in %q", s)
	}
	return time.Duration(n) * unit, nil
}

// Claims are the caller-controlled fields of a token. Empty strings are omitted.
type Claims struct {
	Audience string
	Issuer   string
	Subject  string
	Expiry   time.Duration
}

// Sign issues a token valid from now for c.Expiry
func Sign(secret string, c Claims) (string, error) {
	return SignAt(secret, c, time.Now())
}

// SignAt issues a token as if the current time were now
func SignAt(secret string, c Claims, now time.Time) (string, error) {
	issued := jwt.NewNumericDate(now)
	claims := jwt.RegisteredClaims{
		Issuer:    c.Issuer,
		Subject:   c.Subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(c.Expiry)),
		NotBefore: issued,
		IssuedAt:  issued,
		ID:        uuid.NewString(),
	}
	if c.Audience != "" {
		claims.Audience = jwt.ClaimStrings{c.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify checks the signature, expiry and, when audience is non-empty, the aud claim.
// Only HS256 tokens are accepted.
func Verify(secret, tokenString, audience string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	return claims, nil
}
