package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned once the current time reaches the expiry.
	ErrTokenExpired = errors.New("token expired")
)

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens. It is stateless: no session
// record is kept and tokens lapse purely by expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue creates a signed token embedding the user id with an expiry of
// now + ttl.
func (i *TokenIssuer) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the embedded user id.
// No directory lookup happens here.
func (i *TokenIssuer) Verify(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
