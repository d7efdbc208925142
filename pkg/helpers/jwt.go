package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and validates session tokens.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl, now: time.Now}
}

// WithClock replaces the time source used for issued/expiry stamps.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

// TokenUser is the identity embedded in every token.
type TokenUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// Generate issues a token for the given user that expires after TTL.
func (m *JWTManager) Generate(userID, role string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		User: TokenUser{ID: userID, Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.User.ID == "" {
		return nil, errors.New("token has no user")
	}
	return claims, nil
}
