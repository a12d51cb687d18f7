package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingKey   = errors.New("JWT secret is not configured")
)

// Service validates the access tokens members present. Tokens are issued by
// the account service; IssueAccessToken exists for tooling and tests.
type Service interface {
	ValidateAccessToken(token string) (*Claims, error)
	IssueAccessToken(memberID int64, ttl time.Duration) (string, error)
}

type Claims struct {
	MemberID int64 `json:"member_id"`
	jwt.RegisteredClaims
}

type service struct {
	secret []byte
}

func NewService(secret string) Service {
	return &service{secret: []byte(secret)}
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.MemberID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *service) IssueAccessToken(memberID int64, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingKey
	}

	now := time.Now()
	claims := Claims{
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(memberID, 10),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
