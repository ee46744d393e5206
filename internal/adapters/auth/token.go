package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stepup/internal/domain"
)

// Default token lifetimes.
const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

const grantTypeBearer = "Bearer"

// ErrMissingAuthority is returned by Authentication when the token carries no auth claim.
var ErrMissingAuthority = errors.New("token has no authority claim")

type tokenClaims struct {
	jwt.RegisteredClaims
	Auth string `json:"auth,omitempty"`
}

type jwtProvider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTProvider returns a TokenProvider that signs tokens with HS256 using secret.
// Zero TTLs fall back to DefaultAccessTTL and DefaultRefreshTTL.
func NewJWTProvider(secret string, accessTTL, refreshTTL time.Duration) domain.TokenProvider {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &jwtProvider{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssueTokens signs an access token carrying the subject and comma-joined roles,
// and an opaque refresh token that only carries an id and expiry.
func (p *jwtProvider) IssueTokens(userID string, roles []string) (*domain.TokenPair, error) {
	now := p.now()
	access := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.accessTTL)),
		},
		Auth: strings.Join(roles, ","),
	}
	accessToken, err := p.sign(access)
	if err != nil {
		return nil, err
	}

	refresh := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.refreshTTL)),
		},
	}
	refreshToken, err := p.sign(refresh)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		GrantType:    grantTypeBearer,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (p *jwtProvider) sign(claims tokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return s, nil
}

func (p *jwtProvider) keyFunc(*jwt.Token) (interface{}, error) {
	return p.secret, nil
}

// Validate reports whether token is an unexpired HS256 token signed with our secret.
func (p *jwtProvider) Validate(token string) bool {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, p.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	return err == nil && parsed.Valid
}

// Authentication rebuilds the principal from an access token. The signature is
// verified but expiry is not; callers run Validate first.
func (p *jwtProvider) Authentication(accessToken string) (*domain.Principal, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, p.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if claims.Auth == "" {
		return nil, ErrMissingAuthority
	}
	return &domain.Principal{
		Subject:     claims.Subject,
		Authorities: strings.Split(claims.Auth, ","),
	}, nil
}
