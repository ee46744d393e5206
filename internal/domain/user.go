package domain

import (
	"context"
	"time"
)

// Role codes carried in the access token's auth claim.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User represents a registered account.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	Country      string    `json:"country"`
	Role         string    `json:"role"`
	Point        int       `json:"point"`
	EmailAlert   bool      `json:"email_alert"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(username, email, nickname, country, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:  username,
		Email:     email,
		Nickname:  nickname,
		Country:   country,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal is the authenticated caller reconstructed from an access token.
type Principal struct {
	Subject     string
	Authorities []string
}

// HasAuthority reports whether the principal was granted the given role.
func (p *Principal) HasAuthority(role string) bool {
	for _, a := range p.Authorities {
		if a == role {
			return true
		}
	}
	return false
}

// TokenPair is the result of a successful login or refresh.
// swagger:model TokenPair
type TokenPair struct {
	GrantType    string `json:"grant_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenProvider issues and validates signed access and refresh tokens.
type TokenProvider interface {
	IssueTokens(userID string, roles []string) (*TokenPair, error)
	Validate(token string) bool
	Authentication(accessToken string) (*Principal, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*User, error)
	UpdateRefreshToken(ctx context.Context, id, refreshToken string) error
	ListTopByPoint(ctx context.Context, limit int) ([]*User, error)
}

// SignUpInput carries the fields accepted on registration.
type SignUpInput struct {
	Username   string
	Password   string
	Email      string
	Nickname   string
	Country    string
	EmailAlert bool
}

// UserService defines account registration, authentication and lookup.
type UserService interface {
	SignUp(ctx context.Context, in SignUpInput) (*User, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
