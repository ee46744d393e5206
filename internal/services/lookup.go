package services

import (
	"context"
	"errors"
	"fmt"

	"stepup/internal/domain"
)

// notFoundAs replaces a repository not-found error with the caller-facing one
// and wraps anything else with op.
func notFoundAs(err, notFound error, op string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func getUser(ctx context.Context, repo domain.UserRepository, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound, "get user")
	}
	return u, nil
}
