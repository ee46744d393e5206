package services

import (
	"context"
	"fmt"
	"time"

	"stepup/internal/domain"
)

type rankService struct {
	pointRepo      domain.PointRepository
	userRepo       domain.UserRepository
	danceRepo      domain.DanceRepository
	contextTimeout time.Duration
}

// NewRankService creates a RankService for point policies, grants and the leaderboard.
func NewRankService(pointRepo domain.PointRepository, userRepo domain.UserRepository, danceRepo domain.DanceRepository, timeout time.Duration) domain.RankService {
	return &rankService{
		pointRepo:      pointRepo,
		userRepo:       userRepo,
		danceRepo:      danceRepo,
		contextTimeout: timeout,
	}
}

func (s *rankService) ListPolicies(ctx context.Context) ([]*domain.PointPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.pointRepo.ListPolicies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list point policies: %w", err)
	}
	return list, nil
}

// UpdatePoint grants the points of the named policy to targetUserID. Only admins may grant.
func (s *rankService) UpdatePoint(ctx context.Context, actorID, targetUserID, pointType string, danceID *string) (*domain.PointHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	actor, err := getUser(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorizedUserAccess
	}
	policy, err := s.pointRepo.GetPolicyByType(ctx, pointType)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrPointPolicyNotFound, "get point policy")
	}
	target, err := getUser(ctx, s.userRepo, targetUserID)
	if err != nil {
		return nil, err
	}
	if danceID != nil {
		if _, err := s.danceRepo.GetByID(ctx, *danceID); err != nil {
			return nil, notFoundAs(err, domain.ErrDanceNotFound, "get dance")
		}
	}

	h := &domain.PointHistory{
		UserID:    target.ID,
		PolicyID:  policy.ID,
		DanceID:   danceID,
		Point:     policy.Point,
		CreatedAt: time.Now(),
	}
	if err := s.pointRepo.GrantPoint(ctx, h); err != nil {
		return nil, notFoundAs(err, domain.ErrUserNotFound, "grant point")
	}
	return h, nil
}

func (s *rankService) ListPointHistory(ctx context.Context, userID string) ([]*domain.PointHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := getUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	list, err := s.pointRepo.ListHistoryByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list point history: %w", err)
	}
	return list, nil
}

// Leaderboard returns users by descending points. limit is clamped to [1, MaxLeaderboardSize].
func (s *rankService) Leaderboard(ctx context.Context, limit int) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if limit <= 0 || limit > domain.MaxLeaderboardSize {
		limit = domain.MaxLeaderboardSize
	}
	users, err := s.userRepo.ListTopByPoint(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return users, nil
}
