package services

import (
	"context"
	"fmt"
	"time"

	"stepup/internal/domain"
)

type musicApplyService struct {
	applyRepo      domain.MusicApplyRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewMusicApplyService(applyRepo domain.MusicApplyRepository, userRepo domain.UserRepository, timeout time.Duration) domain.MusicApplyService {
	return &musicApplyService{applyRepo: applyRepo, userRepo: userRepo, contextTimeout: timeout}
}

func (s *musicApplyService) Create(ctx context.Context, a *domain.MusicApply) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := getUser(ctx, s.userRepo, a.WriterID); err != nil {
		return err
	}
	a.CreatedAt = time.Now()
	if err := s.applyRepo.Create(ctx, a); err != nil {
		return fmt.Errorf("create music apply: %w", err)
	}
	return nil
}

func (s *musicApplyService) GetByID(ctx context.Context, id string) (*domain.MusicApply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.applyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrMusicApplyNotFound, "get music apply")
	}
	return a, nil
}

func (s *musicApplyService) List(ctx context.Context, keyword string) ([]*domain.MusicApply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.applyRepo.List(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("list music applies: %w", err)
	}
	return list, nil
}

// Delete removes a request. Any authenticated caller may delete any request;
// the writer is not checked.
func (s *musicApplyService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.applyRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrMusicApplyNotFound, "delete music apply")
	}
	return nil
}
