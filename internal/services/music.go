package services

import (
	"context"
	"fmt"
	"time"

	"stepup/internal/domain"
)

type musicService struct {
	musicRepo      domain.MusicRepository
	contextTimeout time.Duration
}

// NewMusicService creates a MusicService over the catalog repository.
func NewMusicService(musicRepo domain.MusicRepository, timeout time.Duration) domain.MusicService {
	return &musicService{musicRepo: musicRepo, contextTimeout: timeout}
}

func (s *musicService) Create(ctx context.Context, m *domain.Music) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m.CreatedAt = time.Now()
	if err := s.musicRepo.Create(ctx, m); err != nil {
		return fmt.Errorf("create music: %w", err)
	}
	return nil
}

func (s *musicService) GetByID(ctx context.Context, id string) (*domain.Music, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, err := s.musicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrMusicNotFound, "get music")
	}
	return m, nil
}

func (s *musicService) List(ctx context.Context, keyword string) ([]*domain.Music, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.musicRepo.List(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("list music: %w", err)
	}
	return list, nil
}

// Delete removes a song. There is no ownership check on the catalog.
func (s *musicService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.musicRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, domain.ErrMusicNotFound, "delete music")
	}
	return nil
}
