package services

import (
	"context"
	"fmt"
	"time"

	"stepup/internal/domain"
)

type boardService struct {
	boardRepo      domain.BoardRepository
	userRepo       domain.UserRepository
	danceRepo      domain.DanceRepository
	contextTimeout time.Duration
}

// NewBoardService creates a BoardService for notices and talk posts.
func NewBoardService(boardRepo domain.BoardRepository, userRepo domain.UserRepository, danceRepo domain.DanceRepository, timeout time.Duration) domain.BoardService {
	return &boardService{
		boardRepo:      boardRepo,
		userRepo:       userRepo,
		danceRepo:      danceRepo,
		contextTimeout: timeout,
	}
}

// Create stores a post written by userID. Only notices keep a dance reference,
// and the referenced dance must exist.
func (s *boardService) Create(ctx context.Context, userID string, b *domain.Board) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !b.Type.Valid() {
		return domain.ErrInvalidBoardType
	}
	writer, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	if b.Type != domain.BoardNotice {
		b.DanceID = nil
	}
	if b.DanceID != nil {
		if _, err := s.danceRepo.GetByID(ctx, *b.DanceID); err != nil {
			return notFoundAs(err, domain.ErrDanceNotFound, "get dance")
		}
	}

	now := time.Now()
	b.WriterID = writer.ID
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.boardRepo.Create(ctx, b); err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	return nil
}

func (s *boardService) GetByID(ctx context.Context, boardType domain.BoardType, id string) (*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !boardType.Valid() {
		return nil, domain.ErrInvalidBoardType
	}
	b, err := s.boardRepo.GetByID(ctx, boardType, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrBoardNotFound, "get board")
	}
	return b, nil
}

func (s *boardService) List(ctx context.Context, boardType domain.BoardType, keyword string, params domain.PaginationParams) ([]*domain.Board, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !boardType.Valid() {
		return nil, 0, domain.ErrInvalidBoardType
	}
	list, total, err := s.boardRepo.List(ctx, boardType, keyword, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list boards: %w", err)
	}
	return list, total, nil
}

func (s *boardService) Delete(ctx context.Context, userID string, boardType domain.BoardType, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !boardType.Valid() {
		return domain.ErrInvalidBoardType
	}
	b, err := s.boardRepo.GetByID(ctx, boardType, id)
	if err != nil {
		return notFoundAs(err, domain.ErrBoardNotFound, "get board")
	}
	if b.WriterID != userID {
		return domain.ErrBoardDeleteForbidden
	}
	if err := s.boardRepo.Delete(ctx, boardType, id); err != nil {
		return notFoundAs(err, domain.ErrBoardNotFound, "delete board")
	}
	return nil
}
