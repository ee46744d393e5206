package domain

import (
	"context"
	"time"
)

// BoardType distinguishes notices from free talk posts.
type BoardType string

const (
	BoardNotice BoardType = "NOTICE"
	BoardTalk   BoardType = "TALK"
)

// Valid reports whether t is a known board type.
func (t BoardType) Valid() bool {
	return t == BoardNotice || t == BoardTalk
}

// Board is a post on the notice or talk board. Notices may reference a dance.
// swagger:model Board
type Board struct {
	ID        string    `json:"id"`
	Type      BoardType `json:"board_type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	WriterID  string    `json:"writer_id"`
	DanceID   *string   `json:"dance_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardRepository defines storage for board posts.
type BoardRepository interface {
	Create(ctx context.Context, board *Board) error
	GetByID(ctx context.Context, boardType BoardType, id string) (*Board, error)
	List(ctx context.Context, boardType BoardType, keyword string, params PaginationParams) ([]*Board, int, error)
	Delete(ctx context.Context, boardType BoardType, id string) error
}

// BoardService defines notice and talk board operations.
type BoardService interface {
	Create(ctx context.Context, userID string, board *Board) error
	GetByID(ctx context.Context, boardType BoardType, id string) (*Board, error)
	List(ctx context.Context, boardType BoardType, keyword string, params PaginationParams) ([]*Board, int, error)
	Delete(ctx context.Context, userID string, boardType BoardType, id string) error
}

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
