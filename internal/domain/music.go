package domain

import (
	"context"
	"time"
)

// Music is a catalog song that can be attached to a dance.
// swagger:model Music
type Music struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Answer    string    `json:"answer"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMusic returns a new Music. ID is set by the repository on create.
func NewMusic(title, artist, answer, url string, createdAt time.Time) *Music {
	return &Music{
		Title:     title,
		Artist:    artist,
		Answer:    answer,
		URL:       url,
		CreatedAt: createdAt,
	}
}

// MusicRepository defines the interface for catalog storage.
// List matches keyword as a substring of title or artist; an empty keyword lists everything.
type MusicRepository interface {
	Create(ctx context.Context, music *Music) error
	GetByID(ctx context.Context, id string) (*Music, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Music, error)
	List(ctx context.Context, keyword string) ([]*Music, error)
	Delete(ctx context.Context, id string) error
}

// MusicService defines catalog operations.
type MusicService interface {
	Create(ctx context.Context, music *Music) error
	GetByID(ctx context.Context, id string) (*Music, error)
	List(ctx context.Context, keyword string) ([]*Music, error)
	Delete(ctx context.Context, id string) error
}

// MusicApply is a user's request for a song to be added to the catalog.
// swagger:model MusicApply
type MusicApply struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Content   string    `json:"content"`
	WriterID  string    `json:"writer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MusicApplyRepository defines storage for song requests.
type MusicApplyRepository interface {
	Create(ctx context.Context, apply *MusicApply) error
	GetByID(ctx context.Context, id string) (*MusicApply, error)
	List(ctx context.Context, keyword string) ([]*MusicApply, error)
	Delete(ctx context.Context, id string) error
}

// MusicApplyService defines song request board operations.
type MusicApplyService interface {
	Create(ctx context.Context, apply *MusicApply) error
	GetByID(ctx context.Context, id string) (*MusicApply, error)
	List(ctx context.Context, keyword string) ([]*MusicApply, error)
	Delete(ctx context.Context, id string) error
}
