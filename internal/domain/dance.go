package domain

import (
	"context"
	"time"
)

// Limits on the number of songs attached to a dance at creation.
const (
	MinDanceMusic = 2
	MaxDanceMusic = 50
)

// ProgressType filters dance searches by the event's time window.
type ProgressType string

const (
	ProgressScheduled  ProgressType = "SCHEDULED"
	ProgressInProgress ProgressType = "IN_PROGRESS"
	ProgressAll        ProgressType = "ALL"
)

// Valid reports whether p is a known progress type.
func (p ProgressType) Valid() bool {
	switch p {
	case ProgressScheduled, ProgressInProgress, ProgressAll:
		return true
	}
	return false
}

// DanceType is the play mode of a dance.
type DanceType string

const (
	DanceBasic    DanceType = "BASIC"
	DanceRanking  DanceType = "RANKING"
	DanceSurvival DanceType = "SURVIVAL"
)

// DanceEvent is a hosted random-play dance session.
// swagger:model DanceEvent
type DanceEvent struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	HostID    string        `json:"host_id"`
	DanceType DanceType     `json:"dance_type"`
	MaxUser   int           `json:"max_user"`
	StartAt   time.Time     `json:"start_at"`
	EndAt     time.Time     `json:"end_at"`
	Music     []*DanceMusic `json:"music,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewDanceEvent returns a new DanceEvent. ID is set by the repository on create.
func NewDanceEvent(title, content, hostID string, danceType DanceType, maxUser int, startAt, endAt, createdAt, updatedAt time.Time) *DanceEvent {
	if danceType == "" {
		danceType = DanceBasic
	}
	return &DanceEvent{
		Title:     title,
		Content:   content,
		HostID:    hostID,
		DanceType: danceType,
		MaxUser:   maxUser,
		StartAt:   startAt,
		EndAt:     endAt,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// HasValidWindow reports whether the event ends strictly after it starts.
func (d *DanceEvent) HasValidWindow() bool {
	return d.EndAt.After(d.StartAt)
}

// Ended reports whether the event's end time is before now.
func (d *DanceEvent) Ended(now time.Time) bool {
	return d.EndAt.Before(now)
}

// AddMusic attaches music at the next position.
func (d *DanceEvent) AddMusic(m *Music) {
	d.Music = append(d.Music, &DanceMusic{
		DanceID:  d.ID,
		MusicID:  m.ID,
		Position: len(d.Music),
	})
}

// DanceMusic links a dance to a catalog song. Position keeps the order given at creation.
// swagger:model DanceMusic
type DanceMusic struct {
	ID       string `json:"id"`
	DanceID  string `json:"dance_id"`
	MusicID  string `json:"music_id"`
	Position int    `json:"position"`
}

// Reservation is a non-host user's sign-up for a dance.
// swagger:model Reservation
type Reservation struct {
	ID        string    `json:"id"`
	DanceID   string    `json:"dance_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AttendHistory records that a user attended a dance.
// swagger:model AttendHistory
type AttendHistory struct {
	ID        string    `json:"id"`
	DanceID   string    `json:"dance_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DanceSearchResult is a dance annotated for the viewer.
// ReserveStatus is 1 when the viewer hosts or has reserved the dance, otherwise 0.
// swagger:model DanceSearchResult
type DanceSearchResult struct {
	Dance         *DanceEvent  `json:"dance"`
	ProgressType  ProgressType `json:"progress_type"`
	ReserveStatus int          `json:"reserve_status"`
	IsEnd         bool         `json:"is_end"`
}

// DanceUpdate holds the fields accepted by an update. Nil fields are unchanged.
type DanceUpdate struct {
	Title     *string
	Content   *string
	DanceType *DanceType
	MaxUser   *int
	StartAt   *time.Time
	EndAt     *time.Time
	HostID    *string
}

// DanceRepository defines storage for dances, their music, reservations and attendance.
type DanceRepository interface {
	Create(ctx context.Context, dance *DanceEvent) error
	GetByID(ctx context.Context, id string) (*DanceEvent, error)
	Update(ctx context.Context, dance *DanceEvent) error
	Delete(ctx context.Context, id string) error
	ListMusic(ctx context.Context, danceID string) ([]*DanceMusic, error)
	ListByHostID(ctx context.Context, hostID string) ([]*DanceEvent, error)
	ListScheduled(ctx context.Context, keyword string) ([]*DanceEvent, error)
	ListInProgress(ctx context.Context, keyword string) ([]*DanceEvent, error)
	ListAll(ctx context.Context, keyword string) ([]*DanceEvent, error)

	CreateReservation(ctx context.Context, res *Reservation) error
	GetReservationByDanceAndUser(ctx context.Context, danceID, userID string) (*Reservation, error)
	GetReservationByIDAndDance(ctx context.Context, reservationID, danceID string) (*Reservation, error)
	DeleteReservation(ctx context.Context, danceID, userID string) error
	ListReservationsByUserID(ctx context.Context, userID string) ([]*Reservation, error)

	CreateAttend(ctx context.Context, attend *AttendHistory) error
	GetAttendByDanceAndUser(ctx context.Context, danceID, userID string) (*AttendHistory, error)
	ListAttendsByUserID(ctx context.Context, userID string) ([]*AttendHistory, error)
}

// DanceService orchestrates dance hosting, reservation and attendance.
// userID is the authenticated caller; Search accepts an empty userID for anonymous viewers.
type DanceService interface {
	Create(ctx context.Context, userID string, dance *DanceEvent, musicIDs []string) error
	GetByID(ctx context.Context, danceID string) (*DanceEvent, error)
	Update(ctx context.Context, userID, danceID string, upd DanceUpdate) (*DanceEvent, error)
	Delete(ctx context.Context, userID, danceID string) error
	ListMusic(ctx context.Context, danceID string) ([]*Music, error)
	ListHosted(ctx context.Context, userID string) ([]*DanceEvent, error)
	Search(ctx context.Context, userID string, progress ProgressType, keyword string) ([]*DanceSearchResult, error)

	CreateReservation(ctx context.Context, userID, danceID string) (*Reservation, error)
	DeleteReservation(ctx context.Context, userID, danceID string) error
	ListReserved(ctx context.Context, userID string) ([]*DanceEvent, error)

	CreateAttend(ctx context.Context, userID, danceID string) (*AttendHistory, error)
	ListAttended(ctx context.Context, userID string) ([]*DanceEvent, error)
}
