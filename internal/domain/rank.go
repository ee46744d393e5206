package domain

import (
	"context"
	"time"
)

// MaxLeaderboardSize caps the number of users returned by a leaderboard query.
const MaxLeaderboardSize = 100

// PointPolicy defines how many points an activity is worth.
// swagger:model PointPolicy
type PointPolicy struct {
	ID        string `json:"id"`
	PointType string `json:"point_type"`
	Content   string `json:"content"`
	Point     int    `json:"point"`
}

// PointHistory records points granted to a user.
// swagger:model PointHistory
type PointHistory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PolicyID  string    `json:"policy_id"`
	DanceID   *string   `json:"dance_id,omitempty"`
	Point     int       `json:"point"`
	CreatedAt time.Time `json:"created_at"`
}

// PointRepository defines storage for point policies and history.
// GrantPoint inserts the history row and adds its points to the user atomically.
type PointRepository interface {
	ListPolicies(ctx context.Context) ([]*PointPolicy, error)
	GetPolicyByType(ctx context.Context, pointType string) (*PointPolicy, error)
	GrantPoint(ctx context.Context, history *PointHistory) error
	ListHistoryByUserID(ctx context.Context, userID string) ([]*PointHistory, error)
}

// RankService defines point and ranking operations.
type RankService interface {
	ListPolicies(ctx context.Context) ([]*PointPolicy, error)
	UpdatePoint(ctx context.Context, actorID, targetUserID, pointType string, danceID *string) (*PointHistory, error)
	ListPointHistory(ctx context.Context, userID string) ([]*PointHistory, error)
	Leaderboard(ctx context.Context, limit int) ([]*User, error)
}
