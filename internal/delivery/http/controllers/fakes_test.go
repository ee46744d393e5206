package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/delivery/http/middleware"
	"stepup/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	danceUUID = "11111111-1111-1111-1111-111111111111"
	musicUUID = "22222222-2222-2222-2222-222222222222"
	otherUUID = "33333333-3333-3333-3333-333333333333"
	boardUUID = "44444444-4444-4444-4444-444444444444"
	userUUID  = "55555555-5555-5555-5555-555555555555"
)

// decodeEnvelope reads the response body into the API envelope and re-decodes Data into dest when set.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) helpers.APIResponse {
	t.Helper()
	var env helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	if dest != nil && env.Data != nil {
		b, err := json.Marshal(env.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(b, dest))
	}
	return env
}

func asUser(r *http.Request, userID string) *http.Request {
	if userID == "" {
		return r
	}
	return r.WithContext(middleware.SetUserID(r.Context(), userID))
}

type fakeUserService struct {
	signUpIn  domain.SignUpInput
	user      *domain.User
	pair      *domain.TokenPair
	err       error
	lastLogin [2]string
}

func (f *fakeUserService) SignUp(_ context.Context, in domain.SignUpInput) (*domain.User, error) {
	f.signUpIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) Login(_ context.Context, username, password string) (*domain.TokenPair, error) {
	f.lastLogin = [2]string{username, password}
	if f.err != nil {
		return nil, f.err
	}
	return f.pair, nil
}

func (f *fakeUserService) Refresh(_ context.Context, _ string) (*domain.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pair, nil
}

func (f *fakeUserService) GetByID(_ context.Context, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeDanceService struct {
	err error

	created      *domain.DanceEvent
	createdMusic []string
	dance        *domain.DanceEvent
	dances       []*domain.DanceEvent
	music        []*domain.Music
	update       domain.DanceUpdate
	results      []*domain.DanceSearchResult
	reservation  *domain.Reservation
	attend       *domain.AttendHistory

	lastUserID   string
	lastDanceID  string
	lastProgress domain.ProgressType
	lastKeyword  string
}

func (f *fakeDanceService) Create(_ context.Context, userID string, d *domain.DanceEvent, musicIDs []string) error {
	f.lastUserID = userID
	f.created = d
	f.createdMusic = musicIDs
	if f.err != nil {
		return f.err
	}
	d.ID = danceUUID
	d.HostID = userID
	return nil
}

func (f *fakeDanceService) GetByID(_ context.Context, id string) (*domain.DanceEvent, error) {
	f.lastDanceID = id
	return f.dance, f.err
}

func (f *fakeDanceService) Update(_ context.Context, userID, danceID string, upd domain.DanceUpdate) (*domain.DanceEvent, error) {
	f.lastUserID, f.lastDanceID, f.update = userID, danceID, upd
	return f.dance, f.err
}

func (f *fakeDanceService) Delete(_ context.Context, userID, danceID string) error {
	f.lastUserID, f.lastDanceID = userID, danceID
	return f.err
}

func (f *fakeDanceService) ListMusic(_ context.Context, danceID string) ([]*domain.Music, error) {
	f.lastDanceID = danceID
	return f.music, f.err
}

func (f *fakeDanceService) ListHosted(_ context.Context, userID string) ([]*domain.DanceEvent, error) {
	f.lastUserID = userID
	return f.dances, f.err
}

func (f *fakeDanceService) Search(_ context.Context, userID string, progress domain.ProgressType, keyword string) ([]*domain.DanceSearchResult, error) {
	f.lastUserID, f.lastProgress, f.lastKeyword = userID, progress, keyword
	return f.results, f.err
}

func (f *fakeDanceService) CreateReservation(_ context.Context, userID, danceID string) (*domain.Reservation, error) {
	f.lastUserID, f.lastDanceID = userID, danceID
	return f.reservation, f.err
}

func (f *fakeDanceService) DeleteReservation(_ context.Context, userID, danceID string) error {
	f.lastUserID, f.lastDanceID = userID, danceID
	return f.err
}

func (f *fakeDanceService) ListReserved(_ context.Context, userID string) ([]*domain.DanceEvent, error) {
	f.lastUserID = userID
	return f.dances, f.err
}

func (f *fakeDanceService) CreateAttend(_ context.Context, userID, danceID string) (*domain.AttendHistory, error) {
	f.lastUserID, f.lastDanceID = userID, danceID
	return f.attend, f.err
}

func (f *fakeDanceService) ListAttended(_ context.Context, userID string) ([]*domain.DanceEvent, error) {
	f.lastUserID = userID
	return f.dances, f.err
}

type fakeMusicService struct {
	err         error
	created     *domain.Music
	music       *domain.Music
	list        []*domain.Music
	lastKeyword string
	deletedID   string
}

func (f *fakeMusicService) Create(_ context.Context, m *domain.Music) error {
	f.created = m
	if f.err != nil {
		return f.err
	}
	m.ID = musicUUID
	return nil
}

func (f *fakeMusicService) GetByID(_ context.Context, _ string) (*domain.Music, error) {
	return f.music, f.err
}

func (f *fakeMusicService) List(_ context.Context, keyword string) ([]*domain.Music, error) {
	f.lastKeyword = keyword
	return f.list, f.err
}

func (f *fakeMusicService) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type fakeMusicApplyService struct {
	err         error
	created     *domain.MusicApply
	apply       *domain.MusicApply
	list        []*domain.MusicApply
	lastKeyword string
	deletedID   string
}

func (f *fakeMusicApplyService) Create(_ context.Context, a *domain.MusicApply) error {
	f.created = a
	if f.err != nil {
		return f.err
	}
	a.ID = otherUUID
	return nil
}

func (f *fakeMusicApplyService) GetByID(_ context.Context, _ string) (*domain.MusicApply, error) {
	return f.apply, f.err
}

func (f *fakeMusicApplyService) List(_ context.Context, keyword string) ([]*domain.MusicApply, error) {
	f.lastKeyword = keyword
	return f.list, f.err
}

func (f *fakeMusicApplyService) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type fakeBoardService struct {
	err        error
	created    *domain.Board
	board      *domain.Board
	list       []*domain.Board
	total      int
	lastType   domain.BoardType
	lastParams domain.PaginationParams
	lastUserID string
}

func (f *fakeBoardService) Create(_ context.Context, userID string, b *domain.Board) error {
	f.lastUserID, f.created = userID, b
	if f.err != nil {
		return f.err
	}
	b.ID = boardUUID
	b.WriterID = userID
	return nil
}

func (f *fakeBoardService) GetByID(_ context.Context, boardType domain.BoardType, _ string) (*domain.Board, error) {
	f.lastType = boardType
	return f.board, f.err
}

func (f *fakeBoardService) List(_ context.Context, boardType domain.BoardType, _ string, params domain.PaginationParams) ([]*domain.Board, int, error) {
	f.lastType, f.lastParams = boardType, params
	return f.list, f.total, f.err
}

func (f *fakeBoardService) Delete(_ context.Context, userID string, boardType domain.BoardType, _ string) error {
	f.lastUserID, f.lastType = userID, boardType
	return f.err
}

type fakeRankService struct {
	err       error
	policies  []*domain.PointPolicy
	history   *domain.PointHistory
	histories []*domain.PointHistory
	users     []*domain.User

	lastActor     string
	lastTarget    string
	lastPointType string
	lastDanceID   *string
	lastLimit     int
}

func (f *fakeRankService) ListPolicies(context.Context) ([]*domain.PointPolicy, error) {
	return f.policies, f.err
}

func (f *fakeRankService) UpdatePoint(_ context.Context, actorID, targetUserID, pointType string, danceID *string) (*domain.PointHistory, error) {
	f.lastActor, f.lastTarget, f.lastPointType, f.lastDanceID = actorID, targetUserID, pointType, danceID
	return f.history, f.err
}

func (f *fakeRankService) ListPointHistory(_ context.Context, userID string) ([]*domain.PointHistory, error) {
	f.lastTarget = userID
	return f.histories, f.err
}

func (f *fakeRankService) Leaderboard(_ context.Context, limit int) ([]*domain.User, error) {
	f.lastLimit = limit
	return f.users, f.err
}
