package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"stepup/internal/domain"
)

const testTimeout = 5 * time.Second

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID   map[string]*domain.User
	nextID int
	points map[string]int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User), nextID: 1}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return domain.ErrUserDuplicated
		}
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	for _, u := range f.byID {
		if token != "" && u.RefreshToken == token {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, id, token string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.RefreshToken = token
	return nil
}

func (f *fakeUserRepo) ListTopByPoint(ctx context.Context, limit int) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Point != out[j].Point {
			return out[i].Point > out[j].Point
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeMusicRepo is an in-memory MusicRepository for tests.
type fakeMusicRepo struct {
	byID     map[string]*domain.Music
	order    []string
	nextID   int
	// attached marks songs referenced by a dance; deleting them fails like the FK does.
	attached map[string]bool
}

func newFakeMusicRepo(ids ...string) *fakeMusicRepo {
	f := &fakeMusicRepo{byID: make(map[string]*domain.Music), nextID: 1}
	for _, id := range ids {
		f.byID[id] = &domain.Music{ID: id, Title: "title " + id, Artist: "artist " + id}
		f.order = append(f.order, id)
	}
	return f
}

func (f *fakeMusicRepo) Create(ctx context.Context, m *domain.Music) error {
	m.ID = fmt.Sprintf("music-%d", f.nextID)
	f.nextID++
	f.byID[m.ID] = m
	f.order = append(f.order, m.ID)
	return nil
}

func (f *fakeMusicRepo) GetByID(ctx context.Context, id string) (*domain.Music, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMusicRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Music, error) {
	out := make([]*domain.Music, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if m, ok := f.byID[ids[i]]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMusicRepo) List(ctx context.Context, keyword string) ([]*domain.Music, error) {
	out := make([]*domain.Music, 0)
	for _, id := range f.order {
		m, ok := f.byID[id]
		if ok && (strings.Contains(m.Title, keyword) || strings.Contains(m.Artist, keyword)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMusicRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	if f.attached[id] {
		return domain.ErrMusicInUse
	}
	delete(f.byID, id)
	return nil
}

type pairKey struct{ danceID, userID string }

// fakeDanceRepo is an in-memory DanceRepository. Like the database it enforces
// one reservation and one attendance row per (dance, user).
type fakeDanceRepo struct {
	byID         map[string]*domain.DanceEvent
	order        []string
	music        map[string][]*domain.DanceMusic
	reservations map[pairKey]*domain.Reservation
	attends      map[pairKey]*domain.AttendHistory
	resOrder     []pairKey
	attendOrder  []pairKey
	nextID       int
	createErr    error
}

func newFakeDanceRepo() *fakeDanceRepo {
	return &fakeDanceRepo{
		byID:         make(map[string]*domain.DanceEvent),
		music:        make(map[string][]*domain.DanceMusic),
		reservations: make(map[pairKey]*domain.Reservation),
		attends:      make(map[pairKey]*domain.AttendHistory),
		nextID:       1,
	}
}

func (f *fakeDanceRepo) id(prefix string) string {
	id := fmt.Sprintf("%s-%d", prefix, f.nextID)
	f.nextID++
	return id
}

func (f *fakeDanceRepo) put(d *domain.DanceEvent) *domain.DanceEvent {
	if d.ID == "" {
		d.ID = f.id("dance")
	}
	f.byID[d.ID] = d
	f.order = append(f.order, d.ID)
	return d
}

func (f *fakeDanceRepo) Create(ctx context.Context, d *domain.DanceEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.put(d)
	links := make([]*domain.DanceMusic, 0, len(d.Music))
	for _, dm := range d.Music {
		dm.ID = f.id("dm")
		dm.DanceID = d.ID
		links = append(links, &domain.DanceMusic{ID: dm.ID, DanceID: d.ID, MusicID: dm.MusicID, Position: dm.Position})
	}
	f.music[d.ID] = links
	return nil
}

func (f *fakeDanceRepo) GetByID(ctx context.Context, id string) (*domain.DanceEvent, error) {
	if d, ok := f.byID[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDanceRepo) Update(ctx context.Context, d *domain.DanceEvent) error {
	if _, ok := f.byID[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	f.byID[d.ID] = &cp
	return nil
}

func (f *fakeDanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.music, id)
	for k := range f.reservations {
		if k.danceID == id {
			delete(f.reservations, k)
		}
	}
	for k := range f.attends {
		if k.danceID == id {
			delete(f.attends, k)
		}
	}
	return nil
}

func (f *fakeDanceRepo) ListMusic(ctx context.Context, danceID string) ([]*domain.DanceMusic, error) {
	links := f.music[danceID]
	if links == nil {
		return []*domain.DanceMusic{}, nil
	}
	return links, nil
}

func (f *fakeDanceRepo) filter(keep func(d *domain.DanceEvent) bool) []*domain.DanceEvent {
	out := make([]*domain.DanceEvent, 0)
	for _, id := range f.order {
		if d, ok := f.byID[id]; ok && keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (f *fakeDanceRepo) ListByHostID(ctx context.Context, hostID string) ([]*domain.DanceEvent, error) {
	return f.filter(func(d *domain.DanceEvent) bool { return d.HostID == hostID }), nil
}

func (f *fakeDanceRepo) ListScheduled(ctx context.Context, keyword string) ([]*domain.DanceEvent, error) {
	now := time.Now()
	return f.filter(func(d *domain.DanceEvent) bool {
		return d.StartAt.After(now) && strings.Contains(d.Title, keyword)
	}), nil
}

func (f *fakeDanceRepo) ListInProgress(ctx context.Context, keyword string) ([]*domain.DanceEvent, error) {
	now := time.Now()
	return f.filter(func(d *domain.DanceEvent) bool {
		return !d.StartAt.After(now) && !d.EndAt.Before(now) && strings.Contains(d.Title, keyword)
	}), nil
}

func (f *fakeDanceRepo) ListAll(ctx context.Context, keyword string) ([]*domain.DanceEvent, error) {
	return f.filter(func(d *domain.DanceEvent) bool { return strings.Contains(d.Title, keyword) }), nil
}

func (f *fakeDanceRepo) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	k := pairKey{res.DanceID, res.UserID}
	if _, ok := f.reservations[k]; ok {
		return domain.ErrReservationDuplicated
	}
	res.ID = f.id("res")
	f.reservations[k] = res
	f.resOrder = append(f.resOrder, k)
	return nil
}

func (f *fakeDanceRepo) GetReservationByDanceAndUser(ctx context.Context, danceID, userID string) (*domain.Reservation, error) {
	if r, ok := f.reservations[pairKey{danceID, userID}]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDanceRepo) GetReservationByIDAndDance(ctx context.Context, reservationID, danceID string) (*domain.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == reservationID && r.DanceID == danceID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDanceRepo) DeleteReservation(ctx context.Context, danceID, userID string) error {
	k := pairKey{danceID, userID}
	if _, ok := f.reservations[k]; !ok {
		return domain.ErrNotFound
	}
	delete(f.reservations, k)
	return nil
}

func (f *fakeDanceRepo) ListReservationsByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, k := range f.resOrder {
		if r, ok := f.reservations[k]; ok && k.userID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDanceRepo) CreateAttend(ctx context.Context, a *domain.AttendHistory) error {
	k := pairKey{a.DanceID, a.UserID}
	if _, ok := f.attends[k]; ok {
		return domain.ErrAttendDuplicated
	}
	a.ID = f.id("attend")
	f.attends[k] = a
	f.attendOrder = append(f.attendOrder, k)
	return nil
}

func (f *fakeDanceRepo) GetAttendByDanceAndUser(ctx context.Context, danceID, userID string) (*domain.AttendHistory, error) {
	if a, ok := f.attends[pairKey{danceID, userID}]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDanceRepo) ListAttendsByUserID(ctx context.Context, userID string) ([]*domain.AttendHistory, error) {
	out := make([]*domain.AttendHistory, 0)
	for _, k := range f.attendOrder {
		if a, ok := f.attends[k]; ok && k.userID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeEmailService records reservation notices.
type fakeEmailService struct {
	sent []*domain.ReservationEmailData
	err  error
}

func (f *fakeEmailService) SendReservationNotice(ctx context.Context, data *domain.ReservationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
