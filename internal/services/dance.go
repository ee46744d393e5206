package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"stepup/internal/domain"
)

type danceService struct {
	danceRepo      domain.DanceRepository
	userRepo       domain.UserRepository
	musicRepo      domain.MusicRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewDanceService creates a DanceService. emailService may be nil to disable host notifications.
func NewDanceService(danceRepo domain.DanceRepository,
	userRepo domain.UserRepository,
	musicRepo domain.MusicRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DanceService {
	return &danceService{
		danceRepo:      danceRepo,
		userRepo:       userRepo,
		musicRepo:      musicRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *danceService) getDance(ctx context.Context, id string) (*domain.DanceEvent, error) {
	d, err := s.danceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrDanceNotFound, "get dance")
	}
	return d, nil
}

func (s *danceService) Create(ctx context.Context, userID string, dance *domain.DanceEvent, musicIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	host, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	if !dance.HasValidWindow() {
		return domain.ErrDanceInvalidTime
	}
	if len(musicIDs) < domain.MinDanceMusic || len(musicIDs) > domain.MaxDanceMusic {
		return domain.ErrDanceInvalidMusic
	}

	dance.Music = nil
	for _, id := range musicIDs {
		m, err := s.musicRepo.GetByID(ctx, id)
		if err != nil {
			return notFoundAs(err, domain.ErrMusicNotFound, "get music")
		}
		dance.AddMusic(m)
	}

	now := s.now()
	dance.HostID = host.ID
	if dance.DanceType == "" {
		dance.DanceType = domain.DanceBasic
	}
	dance.CreatedAt = now
	dance.UpdatedAt = now
	if err := s.danceRepo.Create(ctx, dance); err != nil {
		return fmt.Errorf("create dance: %w", err)
	}
	return nil
}

func (s *danceService) GetByID(ctx context.Context, id string) (*domain.DanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	d, err := s.getDance(ctx, id)
	if err != nil {
		return nil, err
	}
	music, err := s.danceRepo.ListMusic(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list dance music: %w", err)
	}
	d.Music = music
	return d, nil
}

// Update applies the non-nil fields of upd. The music list is never changed.
func (s *danceService) Update(ctx context.Context, userID, danceID string, upd domain.DanceUpdate) (*domain.DanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	d, err := s.getDance(ctx, danceID)
	if err != nil {
		return nil, err
	}
	if d.HostID != user.ID {
		return nil, domain.ErrDanceUpdateForbidden
	}

	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Content != nil {
		d.Content = *upd.Content
	}
	if upd.DanceType != nil {
		d.DanceType = *upd.DanceType
	}
	if upd.MaxUser != nil {
		d.MaxUser = *upd.MaxUser
	}
	if upd.StartAt != nil {
		d.StartAt = *upd.StartAt
	}
	if upd.EndAt != nil {
		d.EndAt = *upd.EndAt
	}
	if !d.HasValidWindow() {
		return nil, domain.ErrDanceInvalidTime
	}
	if upd.HostID != nil && *upd.HostID != d.HostID {
		newHost, err := getUser(ctx, s.userRepo, *upd.HostID)
		if err != nil {
			return nil, err
		}
		d.HostID = newHost.ID
	}
	d.UpdatedAt = s.now()

	if err := s.danceRepo.Update(ctx, d); err != nil {
		return nil, notFoundAs(err, domain.ErrDanceNotFound, "update dance")
	}
	return d, nil
}

func (s *danceService) Delete(ctx context.Context, userID, danceID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	d, err := s.getDance(ctx, danceID)
	if err != nil {
		return err
	}
	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	if d.HostID != user.ID {
		return domain.ErrDanceDeleteForbidden
	}
	if err := s.danceRepo.Delete(ctx, danceID); err != nil {
		return notFoundAs(err, domain.ErrDanceNotFound, "delete dance")
	}
	return nil
}

// ListMusic returns the catalog entries attached to a dance in their stored order.
func (s *danceService) ListMusic(ctx context.Context, danceID string) ([]*domain.Music, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.getDance(ctx, danceID); err != nil {
		return nil, err
	}
	links, err := s.danceRepo.ListMusic(ctx, danceID)
	if err != nil {
		return nil, fmt.Errorf("list dance music: %w", err)
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.MusicID)
	}
	found, err := s.musicRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list music: %w", err)
	}
	byID := make(map[string]*domain.Music, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}
	music := make([]*domain.Music, 0, len(links))
	for _, l := range links {
		m, ok := byID[l.MusicID]
		if !ok {
			return nil, domain.ErrMusicNotFound
		}
		music = append(music, m)
	}
	return music, nil
}

func (s *danceService) ListHosted(ctx context.Context, userID string) ([]*domain.DanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := getUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	dances, err := s.danceRepo.ListByHostID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list hosted dances: %w", err)
	}
	return dances, nil
}

// Search lists dances for the progress filter and keyword, annotated for the caller.
// An empty userID is an anonymous caller whose reserve status is always 0.
// Results are ordered with unfinished dances first, then by start time.
func (s *danceService) Search(ctx context.Context, userID string, progress domain.ProgressType, keyword string) ([]*domain.DanceSearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !progress.Valid() {
		return nil, domain.ErrDanceInvalidProgressType
	}

	reserved := map[string]bool{}
	if userID != "" {
		user, err := getUser(ctx, s.userRepo, userID)
		if err != nil {
			return nil, err
		}
		userID = user.ID
		reservations, err := s.danceRepo.ListReservationsByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list reservations: %w", err)
		}
		for _, r := range reservations {
			reserved[r.DanceID] = true
		}
	}

	var (
		dances []*domain.DanceEvent
		err    error
	)
	switch progress {
	case domain.ProgressScheduled:
		dances, err = s.danceRepo.ListScheduled(ctx, keyword)
	case domain.ProgressInProgress:
		dances, err = s.danceRepo.ListInProgress(ctx, keyword)
	default:
		dances, err = s.danceRepo.ListAll(ctx, keyword)
	}
	if err != nil {
		return nil, fmt.Errorf("search dances: %w", err)
	}

	now := s.now()
	results := make([]*domain.DanceSearchResult, 0, len(dances))
	for _, d := range dances {
		status := 0
		if userID != "" && (d.HostID == userID || reserved[d.ID]) {
			status = 1
		}
		results = append(results, &domain.DanceSearchResult{
			Dance:         d,
			ProgressType:  progress,
			ReserveStatus: status,
			IsEnd:         d.Ended(now),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.IsEnd != b.IsEnd {
			return !a.IsEnd
		}
		return a.Dance.StartAt.Before(b.Dance.StartAt)
	})
	return results, nil
}

func (s *danceService) CreateReservation(ctx context.Context, userID, danceID string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	d, err := s.getDance(ctx, danceID)
	if err != nil {
		return nil, err
	}
	if d.HostID == user.ID {
		return nil, domain.ErrReservationImpossible
	}
	_, err = s.danceRepo.GetReservationByDanceAndUser(ctx, danceID, user.ID)
	if err == nil {
		return nil, domain.ErrReservationDuplicated
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res := &domain.Reservation{DanceID: danceID, UserID: user.ID, CreatedAt: s.now()}
	if err := s.danceRepo.CreateReservation(ctx, res); err != nil {
		if errors.Is(err, domain.ErrDuplicated) {
			return nil, domain.ErrReservationDuplicated
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.notifyHost(ctx, d, user)
	return res, nil
}

// notifyHost emails the host about a new reservation when they opted in.
// Failures are logged; the reservation already stands.
func (s *danceService) notifyHost(ctx context.Context, d *domain.DanceEvent, guest *domain.User) {
	if s.emailService == nil {
		return
	}
	host, err := s.userRepo.GetByID(ctx, d.HostID)
	if err != nil {
		s.logger.WarnContext(ctx, "reservation notice skipped", "dance_id", d.ID, "err", err)
		return
	}
	if !host.EmailAlert || host.Email == "" {
		return
	}
	data := &domain.ReservationEmailData{
		Email:        host.Email,
		HostNickname: host.Nickname,
		GuestName:    guest.Nickname,
		DanceTitle:   d.Title,
		StartAt:      d.StartAt,
	}
	if err := s.emailService.SendReservationNotice(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "reservation notice failed", "dance_id", d.ID, "host_id", host.ID, "err", err)
	}
}

func (s *danceService) DeleteReservation(ctx context.Context, userID, danceID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	if _, err := s.getDance(ctx, danceID); err != nil {
		return err
	}
	res, err := s.danceRepo.GetReservationByDanceAndUser(ctx, danceID, user.ID)
	if err != nil {
		return notFoundAs(err, domain.ErrReservationNotFound, "get reservation")
	}
	res, err = s.danceRepo.GetReservationByIDAndDance(ctx, res.ID, danceID)
	if err != nil {
		return notFoundAs(err, domain.ErrReservationNotFound, "get reservation")
	}
	if res.UserID != user.ID {
		return domain.ErrReservationDeleteForbidden
	}
	if err := s.danceRepo.DeleteReservation(ctx, danceID, user.ID); err != nil {
		return notFoundAs(err, domain.ErrReservationNotFound, "delete reservation")
	}
	return nil
}

// ListReserved returns the dances the user holds a reservation for, newest reservation first.
func (s *danceService) ListReserved(ctx context.Context, userID string) ([]*domain.DanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := getUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	reservations, err := s.danceRepo.ListReservationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.DanceID)
	}
	return s.loadDances(ctx, ids)
}

func (s *danceService) CreateAttend(ctx context.Context, userID, danceID string) (*domain.AttendHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getDance(ctx, danceID); err != nil {
		return nil, err
	}
	_, err = s.danceRepo.GetAttendByDanceAndUser(ctx, danceID, user.ID)
	if err == nil {
		return nil, domain.ErrAttendDuplicated
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get attend: %w", err)
	}

	a := &domain.AttendHistory{DanceID: danceID, UserID: user.ID, CreatedAt: s.now()}
	if err := s.danceRepo.CreateAttend(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicated) {
			return nil, domain.ErrAttendDuplicated
		}
		return nil, fmt.Errorf("create attend: %w", err)
	}
	return a, nil
}

func (s *danceService) ListAttended(ctx context.Context, userID string) ([]*domain.DanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := getUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	attends, err := s.danceRepo.ListAttendsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list attends: %w", err)
	}
	ids := make([]string, 0, len(attends))
	for _, a := range attends {
		ids = append(ids, a.DanceID)
	}
	return s.loadDances(ctx, ids)
}

// loadDances resolves dance ids in order, skipping dances deleted since the link was read.
func (s *danceService) loadDances(ctx context.Context, ids []string) ([]*domain.DanceEvent, error) {
	dances := make([]*domain.DanceEvent, 0, len(ids))
	for _, id := range ids {
		d, err := s.danceRepo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get dance: %w", err)
		}
		dances = append(dances, d)
	}
	return dances, nil
}
