package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stepup/internal/domain"
)

type danceRepository struct {
	DB *sql.DB
}

func NewDanceRepository(db *sql.DB) domain.DanceRepository {
	return &danceRepository{
		DB: db,
	}
}

const danceColumns = `id, title, content, host_id, dance_type, max_user, start_at, end_at, created_at, updated_at`

func scanDance(row interface{ Scan(...any) error }) (*domain.DanceEvent, error) {
	d := &domain.DanceEvent{}
	err := row.Scan(&d.ID, &d.Title, &d.Content, &d.HostID, &d.DanceType, &d.MaxUser,
		&d.StartAt, &d.EndAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *danceRepository) listDances(ctx context.Context, query string, args ...any) ([]*domain.DanceEvent, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	dances := make([]*domain.DanceEvent, 0)
	for rows.Next() {
		d, err := scanDance(rows)
		if err != nil {
			return nil, err
		}
		dances = append(dances, d)
	}
	return dances, rows.Err()
}

// Create inserts the dance and its attached music in one transaction.
func (r *danceRepository) Create(ctx context.Context, d *domain.DanceEvent) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO dances (title, content, host_id, dance_type, max_user, start_at, end_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`
		err := tx.QueryRowContext(ctx, query, d.Title, d.Content, d.HostID, d.DanceType, d.MaxUser,
			d.StartAt, d.EndAt, d.CreatedAt, d.UpdatedAt).Scan(&d.ID)
		if err != nil {
			return err
		}
		for _, dm := range d.Music {
			dm.DanceID = d.ID
			err := tx.QueryRowContext(ctx, `
				INSERT INTO dance_music (dance_id, music_id, position)
				VALUES ($1, $2, $3)
				RETURNING id
			`, dm.DanceID, dm.MusicID, dm.Position).Scan(&dm.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *danceRepository) GetByID(ctx context.Context, id string) (*domain.DanceEvent, error) {
	query := `SELECT ` + danceColumns + ` FROM dances WHERE id = $1`
	d, err := scanDance(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *danceRepository) Update(ctx context.Context, d *domain.DanceEvent) error {
	query := `
		UPDATE dances
		SET title = $1, content = $2, host_id = $3, dance_type = $4, max_user = $5, start_at = $6, end_at = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query, d.Title, d.Content, d.HostID, d.DanceType, d.MaxUser,
		d.StartAt, d.EndAt, d.UpdatedAt, d.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the dance together with its reservations, attendance and music links.
func (r *danceRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		for _, q := range []string{
			`DELETE FROM reservations WHERE dance_id = $1`,
			`DELETE FROM attend_histories WHERE dance_id = $1`,
			`DELETE FROM dance_music WHERE dance_id = $1`,
		} {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return err
			}
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM dances WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *danceRepository) ListMusic(ctx context.Context, danceID string) ([]*domain.DanceMusic, error) {
	query := `
		SELECT id, dance_id, music_id, position
		FROM dance_music
		WHERE dance_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, danceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.DanceMusic, 0)
	for rows.Next() {
		dm := &domain.DanceMusic{}
		if err := rows.Scan(&dm.ID, &dm.DanceID, &dm.MusicID, &dm.Position); err != nil {
			return nil, err
		}
		list = append(list, dm)
	}
	return list, rows.Err()
}

func (r *danceRepository) ListByHostID(ctx context.Context, hostID string) ([]*domain.DanceEvent, error) {
	query := `SELECT ` + danceColumns + ` FROM dances WHERE host_id = $1 ORDER BY start_at`
	return r.listDances(ctx, query, hostID)
}

// ListScheduled returns dances that have not started yet, by the database clock.
func (r *danceRepository) ListScheduled(ctx context.Context, keyword string) ([]*domain.DanceEvent, error) {
	query := `SELECT ` + danceColumns + ` FROM dances
		WHERE start_at > NOW() AND title LIKE '%' || $1 || '%'
		ORDER BY start_at`
	return r.listDances(ctx, query, keyword)
}

// ListInProgress returns dances that have started and not yet ended, by the database clock.
func (r *danceRepository) ListInProgress(ctx context.Context, keyword string) ([]*domain.DanceEvent, error) {
	query := `SELECT ` + danceColumns + ` FROM dances
		WHERE start_at <= NOW() AND end_at >= NOW() AND title LIKE '%' || $1 || '%'
		ORDER BY start_at`
	return r.listDances(ctx, query, keyword)
}

func (r *danceRepository) ListAll(ctx context.Context, keyword string) ([]*domain.DanceEvent, error) {
	query := `SELECT ` + danceColumns + ` FROM dances
		WHERE title LIKE '%' || $1 || '%'
		ORDER BY start_at`
	return r.listDances(ctx, query, keyword)
}

func (r *danceRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (dance_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, res.DanceID, res.UserID, res.CreatedAt).Scan(&res.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReservationDuplicated
		}
		return err
	}
	return nil
}

func (r *danceRepository) getReservation(ctx context.Context, query string, args ...any) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.DanceID, &res.UserID, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *danceRepository) GetReservationByDanceAndUser(ctx context.Context, danceID, userID string) (*domain.Reservation, error) {
	query := `
		SELECT id, dance_id, user_id, created_at
		FROM reservations
		WHERE dance_id = $1 AND user_id = $2
	`
	return r.getReservation(ctx, query, danceID, userID)
}

func (r *danceRepository) GetReservationByIDAndDance(ctx context.Context, reservationID, danceID string) (*domain.Reservation, error) {
	query := `
		SELECT id, dance_id, user_id, created_at
		FROM reservations
		WHERE id = $1 AND dance_id = $2
	`
	return r.getReservation(ctx, query, reservationID, danceID)
}

func (r *danceRepository) DeleteReservation(ctx context.Context, danceID, userID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reservations WHERE dance_id = $1 AND user_id = $2`, danceID, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *danceRepository) ListReservationsByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `
		SELECT id, dance_id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.Reservation
	for rows.Next() {
		res := &domain.Reservation{}
		if err := rows.Scan(&res.ID, &res.DanceID, &res.UserID, &res.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	return list, nil
}

func (r *danceRepository) CreateAttend(ctx context.Context, a *domain.AttendHistory) error {
	query := `
		INSERT INTO attend_histories (dance_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.DanceID, a.UserID, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAttendDuplicated
		}
		return err
	}
	return nil
}

func (r *danceRepository) GetAttendByDanceAndUser(ctx context.Context, danceID, userID string) (*domain.AttendHistory, error) {
	query := `
		SELECT id, dance_id, user_id, created_at
		FROM attend_histories
		WHERE dance_id = $1 AND user_id = $2
	`
	a := &domain.AttendHistory{}
	err := r.DB.QueryRowContext(ctx, query, danceID, userID).Scan(&a.ID, &a.DanceID, &a.UserID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *danceRepository) ListAttendsByUserID(ctx context.Context, userID string) ([]*domain.AttendHistory, error) {
	query := `
		SELECT id, dance_id, user_id, created_at
		FROM attend_histories
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.AttendHistory, 0)
	for rows.Next() {
		a := &domain.AttendHistory{}
		if err := rows.Scan(&a.ID, &a.DanceID, &a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
