package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"stepup/internal/domain"
)

type musicRepository struct {
	DB *sql.DB
}

func NewMusicRepository(db *sql.DB) domain.MusicRepository {
	return &musicRepository{DB: db}
}

func (r *musicRepository) Create(ctx context.Context, m *domain.Music) error {
	query := `
		INSERT INTO music (title, artist, answer, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, m.Title, m.Artist, m.Answer, m.URL, m.CreatedAt).Scan(&m.ID)
}

func (r *musicRepository) GetByID(ctx context.Context, id string) (*domain.Music, error) {
	query := `
		SELECT id, title, artist, answer, url, created_at
		FROM music
		WHERE id = $1
	`
	m := &domain.Music{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.Artist, &m.Answer, &m.URL, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListByIDs returns the music rows whose id is in ids, in no particular order.
func (r *musicRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Music, error) {
	if len(ids) == 0 {
		return []*domain.Music{}, nil
	}
	query := `
		SELECT id, title, artist, answer, url, created_at
		FROM music
		WHERE id = ANY($1)
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return scanMusicRows(rows)
}

func (r *musicRepository) List(ctx context.Context, keyword string) ([]*domain.Music, error) {
	query := `
		SELECT id, title, artist, answer, url, created_at
		FROM music
		WHERE title LIKE '%' || $1 || '%' OR artist LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	return scanMusicRows(rows)
}

func scanMusicRows(rows *sql.Rows) ([]*domain.Music, error) {
	defer rows.Close()
	list := make([]*domain.Music, 0)
	for rows.Next() {
		m := &domain.Music{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Artist, &m.Answer, &m.URL, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete removes a catalog song. A song still attached to a dance is
// protected by the dance_music foreign key and yields ErrMusicInUse.
func (r *musicRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM music WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrMusicInUse
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
