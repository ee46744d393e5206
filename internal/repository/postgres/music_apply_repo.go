package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stepup/internal/domain"
)

type musicApplyRepository struct {
	DB *sql.DB
}

func NewMusicApplyRepository(db *sql.DB) domain.MusicApplyRepository {
	return &musicApplyRepository{DB: db}
}

func (r *musicApplyRepository) Create(ctx context.Context, a *domain.MusicApply) error {
	query := `
		INSERT INTO music_applies (title, artist, content, writer_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.Title, a.Artist, a.Content, a.WriterID, a.CreatedAt).Scan(&a.ID)
}

func (r *musicApplyRepository) GetByID(ctx context.Context, id string) (*domain.MusicApply, error) {
	query := `
		SELECT id, title, artist, content, writer_id, created_at
		FROM music_applies
		WHERE id = $1
	`
	a := &domain.MusicApply{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Title, &a.Artist, &a.Content, &a.WriterID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *musicApplyRepository) List(ctx context.Context, keyword string) ([]*domain.MusicApply, error) {
	query := `
		SELECT id, title, artist, content, writer_id, created_at
		FROM music_applies
		WHERE title LIKE '%' || $1 || '%' OR artist LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applies := make([]*domain.MusicApply, 0)
	for rows.Next() {
		a := &domain.MusicApply{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Artist, &a.Content, &a.WriterID, &a.CreatedAt); err != nil {
			return nil, err
		}
		applies = append(applies, a)
	}
	return applies, rows.Err()
}

func (r *musicApplyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM music_applies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
