package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stepup/internal/domain"
)

type boardRepository struct {
	DB *sql.DB
}

func NewBoardRepository(db *sql.DB) domain.BoardRepository {
	return &boardRepository{DB: db}
}

func (r *boardRepository) Create(ctx context.Context, b *domain.Board) error {
	query := `
		INSERT INTO boards (board_type, title, content, writer_id, dance_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var danceID sql.NullString
	if b.DanceID != nil {
		danceID = sql.NullString{String: *b.DanceID, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, b.Type, b.Title, b.Content, b.WriterID, danceID,
		b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
}

func scanBoard(row interface{ Scan(...any) error }) (*domain.Board, error) {
	b := &domain.Board{}
	var danceID sql.NullString
	if err := row.Scan(&b.ID, &b.Type, &b.Title, &b.Content, &b.WriterID, &danceID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if danceID.Valid {
		b.DanceID = &danceID.String
	}
	return b, nil
}

func (r *boardRepository) GetByID(ctx context.Context, boardType domain.BoardType, id string) (*domain.Board, error) {
	query := `
		SELECT id, board_type, title, content, writer_id, dance_id, created_at, updated_at
		FROM boards
		WHERE id = $1 AND board_type = $2
	`
	b, err := scanBoard(r.DB.QueryRowContext(ctx, query, id, boardType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List returns one page of posts of the given type matching keyword in title or content,
// newest first, and the total number of matching posts.
func (r *boardRepository) List(ctx context.Context, boardType domain.BoardType, keyword string, params domain.PaginationParams) ([]*domain.Board, int, error) {
	where := `WHERE board_type = $1 AND (title LIKE '%' || $2 || '%' OR content LIKE '%' || $2 || '%')`

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards `+where, boardType, keyword).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, board_type, title, content, writer_id, dance_id, created_at, updated_at
		FROM boards ` + where + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.QueryContext(ctx, query, boardType, keyword, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Board, 0)
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *boardRepository) Delete(ctx context.Context, boardType domain.BoardType, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM boards WHERE id = $1 AND board_type = $2`, id, boardType)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
