package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stepup/internal/domain"
)

type pointRepository struct {
	DB *sql.DB
}

func NewPointRepository(db *sql.DB) domain.PointRepository {
	return &pointRepository{DB: db}
}

func (r *pointRepository) ListPolicies(ctx context.Context) ([]*domain.PointPolicy, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, point_type, content, point FROM point_policies ORDER BY point_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.PointPolicy, 0)
	for rows.Next() {
		p := &domain.PointPolicy{}
		if err := rows.Scan(&p.ID, &p.PointType, &p.Content, &p.Point); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *pointRepository) GetPolicyByType(ctx context.Context, pointType string) (*domain.PointPolicy, error) {
	query := `SELECT id, point_type, content, point FROM point_policies WHERE point_type = $1`
	p := &domain.PointPolicy{}
	err := r.DB.QueryRowContext(ctx, query, pointType).Scan(&p.ID, &p.PointType, &p.Content, &p.Point)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// GrantPoint records the history row and adds its points to the user's total.
func (r *pointRepository) GrantPoint(ctx context.Context, h *domain.PointHistory) error {
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		var danceID sql.NullString
		if h.DanceID != nil {
			danceID = sql.NullString{String: *h.DanceID, Valid: true}
		}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO point_histories (user_id, policy_id, dance_id, point, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, h.UserID, h.PolicyID, danceID, h.Point, h.CreatedAt).Scan(&h.ID)
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `UPDATE users SET point = point + $1, updated_at = NOW() WHERE id = $2`, h.Point, h.UserID)
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

func (r *pointRepository) ListHistoryByUserID(ctx context.Context, userID string) ([]*domain.PointHistory, error) {
	query := `
		SELECT id, user_id, policy_id, dance_id, point, created_at
		FROM point_histories
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.PointHistory, 0)
	for rows.Next() {
		h := &domain.PointHistory{}
		var danceID sql.NullString
		if err := rows.Scan(&h.ID, &h.UserID, &h.PolicyID, &danceID, &h.Point, &h.CreatedAt); err != nil {
			return nil, err
		}
		if danceID.Valid {
			h.DanceID = &danceID.String
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
