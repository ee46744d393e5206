package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"stepup/internal/domain"
)

var boardRowColumns = []string{"id", "board_type", "title", "content", "writer_id", "dance_id", "created_at", "updated_at"}

func TestBoardRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	danceID := "dance-1"
	mock.ExpectQuery(`INSERT INTO boards \(board_type, title, content, writer_id, dance_id, created_at, updated_at\)`).
		WithArgs(domain.BoardNotice, "Rain check", "moved indoors", "admin-1", danceID, ts, ts).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b-1"))

	b := &domain.Board{Type: domain.BoardNotice, Title: "Rain check", Content: "moved indoors", WriterID: "admin-1",
		DanceID: &danceID, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, NewBoardRepository(db).Create(context.Background(), b))
	require.Equal(t, "b-1", b.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("talk post without dance", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM boards WHERE id = \$1 AND board_type = \$2`).
			WithArgs("b-1", domain.BoardTalk).
			WillReturnRows(sqlmock.NewRows(boardRowColumns).AddRow("b-1", "TALK", "hi", "hello", "user-1", nil, ts, ts))

		got, err := NewBoardRepository(db).GetByID(ctx, domain.BoardTalk, "b-1")
		require.NoError(t, err)
		require.Equal(t, domain.BoardTalk, got.Type)
		require.Nil(t, got.DanceID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong type is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM boards WHERE id = \$1 AND board_type = \$2`).
			WithArgs("b-1", domain.BoardNotice).
			WillReturnError(sql.ErrNoRows)

		_, err = NewBoardRepository(db).GetByID(ctx, domain.BoardNotice, "b-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBoardRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM boards WHERE board_type = \$1`).
		WithArgs(domain.BoardNotice, "rain").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`FROM boards WHERE board_type = \$1 (.+) ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(domain.BoardNotice, "rain", 2, 2).
		WillReturnRows(sqlmock.NewRows(boardRowColumns).AddRow("b-3", "NOTICE", "rain", "", "admin-1", "dance-1", ts, ts))

	list, total, err := NewBoardRepository(db).List(context.Background(), domain.BoardNotice, "rain",
		domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, list, 1)
	require.Equal(t, "dance-1", *list[0].DanceID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM boards WHERE id = \$1 AND board_type = \$2`).
		WithArgs("b-1", domain.BoardTalk).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewBoardRepository(db).Delete(context.Background(), domain.BoardTalk, "b-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
