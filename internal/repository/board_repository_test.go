package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"star-home/internal/domain"
)

func TestBoardRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"board_id", "comment_count", "version"}

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBoardRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT board_id, comment_count, version FROM boards")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 5, 9))

		board, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, &domain.Board{ID: 1, CommentCount: 5, Version: 9}, board)
	})

	t.Run("Missing board", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBoardRepository(db)

		mock.ExpectQuery("SELECT board_id").WithArgs(2).WillReturnRows(sqlmock.NewRows(columns))

		board, err := repo.GetByID(ctx, 2)

		assert.NoError(t, err)
		assert.Nil(t, board)
	})
}

func TestBoardRepository_UpdateCommentCount(t *testing.T) {
	ctx := context.Background()

	t.Run("Version matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBoardRepository(db)
		board := &domain.Board{ID: 1, CommentCount: 6, Version: 4}

		mock.ExpectExec(regexp.QuoteMeta("UPDATE boards")).
			WithArgs(1, 6, 4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateCommentCount(ctx, board)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), board.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Version moved on", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBoardRepository(db)
		board := &domain.Board{ID: 1, CommentCount: 6, Version: 4}

		mock.ExpectExec(regexp.QuoteMeta("UPDATE boards")).
			WithArgs(1, 6, 4).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCommentCount(ctx, board)

		assert.ErrorIs(t, err, domain.ErrVersionConflict)
		assert.Equal(t, int64(4), board.Version)
	})
}
