package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"star-home/internal/domain"
)

type BoardRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Board, error)
	// UpdateCommentCount writes board.CommentCount only if the stored version
	// still equals board.Version, and returns domain.ErrVersionConflict
	// otherwise. On success board.Version holds the new version.
	UpdateCommentCount(ctx context.Context, board *domain.Board) error
}

type boardRepository struct {
	db sqlx.ExtContext
}

func NewBoardRepository(db sqlx.ExtContext) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	var board domain.Board
	query := `SELECT board_id, comment_count, version FROM boards WHERE board_id = $1`

	err := sqlx.GetContext(ctx, r.db, &board, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) UpdateCommentCount(ctx context.Context, board *domain.Board) error {
	query := `
		UPDATE boards
		SET comment_count = $2, version = version + 1, updated_at = NOW()
		WHERE board_id = $1 AND version = $3`

	result, err := r.db.ExecContext(ctx, query, board.ID, board.CommentCount, board.Version)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrVersionConflict
	}

	board.Version++
	return nil
}
