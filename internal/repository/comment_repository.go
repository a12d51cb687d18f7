package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"star-home/internal/domain"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) error
	FindByIDAndBoard(ctx context.Context, commentID, boardID int64) (*domain.Comment, error)
	MaxDepthForBoard(ctx context.Context, boardID int64) (*int, error)
	FindByBoardAndDepth(ctx context.Context, boardID int64, depth int) ([]domain.Comment, error)
	UpdateContent(ctx context.Context, comment *domain.Comment) error
	MarkDeprecated(ctx context.Context, comment *domain.Comment) error
	DeleteAllForBoard(ctx context.Context, boardID int64) (int64, error)
}

const commentColumns = `
	c.comment_id, c.board_id, c.parent_id, c.author_id, m.nickname AS author_nickname,
	c.depth, c.content, c.deprecated, c.created_at, c.updated_at`

type commentRepository struct {
	db sqlx.ExtContext
}

func NewCommentRepository(db sqlx.ExtContext) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (board_id, parent_id, author_id, depth, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING comment_id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.BoardID, comment.ParentID, comment.AuthorID, comment.Depth, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) FindByIDAndBoard(ctx context.Context, commentID, boardID int64) (*domain.Comment, error) {
	var comment domain.Comment
	query := `
		SELECT` + commentColumns + `
		FROM comments c
		INNER JOIN members m ON c.author_id = m.member_id
		WHERE c.comment_id = $1 AND c.board_id = $2`

	err := sqlx.GetContext(ctx, r.db, &comment, query, commentID, boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) MaxDepthForBoard(ctx context.Context, boardID int64) (*int, error) {
	var maxDepth sql.NullInt32
	query := `SELECT MAX(depth) FROM comments WHERE board_id = $1`

	if err := r.db.QueryRowxContext(ctx, query, boardID).Scan(&maxDepth); err != nil {
		return nil, err
	}
	if !maxDepth.Valid {
		return nil, nil
	}

	depth := int(maxDepth.Int32)
	return &depth, nil
}

func (r *commentRepository) FindByBoardAndDepth(ctx context.Context, boardID int64, depth int) ([]domain.Comment, error) {
	query := `
		SELECT` + commentColumns + `
		FROM comments c
		INNER JOIN members m ON c.author_id = m.member_id
		WHERE c.board_id = $1 AND c.depth = $2
		ORDER BY c.created_at ASC, c.comment_id ASC`

	comments := []domain.Comment{}
	if err := sqlx.SelectContext(ctx, r.db, &comments, query, boardID, depth); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET content = $3, updated_at = NOW()
		WHERE comment_id = $1 AND board_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.BoardID, comment.Content,
	).Scan(&comment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCommentNotFound
	}
	return err
}

func (r *commentRepository) MarkDeprecated(ctx context.Context, comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET deprecated = TRUE, updated_at = NOW()
		WHERE comment_id = $1 AND board_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query, comment.ID, comment.BoardID).Scan(&comment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCommentNotFound
	}
	return err
}

func (r *commentRepository) DeleteAllForBoard(ctx context.Context, boardID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE board_id = $1`, boardID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
