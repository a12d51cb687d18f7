package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
)

// Transactor runs a unit of work against repositories bound to a single
// database transaction.
type Transactor interface {
	// InTx commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(repos *Repositories) error) error
	// InSnapshot runs fn in a read-only repeatable-read transaction so that
	// several queries observe the same committed state.
	InSnapshot(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	Comment CommentRepository
	Board   BoardRepository
	Member  MemberRepository

	db *sqlx.DB
}

func NewRepositories(db *sqlx.DB) *Repositories {
	repos := bind(db)
	repos.db = db
	return repos
}

func bind(q sqlx.ExtContext) *Repositories {
	return &Repositories{
		Comment: NewCommentRepository(q),
		Board:   NewBoardRepository(q),
		Member:  NewMemberRepository(q),
	}
}

func (r *Repositories) InTx(ctx context.Context, fn func(repos *Repositories) error) error {
	// Postgres defaults to READ COMMITTED, which lets a retried read observe
	// the row a concurrent writer just committed.
	return r.run(ctx, nil, fn)
}

func (r *Repositories) InSnapshot(ctx context.Context, fn func(repos *Repositories) error) error {
	return r.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (r *Repositories) run(ctx context.Context, opts *sql.TxOptions, fn func(repos *Repositories) error) error {
	if r.db == nil {
		return errors.New("repository: transaction already in progress")
	}

	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(bind(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return multierr.Append(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
