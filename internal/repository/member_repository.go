package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"star-home/internal/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
}

type memberRepository struct {
	db sqlx.ExtContext
}

func NewMemberRepository(db sqlx.ExtContext) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	var member domain.Member
	query := `SELECT member_id, email, nickname, created_at FROM members WHERE member_id = $1`

	err := sqlx.GetContext(ctx, r.db, &member, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}
