package member

import (
	"context"
	"fmt"

	"star-home/internal/domain"
	"star-home/internal/repository"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
}

type service struct {
	memberRepo repository.MemberRepository
}

func NewService(memberRepo repository.MemberRepository) Service {
	return &service{memberRepo: memberRepo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrMemberNotFound, id)
	}
	return member, nil
}
